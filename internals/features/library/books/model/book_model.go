// internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BookModel struct {
	// PK
	BookID uuid.UUID `json:"book_id" gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	BookCategoryID *uuid.UUID `json:"book_category_id,omitempty" gorm:"column:book_category_id;type:uuid;index:idx_book_category"`

	BookTitle   string         `json:"book_title" gorm:"column:book_title;type:varchar(255);not null"`
	BookAuthors pq.StringArray `json:"book_authors" gorm:"column:book_authors;type:text[]"`
	BookISBN    *string        `json:"book_isbn,omitempty" gorm:"column:book_isbn;type:varchar(20);index:uq_book_isbn_alive,unique,where:book_deleted_at IS NULL"`
	BookSlug    *string        `json:"book_slug,omitempty" gorm:"column:book_slug;type:varchar(160);index:uq_book_slug_alive,unique,expression:lower(book_slug),where:book_deleted_at IS NULL"`
	BookDesc    *string        `json:"book_desc,omitempty" gorm:"column:book_desc"`
	BookShelf   *string        `json:"book_shelf,omitempty" gorm:"column:book_shelf;type:varchar(40)"`

	BookCoverURL *string `json:"book_cover_url,omitempty" gorm:"column:book_cover_url"`

	// Inventory (copy tersedia dijaga lewat guarded UPDATE, bukan read-modify-write)
	BookTotalCopies     int `json:"book_total_copies" gorm:"column:book_total_copies;not null;default:0"`
	BookAvailableCopies int `json:"book_available_copies" gorm:"column:book_available_copies;not null;default:0"`

	BookCreatedAt time.Time      `json:"book_created_at" gorm:"column:book_created_at;type:timestamptz;not null;autoCreateTime"`
	BookUpdatedAt *time.Time     `json:"book_updated_at" gorm:"column:book_updated_at;type:timestamptz;autoUpdateTime"`
	BookDeletedAt gorm.DeletedAt `json:"book_deleted_at,omitempty" gorm:"column:book_deleted_at;index"`
}

func (BookModel) TableName() string { return "books" }
