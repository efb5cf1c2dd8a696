// internals/features/library/books/dto/book_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	BookCategoryID *uuid.UUID `json:"book_category_id,omitempty"`
	BookTitle      string     `json:"book_title" validate:"required,min=1,max=255"`
	BookAuthors    []string   `json:"book_authors" validate:"omitempty,dive,min=1,max=120"`
	BookISBN       *string    `json:"book_isbn,omitempty" validate:"omitempty,max=20"`
	BookSlug       *string    `json:"book_slug,omitempty" validate:"omitempty,max=160"`
	BookDesc       *string    `json:"book_desc,omitempty"`
	BookShelf      *string    `json:"book_shelf,omitempty" validate:"omitempty,max=40"`

	// Jumlah eksemplar awal; baris book_copies dibuat otomatis
	BookInitialCopies int `json:"book_initial_copies" validate:"omitempty,min=0,max=500"`
}

type BookUpdateRequest struct {
	BookCategoryID *uuid.UUID `json:"book_category_id,omitempty"`
	BookTitle      *string    `json:"book_title,omitempty" validate:"omitempty,min=1,max=255"`
	BookAuthors    []string   `json:"book_authors,omitempty" validate:"omitempty,dive,min=1,max=120"`
	BookISBN       *string    `json:"book_isbn,omitempty" validate:"omitempty,max=20"`
	BookSlug       *string    `json:"book_slug,omitempty" validate:"omitempty,max=160"`
	BookDesc       *string    `json:"book_desc,omitempty"`
	BookShelf      *string    `json:"book_shelf,omitempty" validate:"omitempty,max=40"`
}

// Query sederhana untuk listing
type BookListQuery struct {
	Q          *string `query:"q"`           // cari di title/authors
	CategoryID *string `query:"category_id"` // filter kategori
	Available  *bool   `query:"available"`   // hanya yang tersedia
	OrderBy    *string `query:"order_by"`    // book_title|created_at
	Sort       *string `query:"sort"`        // asc|desc
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func trimAll(ss []string) []string {
	out := ss[:0]
	for _, s := range ss {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (r *BookCreateRequest) Normalize() {
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	r.BookAuthors = trimAll(r.BookAuthors)
	r.BookISBN = trimPtr(r.BookISBN)
	r.BookSlug = trimPtr(r.BookSlug)
	r.BookDesc = trimPtr(r.BookDesc)
	r.BookShelf = trimPtr(r.BookShelf)
}

func (r *BookUpdateRequest) Normalize() {
	r.BookTitle = trimPtr(r.BookTitle)
	r.BookAuthors = trimAll(r.BookAuthors)
	r.BookISBN = trimPtr(r.BookISBN)
	r.BookSlug = trimPtr(r.BookSlug)
	r.BookDesc = trimPtr(r.BookDesc)
	r.BookShelf = trimPtr(r.BookShelf)
}

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		BookCategoryID:      r.BookCategoryID,
		BookTitle:           r.BookTitle,
		BookAuthors:         pq.StringArray(r.BookAuthors),
		BookISBN:            r.BookISBN,
		BookSlug:            r.BookSlug,
		BookDesc:            r.BookDesc,
		BookShelf:           r.BookShelf,
		BookTotalCopies:     r.BookInitialCopies,
		BookAvailableCopies: r.BookInitialCopies,
	}
}

func (r *BookUpdateRequest) ApplyToModel(m *model.BookModel) {
	if r.BookCategoryID != nil {
		m.BookCategoryID = r.BookCategoryID
	}
	if r.BookTitle != nil {
		m.BookTitle = *r.BookTitle
	}
	if len(r.BookAuthors) > 0 {
		m.BookAuthors = pq.StringArray(r.BookAuthors)
	}
	if r.BookISBN != nil {
		m.BookISBN = r.BookISBN
	}
	if r.BookSlug != nil {
		m.BookSlug = r.BookSlug
	}
	if r.BookDesc != nil {
		m.BookDesc = r.BookDesc
	}
	if r.BookShelf != nil {
		m.BookShelf = r.BookShelf
	}
}

/* =========================
   RESPONSE
   ========================= */

type BookCopyResponse struct {
	CopyID        uuid.UUID `json:"copy_id"`
	CopyBarcode   string    `json:"copy_barcode"`
	CopyStatus    string    `json:"copy_status"`
	CopyCondition *string   `json:"copy_condition,omitempty"`
}

type BookResponse struct {
	BookID              uuid.UUID  `json:"book_id"`
	BookCategoryID      *uuid.UUID `json:"book_category_id,omitempty"`
	BookTitle           string     `json:"book_title"`
	BookAuthors         []string   `json:"book_authors"`
	BookISBN            *string    `json:"book_isbn,omitempty"`
	BookSlug            *string    `json:"book_slug,omitempty"`
	BookDesc            *string    `json:"book_desc,omitempty"`
	BookShelf           *string    `json:"book_shelf,omitempty"`
	BookCoverURL        *string    `json:"book_cover_url,omitempty"`
	BookTotalCopies     int        `json:"book_total_copies"`
	BookAvailableCopies int        `json:"book_available_copies"`
	BookCreatedAt       time.Time  `json:"book_created_at"`

	Copies []BookCopyResponse `json:"copies,omitempty"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	return BookResponse{
		BookID:              m.BookID,
		BookCategoryID:      m.BookCategoryID,
		BookTitle:           m.BookTitle,
		BookAuthors:         []string(m.BookAuthors),
		BookISBN:            m.BookISBN,
		BookSlug:            m.BookSlug,
		BookDesc:            m.BookDesc,
		BookShelf:           m.BookShelf,
		BookCoverURL:        m.BookCoverURL,
		BookTotalCopies:     m.BookTotalCopies,
		BookAvailableCopies: m.BookAvailableCopies,
		BookCreatedAt:       m.BookCreatedAt,
	}
}

func ToBookResponses(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}

func ToBookCopyResponse(m *model.BookCopyModel) BookCopyResponse {
	return BookCopyResponse{
		CopyID:        m.CopyID,
		CopyBarcode:   m.CopyBarcode,
		CopyStatus:    m.CopyStatus,
		CopyCondition: m.CopyCondition,
	}
}

func ToBookCopyResponses(ms []model.BookCopyModel) []BookCopyResponse {
	out := make([]BookCopyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookCopyResponse(&ms[i]))
	}
	return out
}
