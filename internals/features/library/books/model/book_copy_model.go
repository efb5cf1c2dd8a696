// internals/features/library/books/model/book_copy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status fisik satu eksemplar
const (
	CopyStatusAvailable = "available"
	CopyStatusOnLoan    = "on_loan"
	CopyStatusHeld      = "held" // ditahan untuk reservasi Ready
	CopyStatusLost      = "lost"
	CopyStatusRetired   = "retired"
)

// Kondisi fisik yang dicatat saat pengembalian (metadata saja,
// tidak mempengaruhi perhitungan denda)
const (
	CopyConditionExcellent = "excellent"
	CopyConditionGood      = "good"
	CopyConditionFair      = "fair"
	CopyConditionPoor      = "poor"
	CopyConditionDamaged   = "damaged"
)

type BookCopyModel struct {
	// PK
	CopyID uuid.UUID `json:"copy_id" gorm:"column:copy_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	CopyBookID uuid.UUID `json:"copy_book_id" gorm:"column:copy_book_id;type:uuid;not null;index:idx_copy_book"`

	CopyBarcode   string  `json:"copy_barcode" gorm:"column:copy_barcode;type:varchar(64);not null;index:uq_copy_barcode_alive,unique,where:copy_deleted_at IS NULL"`
	CopyStatus    string  `json:"copy_status" gorm:"column:copy_status;type:varchar(20);not null;default:'available';index:idx_copy_status"`
	CopyCondition *string `json:"copy_condition,omitempty" gorm:"column:copy_condition;type:varchar(20)"`

	CopyCreatedAt time.Time      `json:"copy_created_at" gorm:"column:copy_created_at;type:timestamptz;not null;autoCreateTime"`
	CopyUpdatedAt *time.Time     `json:"copy_updated_at" gorm:"column:copy_updated_at;type:timestamptz;autoUpdateTime"`
	CopyDeletedAt gorm.DeletedAt `json:"copy_deleted_at,omitempty" gorm:"column:copy_deleted_at;index"`
}

func (BookCopyModel) TableName() string { return "book_copies" }

// ValidCopyCondition cek nilai kondisi yang dikenal.
func ValidCopyCondition(s string) bool {
	switch s {
	case CopyConditionExcellent, CopyConditionGood, CopyConditionFair, CopyConditionPoor, CopyConditionDamaged:
		return true
	}
	return false
}
