// internals/features/library/fines/model/fine_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FineStatusUnpaid = "unpaid"
	FineStatusPaid   = "paid"
	FineStatusWaived = "waived"
)

const (
	FineMethodCash     = "cash"
	FineMethodMidtrans = "midtrans"
	FineMethodWaiver   = "waiver"
)

// FineModel: ledger denda. Satu baris per penagihan; denda berjalan
// pinjaman aktif TIDAK disimpan di sini (selalu proyeksi dari tanggal).
type FineModel struct {
	// PK
	FineID uuid.UUID `json:"fine_id" gorm:"column:fine_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs
	FineLoanID   uuid.UUID `json:"fine_loan_id" gorm:"column:fine_loan_id;type:uuid;not null;index:idx_fine_loan"`
	FineMemberID uuid.UUID `json:"fine_member_id" gorm:"column:fine_member_id;type:uuid;not null;index:idx_fine_member"`

	FineAmount float64 `json:"fine_amount" gorm:"column:fine_amount;type:numeric(12,2);not null"`
	FineStatus string  `json:"fine_status" gorm:"column:fine_status;type:varchar(20);not null;default:'unpaid';index:idx_fine_status"`
	FineMethod *string `json:"fine_method,omitempty" gorm:"column:fine_method;type:varchar(20)"`

	// Order ID Midtrans untuk pembayaran online
	FineOrderID *string    `json:"fine_order_id,omitempty" gorm:"column:fine_order_id;type:varchar(64);index:uq_fine_order,unique,where:fine_order_id IS NOT NULL"`
	FinePaidAt  *time.Time `json:"fine_paid_at,omitempty" gorm:"column:fine_paid_at;type:timestamptz"`
	FineNote    *string    `json:"fine_note,omitempty" gorm:"column:fine_note"`

	FineCreatedAt time.Time      `json:"fine_created_at" gorm:"column:fine_created_at;type:timestamptz;not null;autoCreateTime"`
	FineUpdatedAt *time.Time     `json:"fine_updated_at" gorm:"column:fine_updated_at;type:timestamptz;autoUpdateTime"`
	FineDeletedAt gorm.DeletedAt `json:"fine_deleted_at,omitempty" gorm:"column:fine_deleted_at;index"`
}

func (FineModel) TableName() string { return "fines" }
