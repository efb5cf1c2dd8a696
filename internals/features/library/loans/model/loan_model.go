// internals/features/library/loans/model/loan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status tersimpan. "Overdue" TIDAK disimpan — dia proyeksi waktu
// (loan_status = active && loan_due_date < now) yang dihitung saat baca,
// supaya tidak perlu background job mutasi status.
const (
	LoanStatusActive   = "active"
	LoanStatusReturned = "returned"
)

// Status efektif hasil proyeksi (dipakai di response & filter)
const (
	LoanEffectiveOverdue = "overdue"
)

type LoanModel struct {
	// PK
	LoanID uuid.UUID `json:"loan_id" gorm:"column:loan_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs
	LoanMemberID uuid.UUID `json:"loan_member_id" gorm:"column:loan_member_id;type:uuid;not null;index:idx_loan_member"`
	LoanBookID   uuid.UUID `json:"loan_book_id" gorm:"column:loan_book_id;type:uuid;not null;index:idx_loan_book"`
	LoanCopyID   uuid.UUID `json:"loan_copy_id" gorm:"column:loan_copy_id;type:uuid;not null;index:idx_loan_copy"`

	LoanIssueDate    time.Time  `json:"loan_issue_date" gorm:"column:loan_issue_date;type:timestamptz;not null"`
	LoanDueDate      time.Time  `json:"loan_due_date" gorm:"column:loan_due_date;type:timestamptz;not null;index:idx_loan_due"`
	LoanRenewalCount int        `json:"loan_renewal_count" gorm:"column:loan_renewal_count;not null;default:0"`
	LoanPeriodDays   int        `json:"loan_period_days" gorm:"column:loan_period_days;not null"`
	LoanStatus       string     `json:"loan_status" gorm:"column:loan_status;type:varchar(20);not null;default:'active';index:idx_loan_status"`
	LoanReturnDate   *time.Time `json:"loan_return_date,omitempty" gorm:"column:loan_return_date;type:timestamptz"`

	// Kondisi fisik saat kembali (metadata, tidak mempengaruhi denda)
	LoanReturnCondition *string `json:"loan_return_condition,omitempty" gorm:"column:loan_return_condition;type:varchar(20)"`

	// Denda final yang di-assess saat pengembalian. Sebelum kembali,
	// denda berjalan selalu dihitung ulang dari tanggal + policy.
	LoanFineAmount  float64 `json:"loan_fine_amount" gorm:"column:loan_fine_amount;type:numeric(12,2);not null;default:0"`
	LoanFineSettled bool    `json:"loan_fine_settled" gorm:"column:loan_fine_settled;not null;default:true"`

	LoanCreatedAt time.Time      `json:"loan_created_at" gorm:"column:loan_created_at;type:timestamptz;not null;autoCreateTime"`
	LoanUpdatedAt *time.Time     `json:"loan_updated_at" gorm:"column:loan_updated_at;type:timestamptz;autoUpdateTime"`
	LoanDeletedAt gorm.DeletedAt `json:"loan_deleted_at,omitempty" gorm:"column:loan_deleted_at;index"`
}

func (LoanModel) TableName() string { return "loans" }

// EffectiveStatus proyeksi status terhadap jam saat ini.
func (l *LoanModel) EffectiveStatus(now time.Time) string {
	if l.LoanStatus == LoanStatusActive && now.After(l.LoanDueDate) {
		return LoanEffectiveOverdue
	}
	return l.LoanStatus
}
