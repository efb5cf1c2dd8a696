// internals/features/library/policy/model/loan_policy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LoanPolicyModel: konfigurasi sirkulasi per institusi. Satu baris aktif.
type LoanPolicyModel struct {
	// PK
	PolicyID uuid.UUID `json:"policy_id" gorm:"column:policy_id;type:uuid;default:gen_random_uuid();primaryKey"`

	PolicyLoanPeriodOptionsDays pq.Int64Array `json:"policy_loan_period_options_days" gorm:"column:policy_loan_period_options_days;type:integer[];not null"`
	PolicyMaxRenewals           int           `json:"policy_max_renewals" gorm:"column:policy_max_renewals;not null;default:2"`
	PolicyRenewalExtensionDays  int           `json:"policy_renewal_extension_days" gorm:"column:policy_renewal_extension_days;not null;default:7"`
	PolicyFinePerDay            float64       `json:"policy_fine_per_day" gorm:"column:policy_fine_per_day;type:numeric(12,2);not null;default:0"`
	PolicyMaxBooksPerBorrower   int           `json:"policy_max_books_per_borrower" gorm:"column:policy_max_books_per_borrower;not null;default:5"`
	PolicyReservationHoldDays   int           `json:"policy_reservation_hold_days" gorm:"column:policy_reservation_hold_days;not null;default:2"`
	PolicyDueSoonNoticeDays     int           `json:"policy_due_soon_notice_days" gorm:"column:policy_due_soon_notice_days;not null;default:1"`

	PolicyIsActive bool `json:"policy_is_active" gorm:"column:policy_is_active;not null;default:true"`

	PolicyCreatedAt time.Time      `json:"policy_created_at" gorm:"column:policy_created_at;type:timestamptz;not null;autoCreateTime"`
	PolicyUpdatedAt *time.Time     `json:"policy_updated_at" gorm:"column:policy_updated_at;type:timestamptz;autoUpdateTime"`
	PolicyDeletedAt gorm.DeletedAt `json:"policy_deleted_at,omitempty" gorm:"column:policy_deleted_at;index"`
}

func (LoanPolicyModel) TableName() string { return "loan_policies" }

// AllowsPeriod cek apakah durasi pinjam termasuk pilihan yang diizinkan.
func (p *LoanPolicyModel) AllowsPeriod(days int) bool {
	for _, d := range p.PolicyLoanPeriodOptionsDays {
		if int(d) == days {
			return true
		}
	}
	return false
}

// MaxLoansFor menghitung kuota pinjam efektif (override per anggota menang).
func (p *LoanPolicyModel) MaxLoansFor(override *int) int {
	if override != nil && *override > 0 {
		return *override
	}
	return p.PolicyMaxBooksPerBorrower
}
