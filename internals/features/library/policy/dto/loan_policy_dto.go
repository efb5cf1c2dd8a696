// internals/features/library/policy/dto/loan_policy_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "perpustakaanku_backend/internals/features/library/policy/model"
)

type LoanPolicyUpsertRequest struct {
	PolicyLoanPeriodOptionsDays []int   `json:"policy_loan_period_options_days" validate:"required,min=1,dive,min=1,max=120"`
	PolicyMaxRenewals           int     `json:"policy_max_renewals" validate:"min=0,max=10"`
	PolicyRenewalExtensionDays  int     `json:"policy_renewal_extension_days" validate:"required,min=1,max=60"`
	PolicyFinePerDay            float64 `json:"policy_fine_per_day" validate:"min=0"`
	PolicyMaxBooksPerBorrower   int     `json:"policy_max_books_per_borrower" validate:"required,min=1,max=50"`
	PolicyReservationHoldDays   int     `json:"policy_reservation_hold_days" validate:"required,min=1,max=30"`
	PolicyDueSoonNoticeDays     int     `json:"policy_due_soon_notice_days" validate:"min=0,max=14"`
}

func (r *LoanPolicyUpsertRequest) ToModel() *model.LoanPolicyModel {
	opts := make(pq.Int64Array, 0, len(r.PolicyLoanPeriodOptionsDays))
	for _, d := range r.PolicyLoanPeriodOptionsDays {
		opts = append(opts, int64(d))
	}
	return &model.LoanPolicyModel{
		PolicyLoanPeriodOptionsDays: opts,
		PolicyMaxRenewals:           r.PolicyMaxRenewals,
		PolicyRenewalExtensionDays:  r.PolicyRenewalExtensionDays,
		PolicyFinePerDay:            r.PolicyFinePerDay,
		PolicyMaxBooksPerBorrower:   r.PolicyMaxBooksPerBorrower,
		PolicyReservationHoldDays:   r.PolicyReservationHoldDays,
		PolicyDueSoonNoticeDays:     r.PolicyDueSoonNoticeDays,
		PolicyIsActive:              true,
	}
}

type LoanPolicyResponse struct {
	PolicyID                    uuid.UUID `json:"policy_id"`
	PolicyLoanPeriodOptionsDays []int     `json:"policy_loan_period_options_days"`
	PolicyMaxRenewals           int       `json:"policy_max_renewals"`
	PolicyRenewalExtensionDays  int       `json:"policy_renewal_extension_days"`
	PolicyFinePerDay            float64   `json:"policy_fine_per_day"`
	PolicyMaxBooksPerBorrower   int       `json:"policy_max_books_per_borrower"`
	PolicyReservationHoldDays   int       `json:"policy_reservation_hold_days"`
	PolicyDueSoonNoticeDays     int       `json:"policy_due_soon_notice_days"`
	PolicyUpdatedAt             *time.Time `json:"policy_updated_at,omitempty"`
}

func ToLoanPolicyResponse(m *model.LoanPolicyModel) LoanPolicyResponse {
	opts := make([]int, 0, len(m.PolicyLoanPeriodOptionsDays))
	for _, d := range m.PolicyLoanPeriodOptionsDays {
		opts = append(opts, int(d))
	}
	return LoanPolicyResponse{
		PolicyID:                    m.PolicyID,
		PolicyLoanPeriodOptionsDays: opts,
		PolicyMaxRenewals:           m.PolicyMaxRenewals,
		PolicyRenewalExtensionDays:  m.PolicyRenewalExtensionDays,
		PolicyFinePerDay:            m.PolicyFinePerDay,
		PolicyMaxBooksPerBorrower:   m.PolicyMaxBooksPerBorrower,
		PolicyReservationHoldDays:   m.PolicyReservationHoldDays,
		PolicyDueSoonNoticeDays:     m.PolicyDueSoonNoticeDays,
		PolicyUpdatedAt:             m.PolicyUpdatedAt,
	}
}
