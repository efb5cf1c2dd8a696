// internals/features/library/loans/dto/loan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"perpustakaanku_backend/internals/features/library/loans/model"
	"perpustakaanku_backend/internals/features/library/loans/service"
)

/* =========================
   REQUEST
   ========================= */

// IssueLoanRequest: copy bisa dirujuk lewat UUID atau barcode
// fisik yang discan petugas (salah satu wajib). issue_date opsional
// untuk pencatatan mundur (transaksi manual saat sistem offline);
// tidak boleh di masa depan.
type IssueLoanRequest struct {
	LoanMemberID string     `json:"loan_member_id" validate:"required,uuid"`
	LoanCopyID   *string    `json:"loan_copy_id,omitempty" validate:"omitempty,uuid"`
	CopyBarcode  *string    `json:"copy_barcode,omitempty" validate:"omitempty,min=1,max=50"`
	PeriodDays   int        `json:"period_days" validate:"required,min=1,max=365"`
	IssueDate    *time.Time `json:"issue_date,omitempty"`
}

func (r *IssueLoanRequest) Normalize() {
	r.LoanMemberID = strings.TrimSpace(r.LoanMemberID)
	trimPtr(&r.LoanCopyID)
	trimPtr(&r.CopyBarcode)
}

type ReturnLoanRequest struct {
	LoanID          string     `json:"loan_id" validate:"required,uuid"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	ReturnCondition *string    `json:"return_condition,omitempty" validate:"omitempty,oneof=excellent good fair poor damaged"`
	FinePaid        bool       `json:"fine_paid"`
	FineWaived      bool       `json:"fine_waived"`
	WaiveNote       *string    `json:"waive_note,omitempty" validate:"omitempty,max=255"`
}

func (r *ReturnLoanRequest) Normalize() {
	trimPtr(&r.ReturnCondition)
	trimPtr(&r.WaiveNote)
}

type LoanListQuery struct {
	MemberID string `query:"member_id"`
	BookID   string `query:"book_id"`
	Status   string `query:"status"` // active|overdue|returned
}

/* =========================
   RESPONSE
   ========================= */

type LoanResponse struct {
	LoanID           uuid.UUID  `json:"loan_id"`
	LoanMemberID     uuid.UUID  `json:"loan_member_id"`
	LoanBookID       uuid.UUID  `json:"loan_book_id"`
	LoanCopyID       uuid.UUID  `json:"loan_copy_id"`
	BookTitle        string     `json:"book_title,omitempty"`
	LoanIssueDate    time.Time  `json:"loan_issue_date"`
	LoanDueDate      time.Time  `json:"loan_due_date"`
	LoanPeriodDays   int        `json:"loan_period_days"`
	LoanRenewalCount int        `json:"loan_renewal_count"`
	LoanStatus       string     `json:"loan_status"` // status efektif (termasuk overdue)
	LoanReturnDate   *time.Time `json:"loan_return_date,omitempty"`
	ReturnCondition  *string    `json:"loan_return_condition,omitempty"`
	DaysLate         int        `json:"days_late"`
	FineAmount       float64    `json:"fine_amount"`
	FineSettled      bool       `json:"fine_settled"`
	LoanCreatedAt    time.Time  `json:"loan_created_at"`
}

// ToLoanResponse memproyeksikan status overdue + denda berjalan terhadap
// jam saat ini dan tarif policy; untuk loan yang sudah kembali dipakai
// angka yang di-assess saat pengembalian.
func ToLoanResponse(m *model.LoanModel, now time.Time, finePerDay float64) LoanResponse {
	asOf := now
	if m.LoanStatus == model.LoanStatusReturned && m.LoanReturnDate != nil {
		asOf = *m.LoanReturnDate
	}
	return LoanResponse{
		LoanID:           m.LoanID,
		LoanMemberID:     m.LoanMemberID,
		LoanBookID:       m.LoanBookID,
		LoanCopyID:       m.LoanCopyID,
		LoanIssueDate:    m.LoanIssueDate,
		LoanDueDate:      m.LoanDueDate,
		LoanPeriodDays:   m.LoanPeriodDays,
		LoanRenewalCount: m.LoanRenewalCount,
		LoanStatus:       m.EffectiveStatus(now),
		LoanReturnDate:   m.LoanReturnDate,
		ReturnCondition:  m.LoanReturnCondition,
		DaysLate:         service.WholeDaysLate(m.LoanDueDate, asOf),
		FineAmount:       service.FineFor(m.LoanStatus, m.LoanDueDate, m.LoanFineAmount, asOf, finePerDay),
		FineSettled:      m.LoanFineSettled,
		LoanCreatedAt:    m.LoanCreatedAt,
	}
}

func ToLoanResponseList(ms []model.LoanModel, now time.Time, finePerDay float64) []LoanResponse {
	out := make([]LoanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToLoanResponse(&ms[i], now, finePerDay))
	}
	return out
}

/* =========================
   HELPER
   ========================= */

func trimPtr(s **string) {
	if *s == nil {
		return
	}
	v := strings.TrimSpace(**s)
	if v == "" {
		*s = nil
	} else {
		*s = &v
	}
}
