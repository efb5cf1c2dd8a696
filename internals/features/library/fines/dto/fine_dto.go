// internals/features/library/fines/dto/fine_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"perpustakaanku_backend/internals/features/library/fines/model"
)

/* =========================
   REQUEST
   ========================= */

// PayFineRequest: member menagihkan denda pinjaman overdue miliknya
// untuk dibayar online lewat Snap.
type PayFineRequest struct {
	FineLoanID string `json:"fine_loan_id" validate:"required,uuid"`
}

/* =========================
   RESPONSE
   ========================= */

type FineResponse struct {
	FineID        uuid.UUID  `json:"fine_id"`
	FineLoanID    uuid.UUID  `json:"fine_loan_id"`
	FineMemberID  uuid.UUID  `json:"fine_member_id"`
	FineAmount    float64    `json:"fine_amount"`
	FineStatus    string     `json:"fine_status"`
	FineMethod    *string    `json:"fine_method,omitempty"`
	FineOrderID   *string    `json:"fine_order_id,omitempty"`
	FinePaidAt    *time.Time `json:"fine_paid_at,omitempty"`
	FineNote      *string    `json:"fine_note,omitempty"`
	FineCreatedAt time.Time  `json:"fine_created_at"`
}

func ToFineResponse(m *model.FineModel) FineResponse {
	return FineResponse{
		FineID:        m.FineID,
		FineLoanID:    m.FineLoanID,
		FineMemberID:  m.FineMemberID,
		FineAmount:    m.FineAmount,
		FineStatus:    m.FineStatus,
		FineMethod:    m.FineMethod,
		FineOrderID:   m.FineOrderID,
		FinePaidAt:    m.FinePaidAt,
		FineNote:      m.FineNote,
		FineCreatedAt: m.FineCreatedAt,
	}
}

func ToFineResponseList(ms []model.FineModel) []FineResponse {
	out := make([]FineResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToFineResponse(&ms[i]))
	}
	return out
}

// SnapPaymentResponse: bekal frontend membuka halaman pembayaran Midtrans
type SnapPaymentResponse struct {
	Fine        FineResponse `json:"fine"`
	SnapToken   string       `json:"snap_token"`
	RedirectURL string       `json:"redirect_url"`
}
