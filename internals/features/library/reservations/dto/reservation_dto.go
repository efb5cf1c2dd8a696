// internals/features/library/reservations/dto/reservation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"perpustakaanku_backend/internals/features/library/reservations/model"
)

/* =========================
   REQUEST
   ========================= */

type CreateReservationRequest struct {
	ReservationBookID   string `json:"reservation_book_id" validate:"required,uuid"`
	ReservationPriority string `json:"reservation_priority" validate:"omitempty,oneof=low normal high"`
}

func (r *CreateReservationRequest) Normalize() {
	r.ReservationBookID = strings.TrimSpace(r.ReservationBookID)
	r.ReservationPriority = strings.ToLower(strings.TrimSpace(r.ReservationPriority))
	if r.ReservationPriority == "" {
		r.ReservationPriority = model.ReservationPriorityNormal
	}
}

/* =========================
   RESPONSE
   ========================= */

type ReservationResponse struct {
	ReservationID          uuid.UUID  `json:"reservation_id"`
	ReservationBookID      uuid.UUID  `json:"reservation_book_id"`
	ReservationMemberID    uuid.UUID  `json:"reservation_member_id"`
	BookTitle              string     `json:"book_title,omitempty"`
	ReservationPriority    string     `json:"reservation_priority"`
	ReservationStatus      string     `json:"reservation_status"`
	ReservationRequestedAt time.Time  `json:"reservation_requested_at"`
	ReservationReadyAt     *time.Time `json:"reservation_ready_at,omitempty"`
	ReservationExpiresAt   *time.Time `json:"reservation_expires_at,omitempty"`

	// Posisi 1-based di antrean waiting (0 = bukan waiting)
	QueuePosition int `json:"queue_position"`

	// Perkiraan kapan copy tersedia (due date aktif terdekat), best effort
	EstimatedAvailable *time.Time `json:"estimated_available,omitempty"`
}

func ToReservationResponse(m *model.ReservationModel, position int) ReservationResponse {
	return ReservationResponse{
		ReservationID:          m.ReservationID,
		ReservationBookID:      m.ReservationBookID,
		ReservationMemberID:    m.ReservationMemberID,
		ReservationPriority:    m.ReservationPriority,
		ReservationStatus:      m.ReservationStatus,
		ReservationRequestedAt: m.ReservationRequestedAt,
		ReservationReadyAt:     m.ReservationReadyAt,
		ReservationExpiresAt:   m.ReservationExpiresAt,
		QueuePosition:          position,
	}
}
