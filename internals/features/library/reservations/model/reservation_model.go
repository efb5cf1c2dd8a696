// internals/features/library/reservations/model/reservation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReservationStatusWaiting   = "waiting"
	ReservationStatusReady     = "ready"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusFulfilled = "fulfilled"
)

const (
	ReservationPriorityLow    = "low"
	ReservationPriorityNormal = "normal"
	ReservationPriorityHigh   = "high"
)

type ReservationModel struct {
	// PK
	ReservationID uuid.UUID `json:"reservation_id" gorm:"column:reservation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs (reservasi per JUDUL, bukan per eksemplar)
	ReservationMemberID uuid.UUID `json:"reservation_member_id" gorm:"column:reservation_member_id;type:uuid;not null;index:idx_reservation_member"`
	ReservationBookID   uuid.UUID `json:"reservation_book_id" gorm:"column:reservation_book_id;type:uuid;not null;index:idx_reservation_book"`

	ReservationPriority string `json:"reservation_priority" gorm:"column:reservation_priority;type:varchar(10);not null;default:'normal'"`
	ReservationStatus   string `json:"reservation_status" gorm:"column:reservation_status;type:varchar(15);not null;default:'waiting';index:idx_reservation_status"`

	ReservationRequestedAt time.Time `json:"reservation_requested_at" gorm:"column:reservation_requested_at;type:timestamptz;not null"`

	// Urutan insert: tie-break terakhir saat priority & requested_at identik
	// (first-registered wins)
	ReservationSeq int64 `json:"reservation_seq" gorm:"column:reservation_seq;autoIncrement;uniqueIndex:uq_reservation_seq"`

	// Diisi saat promosi Waiting→Ready
	ReservationReadyAt   *time.Time `json:"reservation_ready_at,omitempty" gorm:"column:reservation_ready_at;type:timestamptz"`
	ReservationExpiresAt *time.Time `json:"reservation_expires_at,omitempty" gorm:"column:reservation_expires_at;type:timestamptz;index:idx_reservation_expires"`

	ReservationCreatedAt time.Time      `json:"reservation_created_at" gorm:"column:reservation_created_at;type:timestamptz;not null;autoCreateTime"`
	ReservationUpdatedAt *time.Time     `json:"reservation_updated_at" gorm:"column:reservation_updated_at;type:timestamptz;autoUpdateTime"`
	ReservationDeletedAt gorm.DeletedAt `json:"reservation_deleted_at,omitempty" gorm:"column:reservation_deleted_at;index"`
}

func (ReservationModel) TableName() string { return "reservations" }

// PriorityRank: high > normal > low. Nilai tak dikenal dianggap normal.
func PriorityRank(p string) int {
	switch p {
	case ReservationPriorityHigh:
		return 2
	case ReservationPriorityLow:
		return 0
	default:
		return 1
	}
}

func ValidPriority(p string) bool {
	switch p {
	case ReservationPriorityLow, ReservationPriorityNormal, ReservationPriorityHigh:
		return true
	}
	return false
}
