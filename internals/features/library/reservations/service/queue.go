// internals/features/library/reservations/service/queue.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/reservations/model"
)

// Aturan antrean sebagai fungsi murni atas slice snapshot, supaya
// ranking/posisi bisa diuji tanpa DB. Sisi I/O ada di reservation_service.go.

// SortWaiting mengurutkan entri Waiting sesuai ranking antrean:
// priority desc, requestedAt asc, lalu urutan insert (seq) asc.
func SortWaiting(entries []model.ReservationModel) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := model.PriorityRank(entries[i].ReservationPriority), model.PriorityRank(entries[j].ReservationPriority)
		if ri != rj {
			return ri > rj
		}
		if !entries[i].ReservationRequestedAt.Equal(entries[j].ReservationRequestedAt) {
			return entries[i].ReservationRequestedAt.Before(entries[j].ReservationRequestedAt)
		}
		return entries[i].ReservationSeq < entries[j].ReservationSeq
	})
}

// PositionOf: posisi 1-based sebuah entri di antrean Waiting; 0 jika
// tidak ada di antrean.
func PositionOf(waiting []model.ReservationModel, id uuid.UUID) int {
	cp := make([]model.ReservationModel, len(waiting))
	copy(cp, waiting)
	SortWaiting(cp)
	for i := range cp {
		if cp[i].ReservationID == id {
			return i + 1
		}
	}
	return 0
}

// HeadOf: entri Waiting dengan ranking terbaik; nil kalau antrean kosong.
func HeadOf(waiting []model.ReservationModel) *model.ReservationModel {
	if len(waiting) == 0 {
		return nil
	}
	cp := make([]model.ReservationModel, len(waiting))
	copy(cp, waiting)
	SortWaiting(cp)
	return &cp[0]
}

// ReadyExpired: reservasi Ready yang melewati batas ambil.
// Pull-based — dievaluasi saat baca/operasi, bukan timer background.
func ReadyExpired(r *model.ReservationModel, now time.Time) bool {
	if r.ReservationStatus != model.ReservationStatusReady || r.ReservationExpiresAt == nil {
		return false
	}
	return now.After(*r.ReservationExpiresAt)
}

// HoldExpiry: batas ambil reservasi Ready.
func HoldExpiry(readyAt time.Time, holdDays int) time.Time {
	return readyAt.AddDate(0, 0, holdDays)
}
