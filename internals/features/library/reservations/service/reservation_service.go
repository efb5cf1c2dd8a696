// internals/features/library/reservations/service/reservation_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	bookService "perpustakaanku_backend/internals/features/library/books/service"
	notifService "perpustakaanku_backend/internals/features/library/notifications/service"
	notifType "perpustakaanku_backend/internals/features/library/notifications/model"
	model "perpustakaanku_backend/internals/features/library/reservations/model"
)

var (
	ErrDuplicateReservation = errors.New("member already has reservation for this title")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrBookNotFound         = errors.New("book not found")
)

// Clock di-inject untuk test (lihat loans/service: pola yang sama).
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type ReservationService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, Clock: realClock{}}
}

func (s *ReservationService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now().UTC()
}

// lockBook mengunci baris buku: semua mutasi antrean per judul
// diserialisasi lewat FOR UPDATE di baris ini.
func lockBook(tx *gorm.DB, bookID uuid.UUID) error {
	var b bookModel.BookModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "book_id = ?", bookID).Error; err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return ErrBookNotFound
		}
		return errors.Wrap(err, "lock book row")
	}
	return nil
}

// =========================================================
// Reserve: member masuk antrean satu judul
// =========================================================
func (s *ReservationService) Reserve(memberID, bookID uuid.UUID, priority string) (*model.ReservationModel, int, error) {
	if !model.ValidPriority(priority) {
		priority = model.ReservationPriorityNormal
	}

	var created model.ReservationModel
	var position int

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockBook(tx, bookID); err != nil {
			return err
		}

		// Reservasi kadaluarsa dibereskan dulu (pull-based)
		if err := s.expireReadyLocked(tx, bookID); err != nil {
			return err
		}

		// Satu member satu reservasi hidup per judul
		var dup int64
		if err := tx.Model(&model.ReservationModel{}).
			Where("reservation_member_id = ? AND reservation_book_id = ?", memberID, bookID).
			Where("reservation_status IN ?", []string{model.ReservationStatusWaiting, model.ReservationStatusReady}).
			Count(&dup).Error; err != nil {
			return errors.Wrap(err, "check duplicate reservation")
		}
		if dup > 0 {
			return ErrDuplicateReservation
		}

		created = model.ReservationModel{
			ReservationMemberID:    memberID,
			ReservationBookID:      bookID,
			ReservationPriority:    priority,
			ReservationStatus:      model.ReservationStatusWaiting,
			ReservationRequestedAt: s.now(),
		}
		if err := tx.Create(&created).Error; err != nil {
			return errors.Wrap(err, "create reservation")
		}

		waiting, err := waitingFor(tx, bookID)
		if err != nil {
			return err
		}
		position = PositionOf(waiting, created.ReservationID)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &created, position, nil
}

// =========================================================
// Cancel: Waiting/Ready → Cancelled. Idempoten:
// cancel entri yang sudah Cancelled/Fulfilled adalah no-op.
// =========================================================
func (s *ReservationService) Cancel(reservationID uuid.UUID, holdDays int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var r model.ReservationModel
		if err := tx.First(&r, "reservation_id = ?", reservationID).Error; err != nil {
			if errors.Cause(err) == gorm.ErrRecordNotFound {
				return ErrReservationNotFound
			}
			return errors.Wrap(err, "load reservation")
		}

		if err := lockBook(tx, r.ReservationBookID); err != nil {
			return err
		}

		switch r.ReservationStatus {
		case model.ReservationStatusCancelled, model.ReservationStatusFulfilled:
			return nil // no-op
		}

		wasReady := r.ReservationStatus == model.ReservationStatusReady
		if err := tx.Model(&r).UpdateColumn("reservation_status", model.ReservationStatusCancelled).Error; err != nil {
			return errors.Wrap(err, "cancel reservation")
		}

		// Ready yang dibatalkan melepas eksemplar tahanannya dan
		// gilirannya jatuh ke antrean berikut
		if wasReady {
			if err := bookService.ReleaseHeldCopy(tx, r.ReservationBookID); err != nil {
				return err
			}
			return s.promoteHeadLocked(tx, r.ReservationBookID, holdDays)
		}
		return nil
	})
}

// =========================================================
// PromoteHead: dipanggil saat satu copy bebas (return/cancel-ready).
// Invariant: maksimal satu Ready per judul.
// =========================================================
func (s *ReservationService) PromoteHead(tx *gorm.DB, bookID uuid.UUID, holdDays int) error {
	return s.promoteHeadLocked(tx, bookID, holdDays)
}

func (s *ReservationService) promoteHeadLocked(tx *gorm.DB, bookID uuid.UUID, holdDays int) error {
	// Sudah ada Ready hidup → tidak promote lagi
	var readyCnt int64
	if err := tx.Model(&model.ReservationModel{}).
		Where("reservation_book_id = ? AND reservation_status = ?", bookID, model.ReservationStatusReady).
		Count(&readyCnt).Error; err != nil {
		return errors.Wrap(err, "count ready reservations")
	}
	if readyCnt > 0 {
		return nil
	}

	waiting, err := waitingFor(tx, bookID)
	if err != nil {
		return err
	}
	head := HeadOf(waiting)
	if head == nil {
		return nil
	}

	now := s.now()
	expires := HoldExpiry(now, holdDays)
	if err := tx.Model(&model.ReservationModel{}).
		Where("reservation_id = ?", head.ReservationID).
		UpdateColumns(map[string]interface{}{
			"reservation_status":     model.ReservationStatusReady,
			"reservation_ready_at":   now,
			"reservation_expires_at": expires,
		}).Error; err != nil {
		return errors.Wrap(err, "promote reservation head")
	}

	// Satu eksemplar ditahan untuk member yang gilirannya tiba
	if err := bookService.HoldOneCopy(tx, bookID); err != nil {
		return err
	}

	notifService.Emit(tx, head.ReservationMemberID,
		notifType.NotificationReservationReady,
		"Buku reservasi siap diambil",
		"Buku yang Anda reservasi sudah tersedia. Segera ambil sebelum masa tahan berakhir.",
		map[string]any{
			"reservation_id": head.ReservationID.String(),
			"book_id":        bookID.String(),
			"expires_at":     expires.Format(time.RFC3339),
		})
	return nil
}

// =========================================================
// ExpireReady: Ready yang lewat batas ambil → Cancelled, lalu giliran
// jatuh ke antrean berikutnya. Dievaluasi saat baca/operasi (pull-based).
// =========================================================
func (s *ReservationService) ExpireReady(tx *gorm.DB, bookID uuid.UUID) error {
	return s.expireReadyLocked(tx, bookID)
}

func (s *ReservationService) expireReadyLocked(tx *gorm.DB, bookID uuid.UUID) error {
	now := s.now()
	for {
		var r model.ReservationModel
		err := tx.Where("reservation_book_id = ? AND reservation_status = ?", bookID, model.ReservationStatusReady).
			First(&r).Error
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "load ready reservation")
		}
		if !ReadyExpired(&r, now) {
			return nil
		}
		if err := tx.Model(&r).UpdateColumn("reservation_status", model.ReservationStatusCancelled).Error; err != nil {
			return errors.Wrap(err, "expire ready reservation")
		}
		if err := bookService.ReleaseHeldCopy(tx, bookID); err != nil {
			return err
		}
		// Promote berikutnya; loop lagi kalau yang baru juga sudah basi
		// (holdDays bisa 0 di konfigurasi ekstrem)
		holdDays := 0
		if r.ReservationReadyAt != nil && r.ReservationExpiresAt != nil {
			holdDays = int(r.ReservationExpiresAt.Sub(*r.ReservationReadyAt).Hours() / 24)
		}
		if err := s.promoteHeadLocked(tx, bookID, holdDays); err != nil {
			return err
		}
	}
}

// =========================================================
// Fulfill: reservasi Ready milik member di-claim saat issue.
// =========================================================
func (s *ReservationService) Fulfill(tx *gorm.DB, bookID, memberID uuid.UUID) error {
	res := tx.Model(&model.ReservationModel{}).
		Where("reservation_book_id = ? AND reservation_member_id = ? AND reservation_status = ?",
			bookID, memberID, model.ReservationStatusReady).
		UpdateColumn("reservation_status", model.ReservationStatusFulfilled)
	if res.Error != nil {
		return errors.Wrap(res.Error, "fulfill reservation")
	}
	// Eksemplar yang ditahan untuk reservasi ini dilepas. No-op bila
	// eksemplar tahanannya sendiri yang di-issue (sudah on_loan).
	if res.RowsAffected > 0 {
		return bookService.ReleaseHeldCopy(tx, bookID)
	}
	return nil
}

/* =========================
   Queries
   ========================= */

func waitingFor(tx *gorm.DB, bookID uuid.UUID) ([]model.ReservationModel, error) {
	var rows []model.ReservationModel
	if err := tx.Where("reservation_book_id = ? AND reservation_status = ?", bookID, model.ReservationStatusWaiting).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load waiting queue")
	}
	return rows, nil
}

// WaitingQueue: antrean Waiting satu judul (untuk listing).
func (s *ReservationService) WaitingQueue(bookID uuid.UUID) ([]model.ReservationModel, error) {
	rows, err := waitingFor(s.DB, bookID)
	if err != nil {
		return nil, err
	}
	SortWaiting(rows)
	return rows, nil
}

// QueuedCount: jumlah Waiting+Ready satu judul (gerbang renewal).
func QueuedCount(tx *gorm.DB, bookID uuid.UUID) (int64, error) {
	var cnt int64
	err := tx.Model(&model.ReservationModel{}).
		Where("reservation_book_id = ?", bookID).
		Where("reservation_status IN ?", []string{model.ReservationStatusWaiting, model.ReservationStatusReady}).
		Count(&cnt).Error
	return cnt, errors.Wrap(err, "count queued reservations")
}

// ReadyForOthersCount: reservasi Ready milik member LAIN pada judul ini.
func ReadyForOthersCount(tx *gorm.DB, bookID, memberID uuid.UUID) (int64, error) {
	var cnt int64
	err := tx.Model(&model.ReservationModel{}).
		Where("reservation_book_id = ? AND reservation_status = ?", bookID, model.ReservationStatusReady).
		Where("reservation_member_id <> ?", memberID).
		Count(&cnt).Error
	return cnt, errors.Wrap(err, "count ready for others")
}

// EstimateAvailability: perkiraan kapan judul tersedia = due date paling
// dekat di antara pinjaman aktifnya. Nil kalau tidak ada pinjaman aktif.
func EstimateAvailability(db *gorm.DB, bookID uuid.UUID) (*time.Time, error) {
	var due time.Time
	err := db.Table("loans").
		Select("loan_due_date").
		Where("loan_book_id = ? AND loan_status = 'active' AND loan_deleted_at IS NULL", bookID).
		Order("loan_due_date asc").
		Limit(1).
		Scan(&due).Error
	if err != nil {
		return nil, errors.Wrap(err, "estimate availability")
	}
	if due.IsZero() {
		return nil, nil
	}
	return &due, nil
}

// =========================================================
// Wrapper transaksional untuk pemanggil di luar transaksi (controller,
// scheduler): buka tx sendiri + lock buku, lalu delegasi ke varian locked.
// =========================================================

// SweepExpired membereskan semua Ready basi satu judul.
func (s *ReservationService) SweepExpired(bookID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockBook(tx, bookID); err != nil {
			return err
		}
		return s.expireReadyLocked(tx, bookID)
	})
}

// PromoteHeadTx promosi manual kepala antrean dalam transaksinya sendiri.
func (s *ReservationService) PromoteHeadTx(bookID uuid.UUID, holdDays int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockBook(tx, bookID); err != nil {
			return err
		}
		if err := s.expireReadyLocked(tx, bookID); err != nil {
			return err
		}
		return s.promoteHeadLocked(tx, bookID, holdDays)
	})
}
