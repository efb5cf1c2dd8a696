// internals/features/library/books/service/inventory.go
package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

// ErrNoAvailableCopy: stok tersedia sudah nol (atau sudah penuh saat increment).
var ErrNoAvailableCopy = errors.New("no available copy")

// DecrementAvailable mengurangi stok tersedia satu judul. Guarded UPDATE:
// dua request bersamaan tidak mungkin sama-sama lolos saat sisa stok 1.
func DecrementAvailable(tx *gorm.DB, bookID uuid.UUID) error {
	res := tx.Model(&model.BookModel{}).
		Where("book_id = ? AND book_available_copies > 0", bookID).
		UpdateColumn("book_available_copies", gorm.Expr("book_available_copies - 1"))
	if res.Error != nil {
		return errors.Wrap(res.Error, "decrement available copies")
	}
	if res.RowsAffected == 0 {
		return ErrNoAvailableCopy
	}
	return nil
}

// IncrementAvailable menambah stok tersedia, dibatasi total eksemplar.
func IncrementAvailable(tx *gorm.DB, bookID uuid.UUID) error {
	res := tx.Model(&model.BookModel{}).
		Where("book_id = ? AND book_available_copies < book_total_copies", bookID).
		UpdateColumn("book_available_copies", gorm.Expr("book_available_copies + 1"))
	if res.Error != nil {
		return errors.Wrap(res.Error, "increment available copies")
	}
	if res.RowsAffected == 0 {
		return ErrNoAvailableCopy
	}
	return nil
}

// HoldOneCopy menahan satu eksemplar available untuk reservasi Ready.
// Best-effort: kalau tidak ada eksemplar available (mis. promosi manual
// saat stok kosong), tidak ada baris yang berubah dan itu bukan error.
func HoldOneCopy(tx *gorm.DB, bookID uuid.UUID) error {
	err := tx.Exec(`UPDATE book_copies SET copy_status = ? WHERE copy_id = (
		SELECT copy_id FROM book_copies
		WHERE copy_book_id = ? AND copy_status = ? AND copy_deleted_at IS NULL
		ORDER BY copy_barcode LIMIT 1)`,
		model.CopyStatusHeld, bookID, model.CopyStatusAvailable).Error
	return errors.Wrap(err, "hold copy for reservation")
}

// ReleaseHeldCopy melepas satu eksemplar held kembali ke rak. Best-effort:
// no-op kalau eksemplar yang ditahan sudah terpakai (di-issue jadi on_loan).
func ReleaseHeldCopy(tx *gorm.DB, bookID uuid.UUID) error {
	err := tx.Exec(`UPDATE book_copies SET copy_status = ? WHERE copy_id = (
		SELECT copy_id FROM book_copies
		WHERE copy_book_id = ? AND copy_status = ? AND copy_deleted_at IS NULL
		ORDER BY copy_barcode LIMIT 1)`,
		model.CopyStatusAvailable, bookID, model.CopyStatusHeld).Error
	return errors.Wrap(err, "release held copy")
}

// MarkCopyStatus set status satu eksemplar (available/on_loan/held/...).
func MarkCopyStatus(tx *gorm.DB, copyID uuid.UUID, status string) error {
	res := tx.Model(&model.BookCopyModel{}).
		Where("copy_id = ?", copyID).
		UpdateColumn("copy_status", status)
	if res.Error != nil {
		return errors.Wrap(res.Error, "mark copy status")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
