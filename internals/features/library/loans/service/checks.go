// internals/features/library/loans/service/checks.go
package service

import (
	"time"
)

// Prasyarat transisi dicek sebagai fungsi murni atas snapshot state,
// terpisah dari I/O, supaya aturan sirkulasi bisa diuji tanpa DB.

// IssueCheck: snapshot yang dibutuhkan untuk memutuskan satu peminjaman.
type IssueCheck struct {
	MemberFound     bool
	MemberSuspended bool
	ActiveLoans     int // pinjaman aktif member saat ini
	MaxLoans        int // kuota efektif (policy / override)
	PeriodAllowed   bool
	AvailableCopies int
	ReadyForOthers  int // reservasi Ready milik member lain pada judul ini
	OverdueLoans    int // pinjaman overdue member (advisory, tidak memblokir)
}

// CheckIssue memvalidasi prasyarat IssueBook. Urutan pengecekan stabil:
// keberadaan & status member dulu, lalu kuota, periode, baru stok/reservasi.
func CheckIssue(s IssueCheck) (warnings []string, err error) {
	if !s.MemberFound {
		return nil, ErrBorrowerNotFound
	}
	if s.MemberSuspended {
		return nil, ErrBorrowerSuspended
	}
	if s.ActiveLoans >= s.MaxLoans {
		return nil, ErrBorrowLimitExceeded
	}
	if !s.PeriodAllowed {
		return nil, ErrPeriodNotAllowed
	}
	if s.AvailableCopies <= 0 {
		return nil, ErrCopyUnavailable
	}
	// Copy tersisa sudah "dipegang" reservasi Ready member lain
	if s.AvailableCopies <= s.ReadyForOthers {
		return nil, ErrReservedForOther
	}
	// Punya tunggakan overdue: boleh pinjam, tapi petugas diberi tahu
	// (menggantikan confirm-dialog lama di sisi UI)
	if s.OverdueLoans > 0 {
		warnings = append(warnings, WarnHasOverdue)
	}
	return warnings, nil
}

// RenewCheck: snapshot untuk keputusan perpanjangan.
type RenewCheck struct {
	LoanStatus      string
	DueDate         time.Time
	AsOf            time.Time
	RenewalCount    int
	MaxRenewals     int
	QueuedWaiting   int // reservasi Waiting/Ready pada judul ini
	UnpaidFineCount int // denda member yang belum lunas
}

// CheckRenew memvalidasi prasyarat RenewLoan.
// Perpanjangan pinjaman overdue ditolak — harus kembali/bayar dulu.
func CheckRenew(s RenewCheck) error {
	switch s.LoanStatus {
	case "active":
		// lanjut
	case "returned":
		return ErrAlreadyReturned
	default:
		return ErrInvalidTransition
	}
	if s.AsOf.After(s.DueDate) {
		return ErrLoanOverdue
	}
	if s.RenewalCount >= s.MaxRenewals {
		return ErrRenewalLimitReached
	}
	if s.QueuedWaiting > 0 {
		return ErrBookReserved
	}
	if s.UnpaidFineCount > 0 {
		return ErrFineUnpaid
	}
	return nil
}

// SettlementCheck: snapshot gerbang finansial pengembalian.
type SettlementCheck struct {
	Fine       float64 // proyeksi denda saat pengembalian
	PaidSum    float64 // total baris denda paid yang sudah tercatat untuk loan ini
	FinePaid   bool    // dibayar tunai di meja
	FineWaived bool    // diputihkan petugas
}

// Aksi pencatatan hasil keputusan gerbang finansial
const (
	SettleNone   = "none"   // lunas (atau denda nol), tidak ada baris baru
	SettleWaiver = "waiver" // catat baris waived sebesar Outstanding
	SettleCash   = "cash"   // catat baris paid tunai sebesar Outstanding
)

type Settlement struct {
	Action      string
	Outstanding float64 // sisa yang dicatat pada baris baru (0 untuk SettleNone)
}

// CheckSettlement memutuskan gerbang finansial ReturnBook: denda harus
// lunas/diputihkan sebelum pengembalian selesai. Pembayaran online yang
// sudah masuk (PaidSum) dihitung lebih dulu; pemutihan menang atas tunai
// kalau dua-duanya diisi petugas.
func CheckSettlement(s SettlementCheck) (Settlement, error) {
	if s.Fine <= 0 || s.PaidSum >= s.Fine {
		return Settlement{Action: SettleNone}, nil
	}
	outstanding := s.Fine - s.PaidSum
	if s.FineWaived {
		return Settlement{Action: SettleWaiver, Outstanding: outstanding}, nil
	}
	if s.FinePaid {
		return Settlement{Action: SettleCash, Outstanding: outstanding}, nil
	}
	return Settlement{}, ErrFineUnpaid
}

// CheckReturn memvalidasi prasyarat ReturnBook atas status tersimpan.
func CheckReturn(loanStatus string) error {
	switch loanStatus {
	case "active":
		return nil
	case "returned":
		return ErrAlreadyReturned
	default:
		return ErrInvalidTransition
	}
}

// NextDueDate: due date baru setelah perpanjangan.
// Invariant: selalu bertambah — extensionDays minimal 1 dijaga policy.
func NextDueDate(due time.Time, extensionDays int) time.Time {
	return due.AddDate(0, 0, extensionDays)
}

// DueDateFor: due date awal saat issue.
func DueDateFor(issue time.Time, periodDays int) time.Time {
	return issue.AddDate(0, 0, periodDays)
}
