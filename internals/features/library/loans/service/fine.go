// internals/features/library/loans/service/fine.go
package service

import (
	"math"
	"time"
)

// CalculateFine menghitung denda keterlambatan.
//
//   - asOf <= due  → 0 (termasuk pengembalian lebih awal)
//   - selisih dibulatkan KE ATAS ke hari penuh: kembali H+1 lewat tengah
//     malam = kena 1 hari penuh, bukan pecahan
//   - fungsi murni & deterministik; pemanggilan berulang dengan input sama
//     selalu menghasilkan nilai sama
//
// skewed=true hanya ketika hitungan hari keluar non-positif padahal
// asOf > due — mestinya tak pernah terjadi; nilainya di-clamp ke 0 dan
// caller meneruskan advisory WarnClockSkew alih-alih denda negatif.
func CalculateFine(due, asOf time.Time, finePerDay float64) (amount float64, skewed bool) {
	if !asOf.After(due) {
		return 0, false
	}
	days := WholeDaysLate(due, asOf)
	if days <= 0 {
		return 0, true
	}
	return float64(days) * finePerDay, false
}

// WholeDaysLate: jumlah hari penuh keterlambatan, dibulatkan ke atas.
// 0 jika asOf <= due.
func WholeDaysLate(due, asOf time.Time) int {
	if !asOf.After(due) {
		return 0
	}
	return int(math.Ceil(asOf.Sub(due).Hours() / 24))
}

// FineFor menghitung denda berjalan satu pinjaman terhadap jam asOf.
// Pinjaman yang sudah kembali memakai denda final yang di-assess.
func FineFor(status string, due time.Time, assessed float64, asOf time.Time, finePerDay float64) float64 {
	if status != "active" {
		return assessed
	}
	amount, _ := CalculateFine(due, asOf, finePerDay)
	return amount
}
