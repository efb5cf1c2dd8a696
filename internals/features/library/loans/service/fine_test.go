package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateFineOnTimeReturn(t *testing.T) {
	due := date(2025, time.January, 15)

	amount, skewed := CalculateFine(due, date(2025, time.January, 15), 2.0)
	assert.Equal(t, 0.0, amount)
	assert.False(t, skewed)

	// kembali lebih awal juga nol
	amount, skewed = CalculateFine(due, date(2025, time.January, 10), 2.0)
	assert.Equal(t, 0.0, amount)
	assert.False(t, skewed)
}

func TestCalculateFineLateReturn(t *testing.T) {
	due := date(2025, time.January, 15)

	amount, skewed := CalculateFine(due, date(2025, time.January, 18), 2.0)
	assert.Equal(t, 6.0, amount)
	assert.False(t, skewed)
}

func TestCalculateFinePartialDayRoundsUp(t *testing.T) {
	due := date(2025, time.January, 15)

	testCases := []struct {
		asOf     time.Time
		expected float64
	}{
		{due.Add(1 * time.Minute), 2.0},
		{due.Add(23 * time.Hour), 2.0},
		{due.Add(24 * time.Hour), 2.0},
		{due.Add(25 * time.Hour), 4.0},
		{due.Add(48 * time.Hour), 4.0},
		{due.Add(49 * time.Hour), 6.0},
	}
	for _, tt := range testCases {
		amount, skewed := CalculateFine(due, tt.asOf, 2.0)
		assert.Equal(t, tt.expected, amount, "asOf=%s", tt.asOf)
		assert.False(t, skewed)
	}
}

func TestCalculateFineMonotonic(t *testing.T) {
	due := date(2025, time.January, 15)

	prev := 0.0
	for d := 0; d <= 30; d++ {
		amount, _ := CalculateFine(due, due.AddDate(0, 0, d), 2000)
		assert.GreaterOrEqual(t, amount, prev, "hari ke-%d", d)
		prev = amount
	}
}

func TestCalculateFineDeterministic(t *testing.T) {
	due := date(2025, time.January, 15)
	asOf := date(2025, time.February, 1)

	first, _ := CalculateFine(due, asOf, 1500)
	for i := 0; i < 5; i++ {
		again, _ := CalculateFine(due, asOf, 1500)
		assert.Equal(t, first, again)
	}
}

func TestWholeDaysLate(t *testing.T) {
	due := date(2025, time.January, 15)

	assert.Equal(t, 0, WholeDaysLate(due, due))
	assert.Equal(t, 0, WholeDaysLate(due, due.AddDate(0, 0, -1)))
	assert.Equal(t, 1, WholeDaysLate(due, due.Add(time.Hour)))
	assert.Equal(t, 3, WholeDaysLate(due, date(2025, time.January, 18)))
}

func TestFineForReturnedUsesAssessed(t *testing.T) {
	due := date(2025, time.January, 15)
	asOf := date(2025, time.March, 1)

	// pinjaman sudah kembali: denda final yang tercatat, bukan proyeksi
	assert.Equal(t, 4.0, FineFor("returned", due, 4.0, asOf, 2.0))

	// pinjaman aktif: proyeksi terhadap asOf
	assert.Equal(t, 90.0, FineFor("active", due, 0, date(2025, time.January, 30), 6.0))
}

func TestDueDateFor(t *testing.T) {
	issue := date(2025, time.January, 1)
	assert.Equal(t, date(2025, time.January, 15), DueDateFor(issue, 14))
}

func TestBackdatedIssueAccruesFromRealDueDate(t *testing.T) {
	// pencatatan mundur: issue_date di masa lalu → due date ikut mundur,
	// denda berjalan langsung dihitung dari due date yang sebenarnya
	issued := date(2025, time.March, 1)
	due := DueDateFor(issued, 14)
	assert.Equal(t, date(2025, time.March, 15), due)
	assert.Equal(t, 10.0, FineFor("active", due, 0, date(2025, time.March, 20), 2.0))
}

func TestNextDueDateAlwaysAdvances(t *testing.T) {
	due := date(2025, time.January, 15)
	next := NextDueDate(due, 7)
	assert.True(t, next.After(due))
	assert.Equal(t, date(2025, time.January, 22), next)
}
