package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"perpustakaanku_backend/internals/features/library/reservations/model"
)

func ts(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func waitingEntry(priority string, requestedAt time.Time, seq int64) model.ReservationModel {
	return model.ReservationModel{
		ReservationID:          uuid.New(),
		ReservationMemberID:    uuid.New(),
		ReservationPriority:    priority,
		ReservationStatus:      model.ReservationStatusWaiting,
		ReservationRequestedAt: requestedAt,
		ReservationSeq:         seq,
	}
}

func TestSortWaitingPriorityDesc(t *testing.T) {
	base := ts(2025, time.March, 1, 10)
	low := waitingEntry(model.ReservationPriorityLow, base, 1)
	normal := waitingEntry(model.ReservationPriorityNormal, base.Add(time.Hour), 2)
	high := waitingEntry(model.ReservationPriorityHigh, base.Add(2*time.Hour), 3)

	entries := []model.ReservationModel{low, normal, high}
	SortWaiting(entries)

	assert.Equal(t, high.ReservationID, entries[0].ReservationID)
	assert.Equal(t, normal.ReservationID, entries[1].ReservationID)
	assert.Equal(t, low.ReservationID, entries[2].ReservationID)
}

func TestSortWaitingSamePriorityByRequestedAt(t *testing.T) {
	base := ts(2025, time.March, 1, 10)
	later := waitingEntry(model.ReservationPriorityNormal, base.Add(time.Hour), 1)
	earlier := waitingEntry(model.ReservationPriorityNormal, base, 2)

	entries := []model.ReservationModel{later, earlier}
	SortWaiting(entries)

	assert.Equal(t, earlier.ReservationID, entries[0].ReservationID)
	assert.Equal(t, later.ReservationID, entries[1].ReservationID)
}

func TestSortWaitingIdenticalTimestampFirstRegisteredWins(t *testing.T) {
	at := ts(2025, time.March, 1, 10)
	first := waitingEntry(model.ReservationPriorityNormal, at, 10)
	second := waitingEntry(model.ReservationPriorityNormal, at, 11)

	entries := []model.ReservationModel{second, first}
	SortWaiting(entries)

	assert.Equal(t, first.ReservationID, entries[0].ReservationID)
	assert.Equal(t, second.ReservationID, entries[1].ReservationID)
}

func TestSortWaitingHighPriorityJumpsQueue(t *testing.T) {
	base := ts(2025, time.March, 1, 10)
	oldNormal := waitingEntry(model.ReservationPriorityNormal, base, 1)
	newHigh := waitingEntry(model.ReservationPriorityHigh, base.AddDate(0, 0, 3), 2)

	entries := []model.ReservationModel{oldNormal, newHigh}
	SortWaiting(entries)

	// prioritas menang atas umur antrean
	assert.Equal(t, newHigh.ReservationID, entries[0].ReservationID)
}

func TestPositionOf(t *testing.T) {
	base := ts(2025, time.March, 1, 10)
	a := waitingEntry(model.ReservationPriorityNormal, base, 1)
	b := waitingEntry(model.ReservationPriorityNormal, base.Add(time.Minute), 2)
	c := waitingEntry(model.ReservationPriorityNormal, base.Add(2*time.Minute), 3)
	entries := []model.ReservationModel{a, b, c}
	SortWaiting(entries)

	assert.Equal(t, 1, PositionOf(entries, a.ReservationID))
	assert.Equal(t, 2, PositionOf(entries, b.ReservationID))
	assert.Equal(t, 3, PositionOf(entries, c.ReservationID))
	assert.Equal(t, 0, PositionOf(entries, uuid.New()))
}

func TestPositionShiftsAfterCancellation(t *testing.T) {
	base := ts(2025, time.March, 1, 10)
	a := waitingEntry(model.ReservationPriorityNormal, base, 1)
	b := waitingEntry(model.ReservationPriorityNormal, base.Add(time.Minute), 2)
	c := waitingEntry(model.ReservationPriorityNormal, base.Add(2*time.Minute), 3)

	entries := []model.ReservationModel{a, b, c}
	SortWaiting(entries)
	assert.Equal(t, 3, PositionOf(entries, c.ReservationID))

	// b batal → c naik
	entries = []model.ReservationModel{a, c}
	SortWaiting(entries)
	assert.Equal(t, 2, PositionOf(entries, c.ReservationID))
}

func TestCancelAndReReserveGoesToBack(t *testing.T) {
	base := ts(2025, time.March, 1, 10)
	a := waitingEntry(model.ReservationPriorityNormal, base, 1)
	b := waitingEntry(model.ReservationPriorityNormal, base.Add(time.Minute), 2)

	// a batal lalu memesan ulang: requested_at & seq baru → paling belakang
	a2 := waitingEntry(model.ReservationPriorityNormal, base.Add(time.Hour), 3)

	entries := []model.ReservationModel{b, a2}
	SortWaiting(entries)

	assert.Equal(t, b.ReservationID, entries[0].ReservationID)
	assert.Equal(t, a2.ReservationID, entries[1].ReservationID)
	_ = a
}

func TestHeadOf(t *testing.T) {
	assert.Nil(t, HeadOf(nil))
	assert.Nil(t, HeadOf([]model.ReservationModel{}))

	base := ts(2025, time.March, 1, 10)
	a := waitingEntry(model.ReservationPriorityNormal, base, 1)
	b := waitingEntry(model.ReservationPriorityHigh, base.Add(time.Minute), 2)
	entries := []model.ReservationModel{a, b}

	head := HeadOf(entries)
	assert.NotNil(t, head)
	assert.Equal(t, b.ReservationID, head.ReservationID)
}

func TestHoldExpiry(t *testing.T) {
	readyAt := ts(2025, time.March, 1, 10)
	assert.Equal(t, ts(2025, time.March, 3, 10), HoldExpiry(readyAt, 2))
}

func TestReadyExpired(t *testing.T) {
	readyAt := ts(2025, time.March, 1, 10)
	expires := HoldExpiry(readyAt, 2)

	r := model.ReservationModel{
		ReservationStatus:    model.ReservationStatusReady,
		ReservationReadyAt:   &readyAt,
		ReservationExpiresAt: &expires,
	}

	assert.False(t, ReadyExpired(&r, expires.Add(-time.Minute)))
	assert.False(t, ReadyExpired(&r, expires))
	assert.True(t, ReadyExpired(&r, expires.Add(time.Minute)))

	// waiting tidak pernah expired
	w := waitingEntry(model.ReservationPriorityNormal, readyAt, 1)
	assert.False(t, ReadyExpired(&w, expires.AddDate(0, 1, 0)))
}

func TestPriorityRankUnknownTreatedAsNormal(t *testing.T) {
	assert.Equal(t, model.PriorityRank(model.ReservationPriorityNormal), model.PriorityRank("vip"))
	assert.Greater(t, model.PriorityRank(model.ReservationPriorityHigh), model.PriorityRank(model.ReservationPriorityNormal))
	assert.Greater(t, model.PriorityRank(model.ReservationPriorityNormal), model.PriorityRank(model.ReservationPriorityLow))
}
