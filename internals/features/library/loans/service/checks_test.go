package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okIssueCheck() IssueCheck {
	return IssueCheck{
		MemberFound:     true,
		MemberSuspended: false,
		ActiveLoans:     1,
		MaxLoans:        5,
		PeriodAllowed:   true,
		AvailableCopies: 2,
		ReadyForOthers:  0,
		OverdueLoans:    0,
	}
}

func TestCheckIssueHappyPath(t *testing.T) {
	warnings, err := CheckIssue(okIssueCheck())
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestCheckIssueMemberNotFound(t *testing.T) {
	s := okIssueCheck()
	s.MemberFound = false
	_, err := CheckIssue(s)
	assert.ErrorIs(t, err, ErrBorrowerNotFound)
}

func TestCheckIssueSuspendedMember(t *testing.T) {
	s := okIssueCheck()
	s.MemberSuspended = true
	_, err := CheckIssue(s)
	assert.ErrorIs(t, err, ErrBorrowerSuspended)
}

func TestCheckIssueBorrowLimit(t *testing.T) {
	testCases := []struct {
		activeLoans int
		maxLoans    int
		wantErr     bool
	}{
		{4, 5, false},
		{5, 5, true},
		{6, 5, true},
		{0, 0, true},
		{2, 3, false},
	}
	for _, tt := range testCases {
		s := okIssueCheck()
		s.ActiveLoans = tt.activeLoans
		s.MaxLoans = tt.maxLoans
		_, err := CheckIssue(s)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrBorrowLimitExceeded, "active=%d max=%d", tt.activeLoans, tt.maxLoans)
		} else {
			assert.NoError(t, err, "active=%d max=%d", tt.activeLoans, tt.maxLoans)
		}
	}
}

func TestCheckIssuePeriodNotAllowed(t *testing.T) {
	s := okIssueCheck()
	s.PeriodAllowed = false
	_, err := CheckIssue(s)
	assert.ErrorIs(t, err, ErrPeriodNotAllowed)
}

func TestCheckIssueNoCopies(t *testing.T) {
	s := okIssueCheck()
	s.AvailableCopies = 0
	_, err := CheckIssue(s)
	assert.ErrorIs(t, err, ErrCopyUnavailable)
}

func TestCheckIssueReservedForOther(t *testing.T) {
	// satu copy tersisa, satu reservasi Ready milik member lain
	s := okIssueCheck()
	s.AvailableCopies = 1
	s.ReadyForOthers = 1
	_, err := CheckIssue(s)
	assert.ErrorIs(t, err, ErrReservedForOther)

	// dua copy, satu Ready orang lain: masih boleh
	s.AvailableCopies = 2
	warnings, err := CheckIssue(s)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestCheckIssueOverdueWarningDoesNotBlock(t *testing.T) {
	s := okIssueCheck()
	s.OverdueLoans = 2
	warnings, err := CheckIssue(s)
	assert.NoError(t, err)
	assert.Contains(t, warnings, WarnHasOverdue)
}

func okRenewCheck() RenewCheck {
	return RenewCheck{
		LoanStatus:      "active",
		DueDate:         date(2025, time.January, 15),
		AsOf:            date(2025, time.January, 10),
		RenewalCount:    0,
		MaxRenewals:     2,
		QueuedWaiting:   0,
		UnpaidFineCount: 0,
	}
}

func TestCheckRenewHappyPath(t *testing.T) {
	assert.NoError(t, CheckRenew(okRenewCheck()))
}

func TestCheckRenewAlreadyReturned(t *testing.T) {
	s := okRenewCheck()
	s.LoanStatus = "returned"
	assert.ErrorIs(t, CheckRenew(s), ErrAlreadyReturned)
}

func TestCheckRenewUnknownStatus(t *testing.T) {
	s := okRenewCheck()
	s.LoanStatus = "lost"
	assert.ErrorIs(t, CheckRenew(s), ErrInvalidTransition)
}

func TestCheckRenewOverdueLoan(t *testing.T) {
	s := okRenewCheck()
	s.AsOf = s.DueDate.Add(time.Hour)
	assert.ErrorIs(t, CheckRenew(s), ErrLoanOverdue)

	// tepat di due date masih boleh
	s.AsOf = s.DueDate
	assert.NoError(t, CheckRenew(s))
}

func TestCheckRenewRenewalLimit(t *testing.T) {
	testCases := []struct {
		count   int
		max     int
		wantErr bool
	}{
		{0, 2, false},
		{1, 2, false},
		{2, 2, true},
		{3, 2, true},
		{0, 0, true},
	}
	for _, tt := range testCases {
		s := okRenewCheck()
		s.RenewalCount = tt.count
		s.MaxRenewals = tt.max
		err := CheckRenew(s)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrRenewalLimitReached, "count=%d max=%d", tt.count, tt.max)
		} else {
			assert.NoError(t, err, "count=%d max=%d", tt.count, tt.max)
		}
	}
}

func TestCheckRenewBlockedByReservation(t *testing.T) {
	s := okRenewCheck()
	s.QueuedWaiting = 1
	assert.ErrorIs(t, CheckRenew(s), ErrBookReserved)
}

func TestCheckRenewBlockedByUnpaidFine(t *testing.T) {
	s := okRenewCheck()
	s.UnpaidFineCount = 1
	assert.ErrorIs(t, CheckRenew(s), ErrFineUnpaid)
}

func TestCheckReturn(t *testing.T) {
	assert.NoError(t, CheckReturn("active"))
	assert.ErrorIs(t, CheckReturn("returned"), ErrAlreadyReturned)
	assert.ErrorIs(t, CheckReturn("lost"), ErrInvalidTransition)
}

func TestCheckSettlementUnpaidFineBlocksReturn(t *testing.T) {
	// denda 12.0, tidak dibayar dan tidak diputihkan → pengembalian gagal
	_, err := CheckSettlement(SettlementCheck{Fine: 12.0})
	assert.ErrorIs(t, err, ErrFineUnpaid)
}

func TestCheckSettlementNoFine(t *testing.T) {
	st, err := CheckSettlement(SettlementCheck{Fine: 0})
	assert.NoError(t, err)
	assert.Equal(t, SettleNone, st.Action)
	assert.Zero(t, st.Outstanding)
}

func TestCheckSettlementAlreadyPaidOnline(t *testing.T) {
	// pembayaran online sudah masuk sebelum member datang ke meja:
	// gerbang lolos tanpa aksi petugas apa pun
	st, err := CheckSettlement(SettlementCheck{Fine: 12.0, PaidSum: 12.0})
	assert.NoError(t, err)
	assert.Equal(t, SettleNone, st.Action)

	// lebih bayar juga lolos
	st, err = CheckSettlement(SettlementCheck{Fine: 12.0, PaidSum: 14.0})
	assert.NoError(t, err)
	assert.Equal(t, SettleNone, st.Action)
}

func TestCheckSettlementCashPath(t *testing.T) {
	st, err := CheckSettlement(SettlementCheck{Fine: 12.0, FinePaid: true})
	assert.NoError(t, err)
	assert.Equal(t, SettleCash, st.Action)
	assert.Equal(t, 12.0, st.Outstanding)
}

func TestCheckSettlementWaiverPath(t *testing.T) {
	st, err := CheckSettlement(SettlementCheck{Fine: 12.0, FineWaived: true})
	assert.NoError(t, err)
	assert.Equal(t, SettleWaiver, st.Action)
	assert.Equal(t, 12.0, st.Outstanding)

	// pemutihan menang atas pembayaran tunai bila dua-duanya diisi
	st, err = CheckSettlement(SettlementCheck{Fine: 12.0, FinePaid: true, FineWaived: true})
	assert.NoError(t, err)
	assert.Equal(t, SettleWaiver, st.Action)
}

func TestCheckSettlementPartialOnlineThenCash(t *testing.T) {
	// 8.0 sudah dibayar online, sisa 4.0 dibayar tunai di meja
	st, err := CheckSettlement(SettlementCheck{Fine: 12.0, PaidSum: 8.0, FinePaid: true})
	assert.NoError(t, err)
	assert.Equal(t, SettleCash, st.Action)
	assert.Equal(t, 4.0, st.Outstanding)

	// sisa belum dibayar → tetap diblok
	_, err = CheckSettlement(SettlementCheck{Fine: 12.0, PaidSum: 8.0})
	assert.ErrorIs(t, err, ErrFineUnpaid)
}
