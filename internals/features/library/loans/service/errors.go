// internals/features/library/loans/service/errors.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Error domain sirkulasi. Semuanya kondisi yang diputuskan user/petugas,
// bukan fault transien — tidak pernah di-retry otomatis oleh engine.
var (
	// Pelanggaran policy
	ErrBorrowLimitExceeded = errors.New("borrow limit exceeded")
	ErrRenewalLimitReached = errors.New("renewal limit reached")
	ErrBookReserved        = errors.New("book has waiting reservation")
	ErrLoanOverdue         = errors.New("loan is overdue")

	// Konflik resource
	ErrCopyUnavailable  = errors.New("no copy available")
	ErrReservedForOther = errors.New("copy reserved for another member")

	// Gerbang finansial
	ErrFineUnpaid = errors.New("fine unpaid")

	// State
	ErrLoanNotFound      = errors.New("loan not found")
	ErrAlreadyReturned   = errors.New("loan already returned")
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrBorrowerSuspended = errors.New("borrower suspended")
	ErrBorrowerNotFound  = errors.New("borrower not found")
	ErrPeriodNotAllowed  = errors.New("loan period not allowed by policy")
)

// Advisory warnings: menyertai hasil sukses, tidak memblokir.
const (
	WarnHasOverdue = "HAS_OVERDUE"
	WarnClockSkew  = "CLOCK_SKEW"
)

// HTTPStatusFor memetakan error domain ke status HTTP.
// Controller tinggal: helper.JsonError(c, service.HTTPStatusFor(err), err.Error())
func HTTPStatusFor(err error) int {
	switch errors.Cause(err) {
	case ErrBorrowLimitExceeded, ErrRenewalLimitReached, ErrBookReserved,
		ErrLoanOverdue, ErrReservedForOther, ErrAlreadyReturned,
		ErrInvalidTransition, ErrBorrowerSuspended:
		return fiber.StatusConflict
	case ErrCopyUnavailable:
		return fiber.StatusConflict
	case ErrFineUnpaid:
		return fiber.StatusPaymentRequired
	case ErrLoanNotFound, ErrBorrowerNotFound:
		return fiber.StatusNotFound
	case ErrPeriodNotAllowed:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// IsDomainError true untuk error yang memang diperuntukkan caller
// (bukan kegagalan internal).
func IsDomainError(err error) bool {
	return HTTPStatusFor(err) != fiber.StatusInternalServerError
}
