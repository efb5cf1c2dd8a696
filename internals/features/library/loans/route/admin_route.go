package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	loanController "perpustakaanku_backend/internals/features/library/loans/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// LoanAdminRoutes — sirkulasi di meja petugas (issue/renew/return).
// Endpoint: /api/a/loans
func LoanAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := loanController.NewLoanController(db)

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorLibrarian("kelola sirkulasi"),
		constants.LibrarianAndAbove,
	)

	g := r.Group("/loans", guard)
	g.Post("/issue", ctl.IssueLoan)
	g.Post("/:id/renew", ctl.RenewLoan)
	g.Post("/:id/return", ctl.ReturnLoan)
	g.Get("/", ctl.ListLoans)
	g.Get("/:id", ctl.GetLoanByID)
}
