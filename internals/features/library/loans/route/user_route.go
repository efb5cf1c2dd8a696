package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loanController "perpustakaanku_backend/internals/features/library/loans/controller"
)

// LoanUserRoutes — peminjaman milik member login.
// Endpoint: /api/u/loans (sudah di belakang AuthMiddleware)
func LoanUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := loanController.NewLoanController(db)

	g := r.Group("/loans")
	g.Get("/", ctl.ListMyLoans)
}
