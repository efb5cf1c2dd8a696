package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	fineController "perpustakaanku_backend/internals/features/library/fines/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// FineAdminRoutes — ledger denda seluruh anggota.
// Endpoint: /api/a/fines
func FineAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fineController.NewFineController(db)

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorLibrarian("kelola denda"),
		constants.LibrarianAndAbove,
	)

	g := r.Group("/fines", guard)
	g.Get("/", ctl.ListFines)
}
