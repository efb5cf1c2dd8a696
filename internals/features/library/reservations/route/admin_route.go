package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	resController "perpustakaanku_backend/internals/features/library/reservations/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// ReservationAdminRoutes — kelola antrean reservasi.
// Endpoint: /api/a/reservations
func ReservationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resController.NewReservationController(db)

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorLibrarian("kelola reservasi"),
		constants.LibrarianAndAbove,
	)

	g := r.Group("/reservations", guard)
	g.Get("/queue/:book_id", ctl.QueueByBook)
	g.Post("/queue/:book_id/promote", ctl.Promote)
	g.Delete("/:id", ctl.AdminCancel)
}
