package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resController "perpustakaanku_backend/internals/features/library/reservations/controller"
)

// ReservationUserRoutes — reservasi milik member login.
// Endpoint: /api/u/reservations (sudah di belakang AuthMiddleware)
func ReservationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resController.NewReservationController(db)

	g := r.Group("/reservations")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.ListMine)
	g.Delete("/:id", ctl.Cancel)
}
