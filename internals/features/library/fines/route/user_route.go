package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fineController "perpustakaanku_backend/internals/features/library/fines/controller"
)

// FineUserRoutes — denda milik member login + pembayaran Snap.
// Endpoint: /api/u/fines (sudah di belakang AuthMiddleware)
func FineUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fineController.NewFineController(db)

	g := r.Group("/fines")
	g.Get("/", ctl.ListMyFines)
	g.Post("/pay", ctl.PayOnline)
}
