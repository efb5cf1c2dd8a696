package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fineController "perpustakaanku_backend/internals/features/library/fines/controller"
)

// FineWebhookRoutes — endpoint publik untuk notifikasi Midtrans.
// Endpoint: /api/fines/notification (TANPA AuthMiddleware)
func FineWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fineController.NewFineController(db)

	r.Post("/fines/notification", ctl.HandleMidtransNotification)
}
