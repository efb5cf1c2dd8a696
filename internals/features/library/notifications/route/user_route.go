package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifController "perpustakaanku_backend/internals/features/library/notifications/controller"
)

// NotificationUserRoutes — inbox notifikasi member login.
// Endpoint: /api/u/notifications (sudah di belakang AuthMiddleware)
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifController.NewNotificationController(db)

	g := r.Group("/notifications")
	g.Get("/", ctl.ListMine)
	g.Patch("/read-all", ctl.MarkAllRead)
	g.Patch("/:id/read", ctl.MarkRead)
}
