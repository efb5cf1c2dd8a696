package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "perpustakaanku_backend/internals/features/library/books/controller"
)

// BookPublicRoutes — katalog publik.
// Endpoint: /api/public/books
func BookPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BookUserController{DB: db}

	g := r.Group("/books")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
