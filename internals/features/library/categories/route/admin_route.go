package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	catController "perpustakaanku_backend/internals/features/library/categories/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// CategoryAdminRoutes — CRUD kategori untuk staf perpustakaan.
// Endpoint: /api/a/categories
func CategoryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &catController.CategoryController{DB: db}

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorLibrarian("kelola kategori"),
		constants.LibrarianAndAbove,
	)

	g := r.Group("/categories", guard)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// CategoryPublicRoutes — listing kategori untuk katalog publik.
// Endpoint: /api/public/categories
func CategoryPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &catController.CategoryController{DB: db}

	g := r.Group("/categories")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
