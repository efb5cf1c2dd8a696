package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	bookController "perpustakaanku_backend/internals/features/library/books/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// BookAdminRoutes — kelola katalog + eksemplar.
// Endpoint: /api/a/books
func BookAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BookController{DB: db}

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorLibrarian("kelola buku"),
		constants.LibrarianAndAbove,
	)

	g := r.Group("/books", guard)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Put("/:id/cover", ctl.UploadCover)
	g.Post("/:id/copies", ctl.AddCopy)
	g.Delete("/:id", ctl.Delete)
}
