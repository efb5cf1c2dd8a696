package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	memberController "perpustakaanku_backend/internals/features/library/members/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// MemberAdminRoutes — kelola anggota perpustakaan.
// Endpoint: /api/a/members
func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &memberController.MemberController{DB: db}

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorLibrarian("kelola anggota"),
		constants.LibrarianAndAbove,
	)

	g := r.Group("/members", guard)
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id/status", ctl.SetStatus)
}
