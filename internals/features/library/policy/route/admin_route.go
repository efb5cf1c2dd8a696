package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/constants"
	policyController "perpustakaanku_backend/internals/features/library/policy/controller"
	"perpustakaanku_backend/internals/middlewares/auth"
)

// PolicyAdminRoutes — hanya admin yang boleh mengubah policy sirkulasi.
// Endpoint: /api/a/policy
func PolicyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &policyController.LoanPolicyController{DB: db}

	g := r.Group("/policy",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("policy sirkulasi"), constants.AdminAndAbove),
	)
	g.Get("/", ctl.Get)
	g.Put("/", ctl.Upsert)
}
