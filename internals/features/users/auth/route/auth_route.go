// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "perpustakaanku_backend/internals/features/users/auth/controller"
	"perpustakaanku_backend/internals/middlewares"
	authMw "perpustakaanku_backend/internals/middlewares/auth"
)

// AuthRoutes — base /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	base := app.Group("/api/auth")

	// 🔓 Public
	base.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	base.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	base.Post("/register", ctl.Register)
	base.Post("/refresh-token", ctl.RefreshToken)

	// 🔒 Protected
	protected := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protected.Post("/logout", ctl.Logout)
	protected.Post("/change-password", ctl.ChangePassword)
	protected.Get("/me", ctl.Me)
}
