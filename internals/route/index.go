// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "perpustakaanku_backend/internals/features/library/books/route"
	categoryRoute "perpustakaanku_backend/internals/features/library/categories/route"
	fineRoute "perpustakaanku_backend/internals/features/library/fines/route"
	loanRoute "perpustakaanku_backend/internals/features/library/loans/route"
	memberRoute "perpustakaanku_backend/internals/features/library/members/route"
	notifRoute "perpustakaanku_backend/internals/features/library/notifications/route"
	policyRoute "perpustakaanku_backend/internals/features/library/policy/route"
	resRoute "perpustakaanku_backend/internals/features/library/reservations/route"
	authRoute "perpustakaanku_backend/internals/features/users/auth/route"
	authMw "perpustakaanku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== WEBHOOK (publik, tanpa JWT) =====================
	log.Println("[INFO] Setting up webhook routes...")
	fineRoute.FineWebhookRoutes(app.Group("/api"), db)

	// ===================== PUBLIC =====================
	// Katalog bisa dilihat tanpa login
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	bookRoute.BookPublicRoutes(public, db)
	categoryRoute.CategoryPublicRoutes(public, db)

	// ===================== PRIVATE (MEMBER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware(db))
	loanRoute.LoanUserRoutes(private, db)
	resRoute.ReservationUserRoutes(private, db)
	fineRoute.FineUserRoutes(private, db)
	notifRoute.NotificationUserRoutes(private, db)

	// ===================== ADMIN (PETUGAS) =====================
	// Guard role per fitur ada di masing-masing route
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db))
	bookRoute.BookAdminRoutes(admin, db)
	categoryRoute.CategoryAdminRoutes(admin, db)
	memberRoute.MemberAdminRoutes(admin, db)
	policyRoute.PolicyAdminRoutes(admin, db)
	loanRoute.LoanAdminRoutes(admin, db)
	resRoute.ReservationAdminRoutes(admin, db)
	fineRoute.FineAdminRoutes(admin, db)

	// ===================== MISC =====================
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})
}
