package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware: panic di handler tidak boleh menjatuhkan proses —
// diubah jadi 500, stack dicatat supaya bisa ditelusuri.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("❌ panic pada %s %s: %v\n", c.Method(), c.Path(), e)
		},
	})
}
