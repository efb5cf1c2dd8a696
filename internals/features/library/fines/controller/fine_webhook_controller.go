// internals/features/library/fines/controller/fine_webhook_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"perpustakaanku_backend/internals/features/library/fines/service"
	helper "perpustakaanku_backend/internals/helpers"
)

// 🟢 POST /api/fines/notification  (public, dipanggil server Midtrans)
func (ctrl *FineController) HandleMidtransNotification(c *fiber.Ctx) error {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	raw := c.Body()

	body := map[string]interface{}{}
	if len(raw) > 0 && strings.Contains(ct, "application/json") {
		if err := sonic.Unmarshal(raw, &body); err != nil {
			log.Println("[ERROR] Webhook JSON tidak valid:", err)
		}
	}

	// fallback: form-urlencoded (Midtrans sering kirim ini, termasuk tombol Test)
	if len(body) == 0 && (strings.Contains(ct, "application/x-www-form-urlencoded") || ct == "" || len(raw) == 0) {
		form := map[string]interface{}{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form[string(k)] = string(v)
		})
		if len(form) > 0 {
			body = form
		}
	}

	// Balas 200 meski kosong supaya Midtrans tidak spam retry
	if len(body) == 0 {
		log.Printf("[ERROR] Webhook body empty. CT=%q raw=%q\n", ct, raw)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "empty body"})
	}

	log.Println("📥 Midtrans webhook payload:", body)

	if err := service.HandleFineStatusWebhook(ctrl.DB, body); err != nil {
		log.Println("[ERROR] Webhook processing failed:", err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "processed with warning",
			"error":   err.Error(),
		})
	}

	return helper.JsonOK(c, "Midtrans webhook processed successfully", fiber.Map{
		"order_id":           body["order_id"],
		"transaction_status": body["transaction_status"],
	})
}
