package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	fineModel "perpustakaanku_backend/internals/features/library/fines/model"
	notifModel "perpustakaanku_backend/internals/features/library/notifications/model"
	notifService "perpustakaanku_backend/internals/features/library/notifications/service"
)

// HandleFineStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandleFineStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var fine fineModel.FineModel
	if err := db.Where("fine_order_id = ?", orderID).First(&fine).Error; err != nil {
		log.Println("[ERROR] Tagihan denda tidak ditemukan:", err)
		return fmt.Errorf("fine with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		// Webhook bisa datang dobel; yang sudah paid jangan disentuh lagi
		if fine.FineStatus == fineModel.FineStatusPaid {
			return nil
		}
		now := time.Now()
		method := fineModel.FineMethodMidtrans
		fine.FineStatus = fineModel.FineStatusPaid
		fine.FineMethod = &method
		fine.FinePaidAt = &now

		if err := db.Save(&fine).Error; err != nil {
			log.Println("[ERROR] Gagal menyimpan status denda:", err)
			return err
		}

		notifService.Emit(db, fine.FineMemberID,
			notifModel.NotificationFineAssessed,
			"Pembayaran denda diterima",
			"Pembayaran denda Anda sudah kami terima. Terima kasih.",
			map[string]any{
				"loan_id":     fine.FineLoanID.String(),
				"fine_id":     fine.FineID.String(),
				"fine_amount": fine.FineAmount,
			})
		return nil

	case "expire", "cancel", "deny":
		// Tagihan kembali bisa dibayar ulang: baris unpaid dibiarkan,
		// order_id dilepas supaya bisa dibuat order baru
		if fine.FineStatus == fineModel.FineStatusUnpaid {
			if err := db.Model(&fine).UpdateColumn("fine_order_id", nil).Error; err != nil {
				log.Println("[ERROR] Gagal melepas order_id denda:", err)
				return err
			}
		}
		return nil

	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}
}
