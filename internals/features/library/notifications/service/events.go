// internals/features/library/notifications/service/events.go
package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "perpustakaanku_backend/internals/features/library/notifications/model"
)

// Emit menulis satu baris notifikasi untuk member.
// Dipanggil di dalam transaksi engine; gagal emit tidak boleh
// membatalkan operasi sirkulasi — cukup dicatat.
func Emit(tx *gorm.DB, memberID uuid.UUID, typ, title, message string, payload map[string]any) {
	var raw datatypes.JSON
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			raw = datatypes.JSON(b)
		}
	}
	n := model.NotificationModel{
		NotificationMemberID: memberID,
		NotificationType:     typ,
		NotificationTitle:    title,
		NotificationMessage:  message,
		NotificationPayload:  raw,
	}
	if err := tx.Create(&n).Error; err != nil {
		log.Printf("[NOTIF] gagal emit %s untuk member %s: %v", typ, memberID, err)
	}
}

// EmittedToday cek apakah notifikasi type+payload loan yang sama sudah
// terbit hari ini (dipakai scheduler supaya tidak spam harian ganda).
func EmittedToday(db *gorm.DB, memberID uuid.UUID, typ string, loanID uuid.UUID) bool {
	var cnt int64
	err := db.Model(&model.NotificationModel{}).
		Where("notification_member_id = ? AND notification_type = ?", memberID, typ).
		Where("notification_payload->>'loan_id' = ?", loanID.String()).
		Where("notification_created_at >= date_trunc('day', now())").
		Count(&cnt).Error
	if err != nil {
		log.Printf("[NOTIF] gagal cek dedupe: %v", err)
		return false
	}
	return cnt > 0
}
