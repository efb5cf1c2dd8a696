// internals/features/library/notifications/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"perpustakaanku_backend/internals/features/library/notifications/model"
)

type NotificationResponse struct {
	NotificationID        uuid.UUID      `json:"notification_id"`
	NotificationType      string         `json:"notification_type"`
	NotificationTitle     string         `json:"notification_title"`
	NotificationMessage   string         `json:"notification_message"`
	NotificationPayload   datatypes.JSON `json:"notification_payload,omitempty"`
	NotificationIsRead    bool           `json:"notification_is_read"`
	NotificationCreatedAt time.Time      `json:"notification_created_at"`
}

func ToNotificationResponse(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationType:      m.NotificationType,
		NotificationTitle:     m.NotificationTitle,
		NotificationMessage:   m.NotificationMessage,
		NotificationPayload:   m.NotificationPayload,
		NotificationIsRead:    m.NotificationIsRead,
		NotificationCreatedAt: m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(ms []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToNotificationResponse(&ms[i]))
	}
	return out
}
