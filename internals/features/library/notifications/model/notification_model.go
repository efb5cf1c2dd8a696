// internals/features/library/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis event domain yang diterbitkan engine sirkulasi.
// Engine hanya menulis baris notifikasi; pengiriman email/SMS urusan
// pengirim eksternal yang membaca tabel ini.
const (
	NotificationLoanIssued       = "loan_issued"
	NotificationLoanDueSoon      = "loan_due_soon"
	NotificationLoanOverdue      = "loan_overdue"
	NotificationReservationReady = "reservation_ready"
	NotificationFineAssessed     = "fine_assessed"
)

type NotificationModel struct {
	// PK
	NotificationID uuid.UUID `json:"notification_id" gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Penerima: member perpustakaan
	NotificationMemberID uuid.UUID `json:"notification_member_id" gorm:"column:notification_member_id;type:uuid;not null;index:idx_notification_member"`

	NotificationType    string         `json:"notification_type" gorm:"column:notification_type;type:varchar(30);not null;index:idx_notification_type"`
	NotificationTitle   string         `json:"notification_title" gorm:"column:notification_title;type:varchar(160);not null"`
	NotificationMessage string         `json:"notification_message" gorm:"column:notification_message;not null"`
	NotificationPayload datatypes.JSON `json:"notification_payload,omitempty" gorm:"column:notification_payload;type:jsonb"`

	NotificationIsRead bool `json:"notification_is_read" gorm:"column:notification_is_read;not null;default:false"`

	NotificationCreatedAt time.Time      `json:"notification_created_at" gorm:"column:notification_created_at;type:timestamptz;not null;autoCreateTime"`
	NotificationDeletedAt gorm.DeletedAt `json:"notification_deleted_at,omitempty" gorm:"column:notification_deleted_at;index"`
}

func (NotificationModel) TableName() string { return "notifications" }
