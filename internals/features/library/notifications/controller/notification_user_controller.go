// internals/features/library/notifications/controller/notification_user_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	memberModel "perpustakaanku_backend/internals/features/library/members/model"
	"perpustakaanku_backend/internals/features/library/notifications/dto"
	"perpustakaanku_backend/internals/features/library/notifications/model"
	helper "perpustakaanku_backend/internals/helpers"
	authHelper "perpustakaanku_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications?unread=true
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_member_id = ?", member.MemberID)
	if strings.EqualFold(c.Query("unread"), "true") {
		tx = tx.Where("notification_is_read = FALSE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("❌ gagal hitung notifikasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	var items []model.NotificationModel
	if err := tx.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		log.Println("❌ gagal ambil notifikasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	resp := dto.ToNotificationResponseList(items)
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(resp))
	return helper.JsonList(c, "Notifikasi berhasil diambil", resp, &pagination)
}

// 🟢 PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}
	notifID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "notification_id bukan UUID yang valid")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_member_id = ?", notifID, member.MemberID).
		UpdateColumn("notification_is_read", true)
	if res.Error != nil {
		log.Println("❌ gagal tandai notifikasi:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", fiber.Map{"notification_id": notifID})
}

// 🟢 PATCH /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_member_id = ? AND notification_is_read = FALSE", member.MemberID).
		UpdateColumn("notification_is_read", true)
	if res.Error != nil {
		log.Println("❌ gagal tandai semua notifikasi:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai dibaca", fiber.Map{"updated": res.RowsAffected})
}

func (ctrl *NotificationController) memberFromToken(c *fiber.Ctx) (*memberModel.MemberModel, error) {
	userID, err := authHelper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var m memberModel.MemberModel
	if err := ctrl.DB.First(&m, "member_user_id = ?", userID).Error; err != nil {
		return nil, errors.Wrap(err, "member lookup")
	}
	return &m, nil
}
