// internals/features/library/fines/controller/fine_admin_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"perpustakaanku_backend/internals/features/library/fines/dto"
	"perpustakaanku_backend/internals/features/library/fines/model"
	helper "perpustakaanku_backend/internals/helpers"
)

// 🟢 GET /api/a/fines?member_id=&status=&page=&per_page=
func (ctrl *FineController) ListFines(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.FineModel{})
	if id := strings.TrimSpace(c.Query("member_id")); id != "" {
		tx = tx.Where("fine_member_id = ?", id)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("status"))) {
	case model.FineStatusUnpaid:
		tx = tx.Where("fine_status = ?", model.FineStatusUnpaid)
	case model.FineStatusPaid:
		tx = tx.Where("fine_status = ?", model.FineStatusPaid)
	case model.FineStatusWaived:
		tx = tx.Where("fine_status = ?", model.FineStatusWaived)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("❌ gagal hitung fines:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data denda")
	}

	var fines []model.FineModel
	if err := tx.Order("fine_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&fines).Error; err != nil {
		log.Println("❌ gagal ambil fines:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data denda")
	}

	resp := dto.ToFineResponseList(fines)
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(resp))
	return helper.JsonList(c, "Daftar denda berhasil diambil", resp, &pagination)
}
