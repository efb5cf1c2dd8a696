// internals/features/library/members/controller/member_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/members/dto"
	model "perpustakaanku_backend/internals/features/library/members/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /admin/members
// =========================================================
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek unik member_code (soft-delete aware)
	var cnt int64
	if err := h.DB.Model(&model.MemberModel{}).
		Where("member_code = ? AND member_deleted_at IS NULL", req.MemberCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi kode anggota")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode anggota sudah digunakan")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode anggota sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat anggota")
	}
	return helper.JsonCreated(c, "Anggota berhasil didaftarkan", dto.ToMemberResponse(m))
}

// =========================================================
// UPDATE - PUT /admin/members/:id
// =========================================================
func (h *MemberController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.MemberModel
	if err := h.DB.First(&m, "member_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update anggota")
	}
	return helper.JsonUpdated(c, "Anggota berhasil diperbarui", dto.ToMemberResponse(&m))
}

// =========================================================
// SUSPEND / ACTIVATE - PATCH /admin/members/:id/status
// =========================================================
func (h *MemberController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req struct {
		MemberStatus string `json:"member_status" validate:"required,oneof=active suspended"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.MemberStatus = strings.TrimSpace(strings.ToLower(req.MemberStatus))
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", id).
		UpdateColumn("member_status", req.MemberStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status anggota diperbarui", fiber.Map{
		"member_id":     id,
		"member_status": req.MemberStatus,
	})
}

// =========================================================
// LIST - GET /admin/members
// =========================================================
func (h *MemberController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.MemberModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("(member_name ILIKE ? OR member_code ILIKE ?)", "%"+s+"%", "%"+s+"%")
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("member_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.MemberModel
	if err := q.Order("member_name asc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.ToMemberResponses(rows), &pg)
}

// =========================================================
// DETAIL - GET /admin/members/:id
// Sertakan jumlah pinjaman aktif & overdue (proyeksi, bukan kolom)
// =========================================================
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MemberModel
	if err := h.DB.First(&m, "member_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	now := time.Now().UTC()
	var active, overdue int64
	if err := h.DB.Table("loans").
		Where("loan_member_id = ? AND loan_status = 'active' AND loan_deleted_at IS NULL", id).
		Count(&active).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pinjaman")
	}
	if err := h.DB.Table("loans").
		Where("loan_member_id = ? AND loan_status = 'active' AND loan_due_date < ? AND loan_deleted_at IS NULL", id, now).
		Count(&overdue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pinjaman overdue")
	}

	resp := dto.ToMemberResponse(&m)
	a, o := int(active), int(overdue)
	resp.MemberActiveLoans = &a
	resp.MemberOverdueLoans = &o
	return helper.JsonOK(c, "ok", resp)
}
