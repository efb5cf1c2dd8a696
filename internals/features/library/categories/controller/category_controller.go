// internals/features/library/categories/controller/category_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/categories/dto"
	model "perpustakaanku_backend/internals/features/library/categories/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /admin/categories
// =========================================================
func (h *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	// Normalisasi + auto slug (kalau kosong)
	req.Normalize()
	if req.CategorySlug == nil || strings.TrimSpace(*req.CategorySlug) == "" {
		gen := helper.GenerateSlug(req.CategoryName)
		req.CategorySlug = &gen
	} else {
		s := helper.GenerateSlug(*req.CategorySlug)
		req.CategorySlug = &s
	}

	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek unik slug (soft-delete aware)
	var cnt int64
	if err := h.DB.Model(&model.CategoryModel{}).
		Where("lower(category_slug) = lower(?) AND category_deleted_at IS NULL", *req.CategorySlug).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi slug")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Slug sudah digunakan")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", dto.ToCategoryResponse(m))
}

// =========================================================
// UPDATE - PUT /admin/categories/:id
// =========================================================
func (h *CategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.CategorySlug != nil {
		s := helper.GenerateSlug(*req.CategorySlug)
		req.CategorySlug = &s
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.CategoryModel
	if err := h.DB.First(&m, "category_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kategori")
	}
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", dto.ToCategoryResponse(&m))
}

// =========================================================
// DELETE - DELETE /admin/categories/:id (soft delete)
// =========================================================
func (h *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Where("category_id = ?", id).Delete(&model.CategoryModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", fiber.Map{"category_id": id})
}

// =========================================================
// LIST - GET /categories
// =========================================================
func (h *CategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.CategoryModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("category_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.CategoryModel
	if err := q.Order("category_name asc").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.ToCategoryResponses(rows), &pg)
}

// =========================================================
// DETAIL - GET /categories/:id (id atau slug)
// =========================================================
func (h *CategoryController) GetByID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))

	var m model.CategoryModel
	if id, err := uuid.Parse(raw); err == nil {
		err = h.DB.First(&m, "category_id = ?", id).Error
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
	} else {
		if err := h.DB.First(&m, "lower(category_slug) = lower(?)", raw).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
	}
	return helper.JsonOK(c, "ok", dto.ToCategoryResponse(&m))
}
