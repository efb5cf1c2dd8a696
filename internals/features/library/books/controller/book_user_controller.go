// internals/features/library/books/controller/book_user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/books/dto"
	model "perpustakaanku_backend/internals/features/library/books/model"
	helper "perpustakaanku_backend/internals/helpers"
)

// Katalog publik (tanpa auth): list + detail.

type BookUserController struct {
	DB *gorm.DB
}

// =========================================================
// LIST - GET /public/books
// Query: q, category_id, available, order_by, sort, page, per_page
// =========================================================
func (h *BookUserController) List(c *fiber.Ctx) error {
	var q dto.BookListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.BookModel{})

	if q.Q != nil {
		if s := strings.TrimSpace(*q.Q); s != "" {
			// authors adalah text[]; cari via array_to_string
			tx = tx.Where(
				"(book_title ILIKE ? OR array_to_string(book_authors, ' ') ILIKE ?)",
				"%"+s+"%", "%"+s+"%",
			)
		}
	}
	if q.CategoryID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*q.CategoryID)); err == nil {
			tx = tx.Where("book_category_id = ?", id)
		}
	}
	if q.Available != nil && *q.Available {
		tx = tx.Where("book_available_copies > 0")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	orderBy := "book_created_at"
	if q.OrderBy != nil && *q.OrderBy == "book_title" {
		orderBy = "book_title"
	}
	sort := "desc"
	if q.Sort != nil && strings.EqualFold(*q.Sort, "asc") {
		sort = "asc"
	}

	var rows []model.BookModel
	if err := tx.Order(orderBy + " " + sort).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.ToBookResponses(rows), &pg)
}

// =========================================================
// DETAIL - GET /public/books/:id (id atau slug) + daftar eksemplar
// =========================================================
func (h *BookUserController) GetByID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))

	var m model.BookModel
	if id, err := uuid.Parse(raw); err == nil {
		if err := h.DB.First(&m, "book_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
	} else {
		if err := h.DB.First(&m, "lower(book_slug) = lower(?)", raw).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
	}

	var copies []model.BookCopyModel
	if err := h.DB.Where("copy_book_id = ?", m.BookID).
		Order("copy_barcode asc").Find(&copies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil eksemplar")
	}

	resp := dto.ToBookResponse(&m)
	resp.Copies = dto.ToBookCopyResponses(copies)
	return helper.JsonOK(c, "ok", resp)
}
