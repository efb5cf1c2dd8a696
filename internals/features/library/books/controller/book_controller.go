// internals/features/library/books/controller/book_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/books/dto"
	model "perpustakaanku_backend/internals/features/library/books/model"
	helper "perpustakaanku_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /admin/books
// Body: JSON; eksemplar awal dibuat otomatis dengan barcode berurut
// =========================================================
func (h *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	// Normalisasi + auto slug (kalau kosong)
	req.Normalize()
	if req.BookSlug == nil || strings.TrimSpace(*req.BookSlug) == "" {
		gen := helper.GenerateSlug(req.BookTitle)
		req.BookSlug = &gen
	} else {
		s := helper.GenerateSlug(*req.BookSlug)
		req.BookSlug = &s
	}

	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek unik slug (CI, soft-delete aware)
	var cnt int64
	if err := h.DB.Model(&model.BookModel{}).
		Where("lower(book_slug) = lower(?) AND book_deleted_at IS NULL", *req.BookSlug).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi slug")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Slug sudah digunakan")
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// Buat baris eksemplar awal
		for i := 0; i < req.BookInitialCopies; i++ {
			cp := model.BookCopyModel{
				CopyBookID:  m.BookID,
				CopyBarcode: fmt.Sprintf("%s-%03d", strings.ToUpper((*req.BookSlug)[:min(8, len(*req.BookSlug))]), i+1),
				CopyStatus:  model.CopyStatusAvailable,
			}
			if err := tx.Create(&cp).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug/ISBN sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat buku")
	}

	return helper.JsonCreated(c, "Buku berhasil dibuat", dto.ToBookResponse(m))
}

// =========================================================
// UPDATE - PUT /admin/books/:id
// =========================================================
func (h *BookController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.BookSlug != nil {
		s := helper.GenerateSlug(*req.BookSlug)
		req.BookSlug = &s
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.BookModel
	if err := h.DB.First(&m, "book_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug/ISBN sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update buku")
	}
	return helper.JsonUpdated(c, "Buku berhasil diperbarui", dto.ToBookResponse(&m))
}

// =========================================================
// UPLOAD COVER - PUT /admin/books/:id/cover
// Multipart field "cover"; dikonversi ke webp sebelum disimpan
// =========================================================
func (h *BookController) UploadCover(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.BookModel
	if err := h.DB.First(&m, "book_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	fh, err := c.FormFile("cover")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File cover wajib diisi")
	}

	data, err := helper.ConvertCoverToWebP(fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	url, err := helper.SaveCoverImage("covers", fh.Filename, data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Model(&m).UpdateColumn("book_cover_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan cover")
	}
	return helper.JsonUpdated(c, "Cover berhasil diunggah", fiber.Map{"book_cover_url": url})
}

// =========================================================
// ADD COPY - POST /admin/books/:id/copies
// =========================================================
func (h *BookController) AddCopy(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req struct {
		CopyBarcode string `json:"copy_barcode" validate:"required,min=3,max=64"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.CopyBarcode = strings.TrimSpace(req.CopyBarcode)
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cp := model.BookCopyModel{
		CopyBookID:  id,
		CopyBarcode: req.CopyBarcode,
		CopyStatus:  model.CopyStatusAvailable,
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var book model.BookModel
		if err := tx.First(&book, "book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Create(&cp).Error; err != nil {
			return err
		}
		return tx.Model(&book).UpdateColumns(map[string]interface{}{
			"book_total_copies":     gorm.Expr("book_total_copies + 1"),
			"book_available_copies": gorm.Expr("book_available_copies + 1"),
		}).Error
	}); err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Barcode sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah eksemplar")
	}
	return helper.JsonCreated(c, "Eksemplar berhasil ditambahkan", dto.ToBookCopyResponse(&cp))
}

// =========================================================
// DELETE - DELETE /admin/books/:id (soft delete, tolak jika masih dipinjam)
// =========================================================
func (h *BookController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var onLoan int64
	if err := h.DB.Model(&model.BookCopyModel{}).
		Where("copy_book_id = ? AND copy_status = ?", id, model.CopyStatusOnLoan).
		Count(&onLoan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek status eksemplar")
	}
	if onLoan > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Masih ada eksemplar yang dipinjam")
	}

	res := h.DB.Where("book_id = ?", id).Delete(&model.BookModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus buku")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Buku berhasil dihapus", fiber.Map{"book_id": id})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
