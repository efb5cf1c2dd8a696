// internals/features/library/loans/controller/loan_user_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	"perpustakaanku_backend/internals/features/library/loans/dto"
	"perpustakaanku_backend/internals/features/library/loans/model"
	memberModel "perpustakaanku_backend/internals/features/library/members/model"
	policyService "perpustakaanku_backend/internals/features/library/policy/service"
	helper "perpustakaanku_backend/internals/helpers"
	authHelper "perpustakaanku_backend/internals/helpers/auth"
)

// 🟢 GET /api/u/loans?status=
// Peminjaman milik member yang sedang login (status & denda diproyeksi).
func (ctrl *LoanController) ListMyLoans(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}
	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	tx := ctrl.DB.Model(&model.LoanModel{}).
		Where("loan_member_id = ?", member.MemberID)
	switch strings.ToLower(strings.TrimSpace(c.Query("status"))) {
	case model.LoanStatusActive:
		tx = tx.Where("loan_status = ?", model.LoanStatusActive)
	case model.LoanEffectiveOverdue:
		tx = tx.Where("loan_status = ? AND loan_due_date < ?", model.LoanStatusActive, now)
	case model.LoanStatusReturned:
		tx = tx.Where("loan_status = ?", model.LoanStatusReturned)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("❌ gagal hitung loans member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}

	var loans []model.LoanModel
	if err := tx.Order("loan_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&loans).Error; err != nil {
		log.Println("❌ gagal ambil loans member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	resp := dto.ToLoanResponseList(loans, now, pol.PolicyFinePerDay)
	attachBookTitles(ctrl.DB, loans, resp)

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(resp))
	return helper.JsonList(c, "Daftar peminjaman Anda berhasil diambil", resp, &pagination)
}

// memberFromToken resolve baris member dari user_id di token
func (ctrl *LoanController) memberFromToken(c *fiber.Ctx) (*memberModel.MemberModel, error) {
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

// attachBookTitles melengkapi judul buku sekali query (bukan N+1)
func attachBookTitles(db *gorm.DB, loans []model.LoanModel, resp []dto.LoanResponse) {
	if len(loans) == 0 {
		return
	}
	ids := make([]string, 0, len(loans))
	for i := range loans {
		ids = append(ids, loans[i].LoanBookID.String())
	}
	var books []bookModel.BookModel
	if err := db.Select("book_id, book_title").
		Where("book_id IN ?", ids).
		Find(&books).Error; err != nil {
		log.Println("⚠️ gagal ambil judul buku:", err)
		return
	}
	titleByID := make(map[string]string, len(books))
	for i := range books {
		titleByID[books[i].BookID.String()] = books[i].BookTitle
	}
	for i := range resp {
		resp[i].BookTitle = titleByID[resp[i].LoanBookID.String()]
	}
}
