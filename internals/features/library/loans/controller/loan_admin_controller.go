// internals/features/library/loans/controller/loan_admin_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	"perpustakaanku_backend/internals/features/library/loans/dto"
	"perpustakaanku_backend/internals/features/library/loans/model"
	"perpustakaanku_backend/internals/features/library/loans/service"
	policyService "perpustakaanku_backend/internals/features/library/policy/service"
	helper "perpustakaanku_backend/internals/helpers"
)

type LoanController struct {
	DB      *gorm.DB
	Service *service.LoanService
}

func NewLoanController(db *gorm.DB) *LoanController {
	return &LoanController{DB: db, Service: service.NewLoanService(db)}
}

var validate = validator.New()

// 🟢 POST /api/a/loans/issue
func (ctrl *LoanController) IssueLoan(c *fiber.Ctx) error {
	var req dto.IssueLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}
	if req.LoanCopyID == nil && req.CopyBarcode == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "loan_copy_id atau copy_barcode wajib diisi")
	}
	if req.IssueDate != nil && req.IssueDate.After(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "issue_date tidak boleh di masa depan")
	}

	memberID, err := uuid.Parse(req.LoanMemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member_id bukan UUID yang valid")
	}

	copyID, err := ctrl.resolveCopyID(req.LoanCopyID, req.CopyBarcode)
	if err != nil {
		return ctrl.domainOr500(c, err, "❌ gagal resolve copy")
	}

	res, err := ctrl.Service.IssueBook(service.IssueRequest{
		MemberID:   memberID,
		CopyID:     copyID,
		PeriodDays: req.PeriodDays,
		IssueDate:  req.IssueDate,
	})
	if err != nil {
		return ctrl.domainOr500(c, err, "❌ gagal mencatat peminjaman")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	return helper.JsonCreatedWithWarnings(c, "Peminjaman berhasil dicatat",
		dto.ToLoanResponse(res.Loan, time.Now(), pol.PolicyFinePerDay), res.Warnings)
}

// 🟢 POST /api/a/loans/:id/renew
func (ctrl *LoanController) RenewLoan(c *fiber.Ctx) error {
	loanID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "loan_id bukan UUID yang valid")
	}

	res, err := ctrl.Service.RenewLoan(loanID)
	if err != nil {
		return ctrl.domainOr500(c, err, "❌ gagal memperpanjang peminjaman")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	return helper.JsonUpdated(c, "Perpanjangan berhasil",
		dto.ToLoanResponse(res.Loan, time.Now(), pol.PolicyFinePerDay))
}

// 🟢 POST /api/a/loans/:id/return
func (ctrl *LoanController) ReturnLoan(c *fiber.Ctx) error {
	loanID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "loan_id bukan UUID yang valid")
	}

	var req dto.ReturnLoanRequest
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	req.LoanID = loanID.String()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	res, err := ctrl.Service.ReturnBook(service.ReturnRequest{
		LoanID:     loanID,
		ReturnDate: req.ReturnDate,
		Condition:  req.ReturnCondition,
		FinePaid:   req.FinePaid,
		FineWaived: req.FineWaived,
		WaiveNote:  req.WaiveNote,
	})
	if err != nil {
		return ctrl.domainOr500(c, err, "❌ gagal mencatat pengembalian")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	return helper.JsonOKWithWarnings(c, "Pengembalian berhasil dicatat",
		dto.ToLoanResponse(res.Loan, time.Now(), pol.PolicyFinePerDay), res.Warnings)
}

// 🟢 GET /api/a/loans?member_id=&book_id=&status=&page=&per_page=
func (ctrl *LoanController) ListLoans(c *fiber.Ctx) error {
	var q dto.LoanListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	tx := ctrl.DB.Model(&model.LoanModel{})
	if id := strings.TrimSpace(q.MemberID); id != "" {
		tx = tx.Where("loan_member_id = ?", id)
	}
	if id := strings.TrimSpace(q.BookID); id != "" {
		tx = tx.Where("loan_book_id = ?", id)
	}
	// "overdue" bukan status tersimpan — difilter sebagai proyeksi
	switch strings.ToLower(strings.TrimSpace(q.Status)) {
	case model.LoanStatusActive:
		tx = tx.Where("loan_status = ?", model.LoanStatusActive)
	case model.LoanEffectiveOverdue:
		tx = tx.Where("loan_status = ? AND loan_due_date < ?", model.LoanStatusActive, now)
	case model.LoanStatusReturned:
		tx = tx.Where("loan_status = ?", model.LoanStatusReturned)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("❌ gagal hitung loans:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}

	var loans []model.LoanModel
	if err := tx.Order("loan_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&loans).Error; err != nil {
		log.Println("❌ gagal ambil loans:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	resp := dto.ToLoanResponseList(loans, now, pol.PolicyFinePerDay)
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(resp))
	return helper.JsonList(c, "Daftar peminjaman berhasil diambil", resp, &pagination)
}

// 🟢 GET /api/a/loans/:id
func (ctrl *LoanController) GetLoanByID(c *fiber.Ctx) error {
	loanID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "loan_id bukan UUID yang valid")
	}

	var loan model.LoanModel
	if err := ctrl.DB.First(&loan, "loan_id = ?", loanID).Error; err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Peminjaman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	return helper.JsonOK(c, "Detail peminjaman berhasil diambil",
		dto.ToLoanResponse(&loan, time.Now(), pol.PolicyFinePerDay))
}

/* =========================
   Internal
   ========================= */

func (ctrl *LoanController) resolveCopyID(copyID, barcode *string) (uuid.UUID, error) {
	if copyID != nil {
		id, err := uuid.Parse(*copyID)
		if err != nil {
			return uuid.Nil, service.ErrCopyUnavailable
		}
		return id, nil
	}
	var cp bookModel.BookCopyModel
	if err := ctrl.DB.Select("copy_id").
		First(&cp, "copy_barcode = ?", *barcode).Error; err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return uuid.Nil, service.ErrCopyUnavailable
		}
		return uuid.Nil, errors.Wrap(err, "lookup barcode")
	}
	return cp.CopyID, nil
}

func (ctrl *LoanController) domainOr500(c *fiber.Ctx, err error, logPrefix string) error {
	if service.IsDomainError(err) {
		return helper.JsonError(c, service.HTTPStatusFor(err), errors.Cause(err).Error())
	}
	log.Println(logPrefix+":", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
