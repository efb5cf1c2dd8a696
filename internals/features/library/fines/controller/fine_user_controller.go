// internals/features/library/fines/controller/fine_user_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"perpustakaanku_backend/internals/features/library/fines/dto"
	"perpustakaanku_backend/internals/features/library/fines/model"
	"perpustakaanku_backend/internals/features/library/fines/service"
	loanModel "perpustakaanku_backend/internals/features/library/loans/model"
	loanService "perpustakaanku_backend/internals/features/library/loans/service"
	memberModel "perpustakaanku_backend/internals/features/library/members/model"
	policyService "perpustakaanku_backend/internals/features/library/policy/service"
	helper "perpustakaanku_backend/internals/helpers"
	authHelper "perpustakaanku_backend/internals/helpers/auth"
)

type FineController struct {
	DB *gorm.DB
}

func NewFineController(db *gorm.DB) *FineController {
	return &FineController{DB: db}
}

var validate = validator.New()

// 🟢 GET /api/u/fines
// Ledger denda member login (paid/unpaid/waived).
func (ctrl *FineController) ListMyFines(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}

	var fines []model.FineModel
	if err := ctrl.DB.
		Where("fine_member_id = ?", member.MemberID).
		Order("fine_created_at DESC").
		Find(&fines).Error; err != nil {
		log.Println("❌ gagal ambil denda member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data denda")
	}
	return helper.JsonOK(c, "Daftar denda Anda berhasil diambil", dto.ToFineResponseList(fines))
}

// 🟢 POST /api/u/fines/pay
// Bikin tagihan Snap untuk denda berjalan satu pinjaman overdue.
// Setelah settlement masuk lewat webhook, pengembalian di meja petugas
// lolos gerbang denda tanpa bayar tunai.
func (ctrl *FineController) PayOnline(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}

	var req dto.PayFineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.FineLoanID = strings.TrimSpace(req.FineLoanID)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}
	loanID, err := uuid.Parse(req.FineLoanID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "loan_id bukan UUID yang valid")
	}

	var loan loanModel.LoanModel
	if err := ctrl.DB.First(&loan, "loan_id = ?", loanID).Error; err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Peminjaman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}
	if loan.LoanMemberID != member.MemberID {
		return helper.JsonError(c, fiber.StatusForbidden, "Peminjaman ini bukan milik Anda")
	}

	pol, err := policyService.GetActivePolicy(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kebijakan")
	}

	now := time.Now()
	amount, _ := loanService.CalculateFine(loan.LoanDueDate, now, pol.PolicyFinePerDay)
	if loan.LoanStatus == loanModel.LoanStatusReturned {
		amount = loan.LoanFineAmount
	}
	if amount <= 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Pinjaman ini tidak punya denda untuk dibayar")
	}

	// Kurangi yang sudah pernah dibayar untuk pinjaman ini
	var paidSum float64
	if err := ctrl.DB.Model(&model.FineModel{}).
		Where("fine_loan_id = ? AND fine_status = ?", loanID, model.FineStatusPaid).
		Select("COALESCE(SUM(fine_amount), 0)").
		Scan(&paidSum).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung denda")
	}
	if paidSum >= amount {
		return helper.JsonError(c, fiber.StatusConflict, "Denda pinjaman ini sudah lunas")
	}
	amount -= paidSum

	// Satu tagihan unpaid aktif per pinjaman: reuse kalau ada,
	// amount di-refresh (denda berjalan bisa bertambah)
	var fine model.FineModel
	err = ctrl.DB.
		Where("fine_loan_id = ? AND fine_status = ?", loanID, model.FineStatusUnpaid).
		First(&fine).Error
	switch {
	case err == nil:
		fine.FineAmount = amount
	case errors.Cause(err) == gorm.ErrRecordNotFound:
		fine = model.FineModel{
			FineLoanID:   loanID,
			FineMemberID: member.MemberID,
			FineAmount:   amount,
			FineStatus:   model.FineStatusUnpaid,
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan tagihan")
	}

	orderID := fmt.Sprintf("FINE-%d-%s", now.Unix(), uuid.NewString()[:8])
	fine.FineOrderID = &orderID
	if err := ctrl.DB.Save(&fine).Error; err != nil {
		log.Println("❌ gagal simpan tagihan denda:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan tagihan")
	}

	email := ""
	if member.MemberEmail != nil {
		email = *member.MemberEmail
	}
	token, redirectURL, err := service.GenerateSnapToken(fine, member.MemberName, email)
	if err != nil {
		log.Println("❌ gagal membuat Snap token:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghubungi gateway pembayaran")
	}

	return helper.JsonCreated(c, "Tagihan pembayaran denda dibuat", dto.SnapPaymentResponse{
		Fine:        dto.ToFineResponse(&fine),
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

func (ctrl *FineController) memberFromToken(c *fiber.Ctx) (*memberModel.MemberModel, error) {
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
