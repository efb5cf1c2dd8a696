// internals/features/library/policy/controller/loan_policy_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaanku_backend/internals/features/library/policy/dto"
	model "perpustakaanku_backend/internals/features/library/policy/model"
	service "perpustakaanku_backend/internals/features/library/policy/service"
	helper "perpustakaanku_backend/internals/helpers"
)

type LoanPolicyController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /admin/policy — policy aktif (atau default kalau belum diset)
func (h *LoanPolicyController) Get(c *fiber.Ctx) error {
	p, err := service.GetActivePolicy(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil policy")
	}
	return helper.JsonOK(c, "ok", dto.ToLoanPolicyResponse(&p))
}

// PUT /admin/policy — ganti policy aktif (baris lama dinonaktifkan)
func (h *LoanPolicyController) Upsert(c *fiber.Ctx) error {
	var req dto.LoanPolicyUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.LoanPolicyModel{}).
			Where("policy_is_active = true").
			UpdateColumn("policy_is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan policy")
	}
	return helper.JsonUpdated(c, "Policy sirkulasi diperbarui", dto.ToLoanPolicyResponse(m))
}
