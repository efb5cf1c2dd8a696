// internals/features/library/reservations/controller/reservation_user_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	memberModel "perpustakaanku_backend/internals/features/library/members/model"
	policyService "perpustakaanku_backend/internals/features/library/policy/service"
	"perpustakaanku_backend/internals/features/library/reservations/dto"
	"perpustakaanku_backend/internals/features/library/reservations/model"
	"perpustakaanku_backend/internals/features/library/reservations/service"
	helper "perpustakaanku_backend/internals/helpers"
	authHelper "perpustakaanku_backend/internals/helpers/auth"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *service.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db, Service: service.NewReservationService(db)}
}

var validate = validator.New()

// 🟢 POST /api/u/reservations
// Member login memesan judul; respon memuat posisi antrean.
func (ctrl *ReservationController) Create(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}
	if member.MemberStatus == memberModel.MemberStatusSuspended {
		return helper.JsonError(c, fiber.StatusConflict, "Keanggotaan Anda sedang ditangguhkan")
	}

	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	bookID, err := uuid.Parse(req.ReservationBookID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id bukan UUID yang valid")
	}

	res, position, err := ctrl.Service.Reserve(member.MemberID, bookID, req.ReservationPriority)
	if err != nil {
		switch errors.Cause(err) {
		case service.ErrDuplicateReservation:
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah punya reservasi aktif untuk judul ini")
		case service.ErrBookNotFound:
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		log.Println("❌ gagal membuat reservasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat reservasi")
	}

	resp := dto.ToReservationResponse(res, position)
	if est, err := service.EstimateAvailability(ctrl.DB, bookID); err == nil {
		resp.EstimatedAvailable = est
	}
	return helper.JsonCreated(c, "Reservasi berhasil dibuat", resp)
}

// 🟢 DELETE /api/u/reservations/:id
// Batal idempotent; kalau yang batal sedang Ready, kepala antrean naik.
func (ctrl *ReservationController) Cancel(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}
	reservationID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "reservation_id bukan UUID yang valid")
	}

	// Member hanya boleh membatalkan miliknya sendiri
	var r model.ReservationModel
	if err := ctrl.DB.First(&r, "reservation_id = ?", reservationID).Error; err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil reservasi")
	}
	if r.ReservationMemberID != member.MemberID {
		return helper.JsonError(c, fiber.StatusForbidden, "Reservasi ini bukan milik Anda")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	if err := ctrl.Service.Cancel(reservationID, pol.PolicyReservationHoldDays); err != nil {
		if errors.Cause(err) == service.ErrReservationNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Reservasi tidak ditemukan")
		}
		log.Println("❌ gagal membatalkan reservasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan reservasi")
	}
	return helper.JsonDeleted(c, "Reservasi dibatalkan", fiber.Map{"reservation_id": reservationID})
}

// 🟢 GET /api/u/reservations
// Reservasi aktif milik member login + posisi antrean terkini.
func (ctrl *ReservationController) ListMine(c *fiber.Ctx) error {
	member, err := ctrl.memberFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Anda tidak terhubung ke keanggotaan")
	}

	var mine []model.ReservationModel
	if err := ctrl.DB.
		Where("reservation_member_id = ? AND reservation_status IN ?",
			member.MemberID,
			[]string{model.ReservationStatusWaiting, model.ReservationStatusReady}).
		Order("reservation_requested_at ASC").
		Find(&mine).Error; err != nil {
		log.Println("❌ gagal ambil reservasi member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil reservasi")
	}

	resp := make([]dto.ReservationResponse, 0, len(mine))
	for i := range mine {
		position := 0
		if mine[i].ReservationStatus == model.ReservationStatusWaiting {
			waiting, err := ctrl.Service.WaitingQueue(mine[i].ReservationBookID)
			if err == nil {
				position = service.PositionOf(waiting, mine[i].ReservationID)
			}
		}
		item := dto.ToReservationResponse(&mine[i], position)
		if est, err := service.EstimateAvailability(ctrl.DB, mine[i].ReservationBookID); err == nil {
			item.EstimatedAvailable = est
		}
		resp = append(resp, item)
	}
	return helper.JsonOK(c, "Daftar reservasi Anda berhasil diambil", resp)
}

func (ctrl *ReservationController) memberFromToken(c *fiber.Ctx) (*memberModel.MemberModel, error) {
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
