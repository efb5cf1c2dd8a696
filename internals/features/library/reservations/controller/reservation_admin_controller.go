// internals/features/library/reservations/controller/reservation_admin_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	policyService "perpustakaanku_backend/internals/features/library/policy/service"
	"perpustakaanku_backend/internals/features/library/reservations/dto"
	"perpustakaanku_backend/internals/features/library/reservations/model"
	"perpustakaanku_backend/internals/features/library/reservations/service"
	helper "perpustakaanku_backend/internals/helpers"
)

// 🟢 GET /api/a/reservations/queue/:book_id
// Antrean waiting satu judul, urut prioritas (Ready aktif ikut ditampilkan
// di atas antrean). Ready basi dibereskan dulu supaya tampilan = kenyataan.
func (ctrl *ReservationController) QueueByBook(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(strings.TrimSpace(c.Params("book_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id bukan UUID yang valid")
	}

	if err := ctrl.Service.SweepExpired(bookID); err != nil {
		log.Println("⚠️ gagal sweep ready basi:", err)
	}

	var ready []model.ReservationModel
	if err := ctrl.DB.
		Where("reservation_book_id = ? AND reservation_status = ?", bookID, model.ReservationStatusReady).
		Find(&ready).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrean")
	}

	waiting, err := ctrl.Service.WaitingQueue(bookID)
	if err != nil {
		log.Println("❌ gagal ambil antrean:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrean")
	}

	resp := make([]dto.ReservationResponse, 0, len(ready)+len(waiting))
	for i := range ready {
		resp = append(resp, dto.ToReservationResponse(&ready[i], 0))
	}
	for i := range waiting {
		resp = append(resp, dto.ToReservationResponse(&waiting[i], i+1))
	}
	return helper.JsonOK(c, "Antrean reservasi berhasil diambil", resp)
}

// 🟢 POST /api/a/reservations/queue/:book_id/promote
// Promosi manual kepala antrean (mis. copy ditemukan di rak sortir).
func (ctrl *ReservationController) Promote(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(strings.TrimSpace(c.Params("book_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id bukan UUID yang valid")
	}

	pol, _ := policyService.GetActivePolicy(ctrl.DB)
	if err := ctrl.Service.PromoteHeadTx(bookID, pol.PolicyReservationHoldDays); err != nil {
		log.Println("❌ gagal promosi antrean:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mempromosikan antrean")
	}
	return helper.JsonOK(c, "Kepala antrean dipromosikan", fiber.Map{"book_id": bookID})
}

// 🟢 DELETE /api/a/reservations/:id
// Petugas membatalkan reservasi siapa pun.
func (ctrl *ReservationController) AdminCancel(c *fiber.Ctx) error {
	reservationID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "reservation_id bukan UUID yang valid")
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
