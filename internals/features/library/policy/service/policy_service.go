// internals/features/library/policy/service/policy_service.go
package service

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	model "perpustakaanku_backend/internals/features/library/policy/model"
)

// DefaultPolicy: fallback saat belum ada baris policy di DB.
func DefaultPolicy() model.LoanPolicyModel {
	return model.LoanPolicyModel{
		PolicyLoanPeriodOptionsDays: pq.Int64Array{7, 14, 21, 30},
		PolicyMaxRenewals:           2,
		PolicyRenewalExtensionDays:  7,
		PolicyFinePerDay:            2000, // rupiah per hari
		PolicyMaxBooksPerBorrower:   5,
		PolicyReservationHoldDays:   2,
		PolicyDueSoonNoticeDays:     1,
		PolicyIsActive:              true,
	}
}

// GetActivePolicy mengambil policy aktif; fallback ke default bila kosong.
func GetActivePolicy(db *gorm.DB) (model.LoanPolicyModel, error) {
	var p model.LoanPolicyModel
	err := db.Where("policy_is_active = true").
		Order("policy_created_at desc").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultPolicy(), nil
		}
		return model.LoanPolicyModel{}, err
	}
	return p, nil
}
