// internals/features/library/members/dto/member_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/members/model"
)

/* =========================
   REQUEST
   ========================= */

type MemberCreateRequest struct {
	MemberUserID           *uuid.UUID `json:"member_user_id,omitempty"`
	MemberCode             string     `json:"member_code" validate:"required,min=3,max=30"`
	MemberName             string     `json:"member_name" validate:"required,min=2,max=120"`
	MemberEmail            *string    `json:"member_email,omitempty" validate:"omitempty,email"`
	MemberPhone            *string    `json:"member_phone,omitempty" validate:"omitempty,max=30"`
	MemberRole             string     `json:"member_role" validate:"omitempty,oneof=student lecturer staff"`
	MemberMaxLoansOverride *int       `json:"member_max_loans_override,omitempty" validate:"omitempty,min=1,max=50"`
}

type MemberUpdateRequest struct {
	MemberUserID           *uuid.UUID `json:"member_user_id,omitempty"`
	MemberName             *string    `json:"member_name,omitempty" validate:"omitempty,min=2,max=120"`
	MemberEmail            *string    `json:"member_email,omitempty" validate:"omitempty,email"`
	MemberPhone            *string    `json:"member_phone,omitempty" validate:"omitempty,max=30"`
	MemberRole             *string    `json:"member_role,omitempty" validate:"omitempty,oneof=student lecturer staff"`
	MemberMaxLoansOverride *int       `json:"member_max_loans_override,omitempty" validate:"omitempty,min=1,max=50"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *MemberCreateRequest) Normalize() {
	r.MemberCode = strings.TrimSpace(r.MemberCode)
	r.MemberName = strings.TrimSpace(r.MemberName)
	r.MemberEmail = trimPtr(r.MemberEmail)
	r.MemberPhone = trimPtr(r.MemberPhone)
	r.MemberRole = strings.TrimSpace(strings.ToLower(r.MemberRole))
	if r.MemberRole == "" {
		r.MemberRole = model.MemberRoleStudent
	}
}

func (r *MemberUpdateRequest) Normalize() {
	r.MemberName = trimPtr(r.MemberName)
	r.MemberEmail = trimPtr(r.MemberEmail)
	r.MemberPhone = trimPtr(r.MemberPhone)
	if r.MemberRole != nil {
		v := strings.TrimSpace(strings.ToLower(*r.MemberRole))
		r.MemberRole = &v
	}
}

func (r *MemberCreateRequest) ToModel() *model.MemberModel {
	return &model.MemberModel{
		MemberUserID:           r.MemberUserID,
		MemberCode:             r.MemberCode,
		MemberName:             r.MemberName,
		MemberEmail:            r.MemberEmail,
		MemberPhone:            r.MemberPhone,
		MemberRole:             r.MemberRole,
		MemberStatus:           model.MemberStatusActive,
		MemberMaxLoansOverride: r.MemberMaxLoansOverride,
	}
}

func (r *MemberUpdateRequest) ApplyToModel(m *model.MemberModel) {
	if r.MemberUserID != nil {
		m.MemberUserID = r.MemberUserID
	}
	if r.MemberName != nil {
		m.MemberName = *r.MemberName
	}
	if r.MemberEmail != nil {
		m.MemberEmail = r.MemberEmail
	}
	if r.MemberPhone != nil {
		m.MemberPhone = r.MemberPhone
	}
	if r.MemberRole != nil {
		m.MemberRole = *r.MemberRole
	}
	if r.MemberMaxLoansOverride != nil {
		m.MemberMaxLoansOverride = r.MemberMaxLoansOverride
	}
}

/* =========================
   RESPONSE
   ========================= */

type MemberResponse struct {
	MemberID               uuid.UUID  `json:"member_id"`
	MemberUserID           *uuid.UUID `json:"member_user_id,omitempty"`
	MemberCode             string     `json:"member_code"`
	MemberName             string     `json:"member_name"`
	MemberEmail            *string    `json:"member_email,omitempty"`
	MemberPhone            *string    `json:"member_phone,omitempty"`
	MemberRole             string     `json:"member_role"`
	MemberStatus           string     `json:"member_status"`
	MemberMaxLoansOverride *int       `json:"member_max_loans_override,omitempty"`
	MemberCreatedAt        time.Time  `json:"member_created_at"`

	// Derived (diisi controller saat detail)
	MemberActiveLoans  *int `json:"member_active_loans,omitempty"`
	MemberOverdueLoans *int `json:"member_overdue_loans,omitempty"`
}

func ToMemberResponse(m *model.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:               m.MemberID,
		MemberUserID:           m.MemberUserID,
		MemberCode:             m.MemberCode,
		MemberName:             m.MemberName,
		MemberEmail:            m.MemberEmail,
		MemberPhone:            m.MemberPhone,
		MemberRole:             m.MemberRole,
		MemberStatus:           m.MemberStatus,
		MemberMaxLoansOverride: m.MemberMaxLoansOverride,
		MemberCreatedAt:        m.MemberCreatedAt,
	}
}

func ToMemberResponses(ms []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMemberResponse(&ms[i]))
	}
	return out
}
