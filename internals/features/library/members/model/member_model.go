// internals/features/library/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MemberStatusActive    = "active"
	MemberStatusSuspended = "suspended"
)

const (
	MemberRoleStudent  = "student"
	MemberRoleLecturer = "lecturer"
	MemberRoleStaff    = "staff"
)

type MemberModel struct {
	// PK
	MemberID uuid.UUID `json:"member_id" gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK ke users (nullable: anggota bisa didaftarkan sebelum punya akun)
	MemberUserID *uuid.UUID `json:"member_user_id,omitempty" gorm:"column:member_user_id;type:uuid;index:idx_member_user"`

	MemberCode  string  `json:"member_code" gorm:"column:member_code;type:varchar(30);not null;index:uq_member_code_alive,unique,where:member_deleted_at IS NULL"`
	MemberName  string  `json:"member_name" gorm:"column:member_name;type:varchar(120);not null"`
	MemberEmail *string `json:"member_email,omitempty" gorm:"column:member_email;type:varchar(255)"`
	MemberPhone *string `json:"member_phone,omitempty" gorm:"column:member_phone;type:varchar(30)"`

	MemberRole   string `json:"member_role" gorm:"column:member_role;type:varchar(20);not null;default:'student'"`
	MemberStatus string `json:"member_status" gorm:"column:member_status;type:varchar(20);not null;default:'active';index:idx_member_status"`

	// Override kuota pinjam per anggota (nil = ikut policy)
	MemberMaxLoansOverride *int `json:"member_max_loans_override,omitempty" gorm:"column:member_max_loans_override"`

	MemberCreatedAt time.Time      `json:"member_created_at" gorm:"column:member_created_at;type:timestamptz;not null;autoCreateTime"`
	MemberUpdatedAt *time.Time     `json:"member_updated_at" gorm:"column:member_updated_at;type:timestamptz;autoUpdateTime"`
	MemberDeletedAt gorm.DeletedAt `json:"member_deleted_at,omitempty" gorm:"column:member_deleted_at;index"`
}

func (MemberModel) TableName() string { return "members" }

func ValidMemberRole(s string) bool {
	switch s {
	case MemberRoleStudent, MemberRoleLecturer, MemberRoleStaff:
		return true
	}
	return false
}
