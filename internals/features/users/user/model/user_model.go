// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
)

// UserModel: user admin. Invariant scope: field non-null PERSIS sesuai role —
//   super_admin     → village/community/sme semuanya NULL
//   village_admin   → hanya village_id
//   community_admin → village_id + community_id
//   sme_admin       → village_id + community_id + sme_id
// Dinormalisasi paksa di BeforeSave, bukan dipercayakan ke client.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"type:varchar(80);not null" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPassword string `gorm:"type:text;not null" json:"-"`

	UserRole string `gorm:"type:varchar(20);not null;index" json:"user_role"`

	// Scope
	UserVillageID   *uuid.UUID `gorm:"type:uuid;index" json:"user_village_id,omitempty"`
	UserCommunityID *uuid.UUID `gorm:"type:uuid;index" json:"user_community_id,omitempty"`
	UserSmeID       *uuid.UUID `gorm:"type:uuid;index" json:"user_sme_id,omitempty"`

	UserIsActive bool `gorm:"not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// NormalizeScopeByRole meng-null-kan scope yang tidak berlaku untuk role.
// Idempotent; dipanggil dari BeforeSave dan bisa dipakai langsung di controller.
func (u *UserModel) NormalizeScopeByRole() {
	switch u.UserRole {
	case constants.RoleSuperAdmin:
		u.UserVillageID = nil
		u.UserCommunityID = nil
		u.UserSmeID = nil
	case constants.RoleVillageAdmin:
		u.UserCommunityID = nil
		u.UserSmeID = nil
	case constants.RoleCommunityAdmin:
		u.UserSmeID = nil
	}
}

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.NormalizeScopeByRole()
	return nil
}
