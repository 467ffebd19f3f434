// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/users/user/model"
	"smartvillage_backend/internals/policy"
)

type UserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=80"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`

	UserRole string `json:"user_role" validate:"required,oneof=super_admin village_admin community_admin sme_admin"`

	UserVillageID   string `json:"user_village_id" validate:"omitempty,uuid"`
	UserCommunityID string `json:"user_community_id" validate:"omitempty,uuid"`
	UserSmeID       string `json:"user_sme_id" validate:"omitempty,uuid"`
}

// ToModel: password BELUM di-hash di sini (urusan controller).
// village_admin yang membuat user selalu dipaksa ke desanya sendiri.
func (r *UserRequest) ToModel(a policy.Actor) model.UserModel {
	m := model.UserModel{
		UserName:     strings.TrimSpace(r.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(r.UserEmail)),
		UserRole:     strings.TrimSpace(r.UserRole),
		UserIsActive: true,
	}
	m.UserCommunityID = parsePtr(r.UserCommunityID)
	m.UserSmeID = parsePtr(r.UserSmeID)

	if a.IsSuperAdmin() {
		m.UserVillageID = parsePtr(r.UserVillageID)
	} else if a.VillageID != nil {
		m.UserVillageID = a.VillageID
	}

	m.NormalizeScopeByRole()
	return m
}

type UserUpdateRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=2,max=80"`
	UserPassword *string `json:"user_password" validate:"omitempty,min=8,max=72"`

	UserRole *string `json:"user_role" validate:"omitempty,oneof=super_admin village_admin community_admin sme_admin"`

	UserCommunityID *string `json:"user_community_id" validate:"omitempty,uuid"`
	UserSmeID       *string `json:"user_sme_id" validate:"omitempty,uuid"`

	UserIsActive *bool `json:"user_is_active"`
}

// Apply TIDAK menyentuh password (controller yang hash + set).
// Ganti role otomatis menormalkan ulang scope.
func (r *UserUpdateRequest) Apply(m *model.UserModel) {
	if r.UserName != nil {
		if v := strings.TrimSpace(*r.UserName); v != "" {
			m.UserName = v
		}
	}
	if r.UserRole != nil {
		if v := strings.TrimSpace(*r.UserRole); v != "" {
			m.UserRole = v
		}
	}
	if r.UserCommunityID != nil {
		m.UserCommunityID = parsePtr(*r.UserCommunityID)
	}
	if r.UserSmeID != nil {
		m.UserSmeID = parsePtr(*r.UserSmeID)
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
	m.NormalizeScopeByRole()
}

type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	UserName        string     `json:"user_name"`
	UserEmail       string     `json:"user_email"`
	UserRole        string     `json:"user_role"`
	UserVillageID   *uuid.UUID `json:"user_village_id,omitempty"`
	UserCommunityID *uuid.UUID `json:"user_community_id,omitempty"`
	UserSmeID       *uuid.UUID `json:"user_sme_id,omitempty"`
	UserIsActive    bool       `json:"user_is_active"`
	UserCreatedAt   time.Time  `json:"user_created_at"`
	UserUpdatedAt   time.Time  `json:"user_updated_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserEmail:       m.UserEmail,
		UserRole:        m.UserRole,
		UserVillageID:   m.UserVillageID,
		UserCommunityID: m.UserCommunityID,
		UserSmeID:       m.UserSmeID,
		UserIsActive:    m.UserIsActive,
		UserCreatedAt:   m.UserCreatedAt,
		UserUpdatedAt:   m.UserUpdatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

func parsePtr(s string) *uuid.UUID {
	if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
		return &id
	}
	return nil
}
