// file: internals/features/village/communities/dto/community_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/village/communities/model"
	"smartvillage_backend/internals/policy"
)

type CommunityRequest struct {
	// Hanya dihormati untuk super_admin; role lain dipaksa pakai scope sendiri.
	CommunityVillageID *uuid.UUID `json:"community_village_id"`

	CommunityName        string `json:"community_name" validate:"required,min=3,max=100"`
	CommunitySlug        string `json:"community_slug" validate:"omitempty,max=100"`
	CommunityDescription string `json:"community_description"`
}

// ToModel menerapkan trust boundary scope: village_id dari client hanya
// dipercaya kalau actor super_admin; selain itu diambil dari actor sendiri.
func (r *CommunityRequest) ToModel(actor policy.Actor) model.CommunityModel {
	m := model.CommunityModel{
		CommunityName:     strings.TrimSpace(r.CommunityName),
		CommunitySlug:     strings.TrimSpace(r.CommunitySlug),
		CommunityIsActive: true,
	}
	if s := strings.TrimSpace(r.CommunityDescription); s != "" {
		m.CommunityDescription = &s
	}

	if actor.IsSuperAdmin() {
		if r.CommunityVillageID != nil {
			m.CommunityVillageID = *r.CommunityVillageID
		}
	} else if actor.VillageID != nil {
		m.CommunityVillageID = *actor.VillageID
	}
	return m
}

type CommunityUpdateRequest struct {
	CommunityName        *string `json:"community_name" validate:"omitempty,min=3,max=100"`
	CommunityDescription *string `json:"community_description"`
	CommunityIsActive    *bool   `json:"community_is_active"`
}

func (r *CommunityUpdateRequest) Apply(m *model.CommunityModel) {
	if r.CommunityName != nil {
		m.CommunityName = strings.TrimSpace(*r.CommunityName)
	}
	if r.CommunityDescription != nil {
		if s := strings.TrimSpace(*r.CommunityDescription); s != "" {
			m.CommunityDescription = &s
		} else {
			m.CommunityDescription = nil
		}
	}
	if r.CommunityIsActive != nil {
		m.CommunityIsActive = *r.CommunityIsActive
	}
}

type CommunityResponse struct {
	CommunityID          string    `json:"community_id"`
	CommunityVillageID   string    `json:"community_village_id"`
	CommunityName        string    `json:"community_name"`
	CommunitySlug        string    `json:"community_slug"`
	CommunityDescription string    `json:"community_description"`
	CommunityImageURL    string    `json:"community_image_url"`
	CommunityIsActive    bool      `json:"community_is_active"`
	CommunityCreatedAt   time.Time `json:"community_created_at"`
}

func FromModel(m *model.CommunityModel) CommunityResponse {
	out := CommunityResponse{
		CommunityID:        m.CommunityID.String(),
		CommunityVillageID: m.CommunityVillageID.String(),
		CommunityName:      m.CommunityName,
		CommunitySlug:      m.CommunitySlug,
		CommunityIsActive:  m.CommunityIsActive,
		CommunityCreatedAt: m.CommunityCreatedAt,
	}
	if m.CommunityDescription != nil {
		out.CommunityDescription = *m.CommunityDescription
	}
	if m.CommunityImageURL != nil {
		out.CommunityImageURL = *m.CommunityImageURL
	}
	return out
}

func FromModels(ms []model.CommunityModel) []CommunityResponse {
	out := make([]CommunityResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
