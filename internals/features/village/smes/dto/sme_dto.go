// file: internals/features/village/smes/dto/sme_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/village/smes/model"
	"smartvillage_backend/internals/policy"
)

type SmeRequest struct {
	// Scope dari client hanya dihormati sebagian, tergantung role:
	// - super_admin: keduanya bebas
	// - village_admin: community bebas (dalam desanya), village dipaksa
	// - community/sme admin: keduanya dipaksa dari actor
	SmeVillageID   *uuid.UUID `json:"sme_village_id"`
	SmeCommunityID *uuid.UUID `json:"sme_community_id"`

	SmeName        string `json:"sme_name" validate:"required,min=3,max=100"`
	SmeSlug        string `json:"sme_slug" validate:"omitempty,max=100"`
	SmeDescription string `json:"sme_description"`
	SmeAddress     string `json:"sme_address"`
	SmePhone       string `json:"sme_phone" validate:"omitempty,max=30"`
	SmeWhatsapp    string `json:"sme_whatsapp" validate:"omitempty,max=30"`
}

func (r *SmeRequest) ToModel(actor policy.Actor) model.SmeModel {
	m := model.SmeModel{
		SmeName:     strings.TrimSpace(r.SmeName),
		SmeSlug:     strings.TrimSpace(r.SmeSlug),
		SmeIsActive: true,
	}
	setStr(&m.SmeDescription, r.SmeDescription)
	setStr(&m.SmeAddress, r.SmeAddress)
	setStr(&m.SmePhone, r.SmePhone)
	setStr(&m.SmeWhatsapp, r.SmeWhatsapp)

	switch {
	case actor.IsSuperAdmin():
		if r.SmeVillageID != nil {
			m.SmeVillageID = *r.SmeVillageID
		}
		if r.SmeCommunityID != nil {
			m.SmeCommunityID = *r.SmeCommunityID
		}
	case actor.IsVillageAdmin():
		if actor.VillageID != nil {
			m.SmeVillageID = *actor.VillageID
		}
		if r.SmeCommunityID != nil {
			m.SmeCommunityID = *r.SmeCommunityID
		}
	default:
		if actor.VillageID != nil {
			m.SmeVillageID = *actor.VillageID
		}
		if actor.CommunityID != nil {
			m.SmeCommunityID = *actor.CommunityID
		}
	}
	return m
}

type SmeUpdateRequest struct {
	SmeName        *string `json:"sme_name" validate:"omitempty,min=3,max=100"`
	SmeDescription *string `json:"sme_description"`
	SmeAddress     *string `json:"sme_address"`
	SmePhone       *string `json:"sme_phone" validate:"omitempty,max=30"`
	SmeWhatsapp    *string `json:"sme_whatsapp" validate:"omitempty,max=30"`
	SmeIsActive    *bool   `json:"sme_is_active"`
}

func setStr(dst **string, src string) {
	if v := strings.TrimSpace(src); v != "" {
		*dst = &v
	}
}

func applyStr(dst **string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = &v
	} else {
		*dst = nil
	}
}

func (r *SmeUpdateRequest) Apply(m *model.SmeModel) {
	if r.SmeName != nil {
		m.SmeName = strings.TrimSpace(*r.SmeName)
	}
	applyStr(&m.SmeDescription, r.SmeDescription)
	applyStr(&m.SmeAddress, r.SmeAddress)
	applyStr(&m.SmePhone, r.SmePhone)
	applyStr(&m.SmeWhatsapp, r.SmeWhatsapp)
	if r.SmeIsActive != nil {
		m.SmeIsActive = *r.SmeIsActive
	}
}

type SmeResponse struct {
	SmeID          string    `json:"sme_id"`
	SmeVillageID   string    `json:"sme_village_id"`
	SmeCommunityID string    `json:"sme_community_id"`
	SmeName        string    `json:"sme_name"`
	SmeSlug        string    `json:"sme_slug"`
	SmeDescription string    `json:"sme_description"`
	SmeAddress     string    `json:"sme_address"`
	SmePhone       string    `json:"sme_phone"`
	SmeWhatsapp    string    `json:"sme_whatsapp"`
	SmeImageURL    string    `json:"sme_image_url"`
	SmeIsActive    bool      `json:"sme_is_active"`
	SmeCreatedAt   time.Time `json:"sme_created_at"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func FromModel(m *model.SmeModel) SmeResponse {
	return SmeResponse{
		SmeID:          m.SmeID.String(),
		SmeVillageID:   m.SmeVillageID.String(),
		SmeCommunityID: m.SmeCommunityID.String(),
		SmeName:        m.SmeName,
		SmeSlug:        m.SmeSlug,
		SmeDescription: str(m.SmeDescription),
		SmeAddress:     str(m.SmeAddress),
		SmePhone:       str(m.SmePhone),
		SmeWhatsapp:    str(m.SmeWhatsapp),
		SmeImageURL:    str(m.SmeImageURL),
		SmeIsActive:    m.SmeIsActive,
		SmeCreatedAt:   m.SmeCreatedAt,
	}
}

func FromModels(ms []model.SmeModel) []SmeResponse {
	out := make([]SmeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
