// file: internals/features/content/offers/dto/offer_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/content/offers/model"
	"smartvillage_backend/internals/policy"
)

type OfferRequest struct {
	// Hanya super_admin yang boleh menunjuk sme dari body; sme_admin
	// dipaksa ke rantai scope tokennya.
	OfferSmeID string `json:"offer_sme_id"`

	OfferTitle       string   `json:"offer_title" validate:"required,min=2,max=160"`
	OfferDescription string   `json:"offer_description"`
	OfferPrice       *float64 `json:"offer_price" validate:"omitempty,gte=0"`
	OfferUnit        string   `json:"offer_unit" validate:"omitempty,max=30"`
}

// ToModel mengembalikan model dengan OfferSmeID terisi; rantai community/
// village dilengkapi controller dari baris sme (kecuali sme_admin yang sudah
// membawa rantai penuh di token).
func (r *OfferRequest) ToModel(a policy.Actor) model.OfferModel {
	m := model.OfferModel{
		OfferTitle:    strings.TrimSpace(r.OfferTitle),
		OfferPrice:    r.OfferPrice,
		OfferIsActive: true,
	}
	setStr(&m.OfferDescription, r.OfferDescription)
	setStr(&m.OfferUnit, r.OfferUnit)

	if a.IsSmeAdmin() {
		if a.SmeID != nil {
			m.OfferSmeID = *a.SmeID
		}
		if a.CommunityID != nil {
			m.OfferCommunityID = *a.CommunityID
		}
		if a.VillageID != nil {
			m.OfferVillageID = *a.VillageID
		}
		return m
	}

	if id, err := uuid.Parse(strings.TrimSpace(r.OfferSmeID)); err == nil {
		m.OfferSmeID = id
	}
	return m
}

type OfferUpdateRequest struct {
	OfferTitle       *string  `json:"offer_title" validate:"omitempty,min=2,max=160"`
	OfferDescription *string  `json:"offer_description"`
	OfferPrice       *float64 `json:"offer_price" validate:"omitempty,gte=0"`
	OfferUnit        *string  `json:"offer_unit" validate:"omitempty,max=30"`
	OfferIsActive    *bool    `json:"offer_is_active"`
}

func (r *OfferUpdateRequest) Apply(m *model.OfferModel) {
	if r.OfferTitle != nil {
		if v := strings.TrimSpace(*r.OfferTitle); v != "" {
			m.OfferTitle = v
		}
	}
	applyStr(&m.OfferDescription, r.OfferDescription)
	applyStr(&m.OfferUnit, r.OfferUnit)
	if r.OfferPrice != nil {
		m.OfferPrice = r.OfferPrice
	}
	if r.OfferIsActive != nil {
		m.OfferIsActive = *r.OfferIsActive
	}
}

type OfferResponse struct {
	OfferID          uuid.UUID `json:"offer_id"`
	OfferSmeID       uuid.UUID `json:"offer_sme_id"`
	OfferCommunityID uuid.UUID `json:"offer_community_id"`
	OfferVillageID   uuid.UUID `json:"offer_village_id"`
	OfferTitle       string    `json:"offer_title"`
	OfferSlug        string    `json:"offer_slug"`
	OfferDescription string    `json:"offer_description"`
	OfferPrice       *float64  `json:"offer_price,omitempty"`
	OfferUnit        string    `json:"offer_unit"`
	OfferImageURL    string    `json:"offer_image_url"`
	OfferIsActive    bool      `json:"offer_is_active"`
	OfferCreatedAt   time.Time `json:"offer_created_at"`
	OfferUpdatedAt   time.Time `json:"offer_updated_at"`
}

func FromModel(m *model.OfferModel) OfferResponse {
	return OfferResponse{
		OfferID:          m.OfferID,
		OfferSmeID:       m.OfferSmeID,
		OfferCommunityID: m.OfferCommunityID,
		OfferVillageID:   m.OfferVillageID,
		OfferTitle:       m.OfferTitle,
		OfferSlug:        m.OfferSlug,
		OfferDescription: str(m.OfferDescription),
		OfferPrice:       m.OfferPrice,
		OfferUnit:        str(m.OfferUnit),
		OfferImageURL:    str(m.OfferImageURL),
		OfferIsActive:    m.OfferIsActive,
		OfferCreatedAt:   m.OfferCreatedAt,
		OfferUpdatedAt:   m.OfferUpdatedAt,
	}
}

func FromModels(ms []model.OfferModel) []OfferResponse {
	out := make([]OfferResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
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
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
