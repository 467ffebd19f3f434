// file: internals/features/links/dto/link_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/configs"
	"smartvillage_backend/internals/features/links/model"
	"smartvillage_backend/internals/policy"
)

type LinkRequest struct {
	// Hanya super_admin yang boleh menunjuk desa; lainnya dari token.
	ExternalLinkVillageID string `json:"external_link_village_id"`
	ExternalLinkPlaceID   string `json:"external_link_place_id" validate:"omitempty,uuid"`

	ExternalLinkLabel     string `json:"external_link_label" validate:"required,min=2,max=120"`
	ExternalLinkSlug      string `json:"external_link_slug" validate:"omitempty,max=80"`
	ExternalLinkTargetURL string `json:"external_link_target_url" validate:"required,url"`
}

func (r *LinkRequest) ToModel(a policy.Actor) model.ExternalLinkModel {
	m := model.ExternalLinkModel{
		ExternalLinkLabel:     strings.TrimSpace(r.ExternalLinkLabel),
		ExternalLinkSlug:      strings.TrimSpace(r.ExternalLinkSlug),
		ExternalLinkTargetURL: strings.TrimSpace(r.ExternalLinkTargetURL),
		ExternalLinkIsActive:  true,
	}
	if id, err := uuid.Parse(strings.TrimSpace(r.ExternalLinkPlaceID)); err == nil {
		m.ExternalLinkPlaceID = &id
	}
	if a.IsSuperAdmin() {
		if id, err := uuid.Parse(strings.TrimSpace(r.ExternalLinkVillageID)); err == nil {
			m.ExternalLinkVillageID = id
		}
	} else if a.VillageID != nil {
		m.ExternalLinkVillageID = *a.VillageID
	}
	return m
}

type LinkUpdateRequest struct {
	ExternalLinkPlaceID   *string `json:"external_link_place_id" validate:"omitempty,uuid"`
	ExternalLinkLabel     *string `json:"external_link_label" validate:"omitempty,min=2,max=120"`
	ExternalLinkTargetURL *string `json:"external_link_target_url" validate:"omitempty,url"`
	ExternalLinkIsActive  *bool   `json:"external_link_is_active"`
}

func (r *LinkUpdateRequest) Apply(m *model.ExternalLinkModel) {
	if r.ExternalLinkLabel != nil {
		if v := strings.TrimSpace(*r.ExternalLinkLabel); v != "" {
			m.ExternalLinkLabel = v
		}
	}
	if r.ExternalLinkTargetURL != nil {
		if v := strings.TrimSpace(*r.ExternalLinkTargetURL); v != "" {
			m.ExternalLinkTargetURL = v
		}
	}
	if r.ExternalLinkPlaceID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.ExternalLinkPlaceID)); err == nil {
			m.ExternalLinkPlaceID = &id
		}
	}
	if r.ExternalLinkIsActive != nil {
		m.ExternalLinkIsActive = *r.ExternalLinkIsActive
	}
}

type LinkResponse struct {
	ExternalLinkID         uuid.UUID  `json:"external_link_id"`
	ExternalLinkVillageID  uuid.UUID  `json:"external_link_village_id"`
	ExternalLinkPlaceID    *uuid.UUID `json:"external_link_place_id,omitempty"`
	ExternalLinkLabel      string     `json:"external_link_label"`
	ExternalLinkSlug       string     `json:"external_link_slug"`
	ExternalLinkTargetURL  string     `json:"external_link_target_url"`
	ExternalLinkShortURL   string     `json:"external_link_short_url"`
	ExternalLinkClickCount int64      `json:"external_link_click_count"`
	ExternalLinkIsActive   bool       `json:"external_link_is_active"`
	ExternalLinkCreatedAt  time.Time  `json:"external_link_created_at"`
	ExternalLinkUpdatedAt  time.Time  `json:"external_link_updated_at"`
}

// ShortURL merakit URL pendek dari slug desa:
// {protocol}://{slug-desa}.{base-domain}/l/{slug}
func ShortURL(villageSlug, linkSlug string) string {
	return configs.URLProtocol + "://" + villageSlug + "." + configs.AppDomain + "/l/" + linkSlug
}

func FromModel(m *model.ExternalLinkModel, villageSlug string) LinkResponse {
	return LinkResponse{
		ExternalLinkID:         m.ExternalLinkID,
		ExternalLinkVillageID:  m.ExternalLinkVillageID,
		ExternalLinkPlaceID:    m.ExternalLinkPlaceID,
		ExternalLinkLabel:      m.ExternalLinkLabel,
		ExternalLinkSlug:       m.ExternalLinkSlug,
		ExternalLinkTargetURL:  m.ExternalLinkTargetURL,
		ExternalLinkShortURL:   ShortURL(villageSlug, m.ExternalLinkSlug),
		ExternalLinkClickCount: m.ExternalLinkClickCount,
		ExternalLinkIsActive:   m.ExternalLinkIsActive,
		ExternalLinkCreatedAt:  m.ExternalLinkCreatedAt,
		ExternalLinkUpdatedAt:  m.ExternalLinkUpdatedAt,
	}
}

func FromModels(ms []model.ExternalLinkModel, villageSlug string) []LinkResponse {
	out := make([]LinkResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i], villageSlug))
	}
	return out
}
