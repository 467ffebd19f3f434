// file: internals/features/village/villages/dto/village_dto.go
package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"smartvillage_backend/internals/features/village/villages/model"
)

/* =========================================================
   REQUEST DTO — CREATE (writable fields only)
   Catatan:
   - village_domain: "" => NULL, disimpan lower-case
   - slug digenerate server-side bila kosong
========================================================= */

type VillageRequest struct {
	VillageName     string  `json:"village_name" validate:"required,min=3,max=100"`
	VillageBioShort string  `json:"village_bio_short"`
	VillageSlug     string  `json:"village_slug" validate:"omitempty,max=100"`
	VillageDomain   string  `json:"village_domain" validate:"omitempty,fqdn"`
	VillageLocation string  `json:"village_location"`
	VillageLatitude  *float64 `json:"village_latitude" validate:"omitempty,latitude"`
	VillageLongitude *float64 `json:"village_longitude" validate:"omitempty,longitude"`
	VillageBoundary  datatypes.JSON `json:"village_boundary"`
	VillageIsActive  *bool          `json:"village_is_active"`
}

func (r *VillageRequest) ToModel() model.VillageModel {
	m := model.VillageModel{
		VillageName:      strings.TrimSpace(r.VillageName),
		VillageSlug:      strings.TrimSpace(r.VillageSlug),
		VillageLatitude:  r.VillageLatitude,
		VillageLongitude: r.VillageLongitude,
		VillageBoundary:  r.VillageBoundary,
		VillageIsActive:  true,
	}
	if s := strings.TrimSpace(r.VillageBioShort); s != "" {
		m.VillageBioShort = &s
	}
	if s := strings.TrimSpace(r.VillageLocation); s != "" {
		m.VillageLocation = &s
	}
	if d := strings.ToLower(strings.TrimSpace(r.VillageDomain)); d != "" {
		m.VillageDomain = &d
	}
	if r.VillageIsActive != nil {
		m.VillageIsActive = *r.VillageIsActive
	}
	return m
}

/* =========================================================
   PARTIAL UPDATE DTO — pointer semua writable fields
========================================================= */

type VillageUpdateRequest struct {
	VillageName     *string  `json:"village_name" validate:"omitempty,min=3,max=100"`
	VillageBioShort *string  `json:"village_bio_short"`
	VillageSlug     *string  `json:"village_slug" validate:"omitempty,max=100"`
	VillageDomain   *string  `json:"village_domain"` // "" => NULL, lower-case
	VillageLocation *string  `json:"village_location"`
	VillageLatitude  *float64 `json:"village_latitude" validate:"omitempty,latitude"`
	VillageLongitude *float64 `json:"village_longitude" validate:"omitempty,longitude"`
	VillageBoundary  *datatypes.JSON `json:"village_boundary"`
	VillageIsActive  *bool           `json:"village_is_active"`
}

// Apply menimpa field yang dikirim saja (nil = tidak diubah).
func (r *VillageUpdateRequest) Apply(m *model.VillageModel) {
	if r.VillageName != nil {
		m.VillageName = strings.TrimSpace(*r.VillageName)
	}
	if r.VillageBioShort != nil {
		if s := strings.TrimSpace(*r.VillageBioShort); s != "" {
			m.VillageBioShort = &s
		} else {
			m.VillageBioShort = nil
		}
	}
	if r.VillageSlug != nil {
		m.VillageSlug = strings.TrimSpace(*r.VillageSlug)
	}
	if r.VillageDomain != nil {
		if d := strings.ToLower(strings.TrimSpace(*r.VillageDomain)); d != "" {
			m.VillageDomain = &d
		} else {
			m.VillageDomain = nil
		}
	}
	if r.VillageLocation != nil {
		if s := strings.TrimSpace(*r.VillageLocation); s != "" {
			m.VillageLocation = &s
		} else {
			m.VillageLocation = nil
		}
	}
	if r.VillageLatitude != nil {
		m.VillageLatitude = r.VillageLatitude
	}
	if r.VillageLongitude != nil {
		m.VillageLongitude = r.VillageLongitude
	}
	if r.VillageBoundary != nil {
		m.VillageBoundary = *r.VillageBoundary
	}
	if r.VillageIsActive != nil {
		m.VillageIsActive = *r.VillageIsActive
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type VillageResponse struct {
	VillageID       string   `json:"village_id"`
	VillageName     string   `json:"village_name"`
	VillageBioShort string   `json:"village_bio_short"`
	VillageSlug     string   `json:"village_slug"`
	VillageDomain   string   `json:"village_domain"`
	VillageLocation string   `json:"village_location"`
	VillageLatitude  *float64 `json:"village_latitude,omitempty"`
	VillageLongitude *float64 `json:"village_longitude,omitempty"`
	VillageImageURL string    `json:"village_image_url"`
	VillageIsActive bool      `json:"village_is_active"`

	VillageCreatedAt time.Time `json:"village_created_at"`
	VillageUpdatedAt time.Time `json:"village_updated_at"`
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func FromModel(m *model.VillageModel) VillageResponse {
	return VillageResponse{
		VillageID:        m.VillageID.String(),
		VillageName:      m.VillageName,
		VillageBioShort:  strOrEmpty(m.VillageBioShort),
		VillageSlug:      m.VillageSlug,
		VillageDomain:    strOrEmpty(m.VillageDomain),
		VillageLocation:  strOrEmpty(m.VillageLocation),
		VillageLatitude:  m.VillageLatitude,
		VillageLongitude: m.VillageLongitude,
		VillageImageURL:  strOrEmpty(m.VillageImageURL),
		VillageIsActive:  m.VillageIsActive,
		VillageCreatedAt: m.VillageCreatedAt,
		VillageUpdatedAt: m.VillageUpdatedAt,
	}
}

func FromModels(ms []model.VillageModel) []VillageResponse {
	out := make([]VillageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
