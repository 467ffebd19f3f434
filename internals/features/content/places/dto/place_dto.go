// file: internals/features/content/places/dto/place_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/content/places/model"
	"smartvillage_backend/internals/policy"
)

type PlaceRequest struct {
	// Hanya dihormati untuk super_admin; role lain dipaksa ke scope token.
	PlaceVillageID string `json:"place_village_id"`

	PlaceCategoryID string `json:"place_category_id" validate:"omitempty,uuid"`

	PlaceName        string `json:"place_name" validate:"required,min=2,max=120"`
	PlaceSlug        string `json:"place_slug" validate:"omitempty,max=140"`
	PlaceDescription string `json:"place_description"`

	PlaceAddress   string   `json:"place_address"`
	PlaceLatitude  *float64 `json:"place_latitude" validate:"omitempty,gte=-90,lte=90"`
	PlaceLongitude *float64 `json:"place_longitude" validate:"omitempty,gte=-180,lte=180"`
}

// ToModel: scope datang dari aktornya, bukan dari body. Klien non-super yang
// menyelipkan place_village_id akan diabaikan diam-diam.
func (r *PlaceRequest) ToModel(a policy.Actor) model.PlaceModel {
	m := model.PlaceModel{
		PlaceName:      strings.TrimSpace(r.PlaceName),
		PlaceSlug:      strings.TrimSpace(r.PlaceSlug),
		PlaceLatitude:  r.PlaceLatitude,
		PlaceLongitude: r.PlaceLongitude,
		PlaceIsActive:  true,
	}
	setStr(&m.PlaceDescription, r.PlaceDescription)
	setStr(&m.PlaceAddress, r.PlaceAddress)

	if id, err := uuid.Parse(strings.TrimSpace(r.PlaceCategoryID)); err == nil {
		m.PlaceCategoryID = &id
	}

	if a.IsSuperAdmin() {
		if id, err := uuid.Parse(strings.TrimSpace(r.PlaceVillageID)); err == nil {
			m.PlaceVillageID = id
		}
	} else if a.VillageID != nil {
		m.PlaceVillageID = *a.VillageID
	}
	return m
}

type PlaceUpdateRequest struct {
	PlaceCategoryID *string `json:"place_category_id" validate:"omitempty,uuid"`

	PlaceName        *string `json:"place_name" validate:"omitempty,min=2,max=120"`
	PlaceDescription *string `json:"place_description"`

	PlaceAddress   *string  `json:"place_address"`
	PlaceLatitude  *float64 `json:"place_latitude" validate:"omitempty,gte=-90,lte=90"`
	PlaceLongitude *float64 `json:"place_longitude" validate:"omitempty,gte=-180,lte=180"`

	PlaceIsActive *bool `json:"place_is_active"`
}

func (r *PlaceUpdateRequest) Apply(m *model.PlaceModel) {
	if r.PlaceName != nil {
		if v := strings.TrimSpace(*r.PlaceName); v != "" {
			m.PlaceName = v
		}
	}
	applyStr(&m.PlaceDescription, r.PlaceDescription)
	applyStr(&m.PlaceAddress, r.PlaceAddress)
	if r.PlaceCategoryID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.PlaceCategoryID)); err == nil {
			m.PlaceCategoryID = &id
		}
	}
	if r.PlaceLatitude != nil {
		m.PlaceLatitude = r.PlaceLatitude
	}
	if r.PlaceLongitude != nil {
		m.PlaceLongitude = r.PlaceLongitude
	}
	if r.PlaceIsActive != nil {
		m.PlaceIsActive = *r.PlaceIsActive
	}
}

type PlaceResponse struct {
	PlaceID          uuid.UUID  `json:"place_id"`
	PlaceVillageID   uuid.UUID  `json:"place_village_id"`
	PlaceCategoryID  *uuid.UUID `json:"place_category_id,omitempty"`
	PlaceName        string     `json:"place_name"`
	PlaceSlug        string     `json:"place_slug"`
	PlaceDescription string     `json:"place_description"`
	PlaceAddress     string     `json:"place_address"`
	PlaceLatitude    *float64   `json:"place_latitude,omitempty"`
	PlaceLongitude   *float64   `json:"place_longitude,omitempty"`
	PlaceImageURL    string     `json:"place_image_url"`
	PlaceGalleryURLs []string   `json:"place_gallery_urls"`
	PlaceIsActive    bool       `json:"place_is_active"`
	PlaceCreatedAt   time.Time  `json:"place_created_at"`
	PlaceUpdatedAt   time.Time  `json:"place_updated_at"`
}

func FromModel(m *model.PlaceModel) PlaceResponse {
	return PlaceResponse{
		PlaceID:          m.PlaceID,
		PlaceVillageID:   m.PlaceVillageID,
		PlaceCategoryID:  m.PlaceCategoryID,
		PlaceName:        m.PlaceName,
		PlaceSlug:        m.PlaceSlug,
		PlaceDescription: str(m.PlaceDescription),
		PlaceAddress:     str(m.PlaceAddress),
		PlaceLatitude:    m.PlaceLatitude,
		PlaceLongitude:   m.PlaceLongitude,
		PlaceImageURL:    str(m.PlaceImageURL),
		PlaceGalleryURLs: m.PlaceGalleryURLs,
		PlaceIsActive:    m.PlaceIsActive,
		PlaceCreatedAt:   m.PlaceCreatedAt,
		PlaceUpdatedAt:   m.PlaceUpdatedAt,
	}
}

func FromModels(ms []model.PlaceModel) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(ms))
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
