// file: internals/features/content/categories/dto/category_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/content/categories/model"
	"smartvillage_backend/internals/policy"
)

type CategoryRequest struct {
	// Hanya dipakai super_admin; role lain dipaksa ke scope tokennya.
	CategoryVillageID string `json:"category_village_id"`

	CategoryName string `json:"category_name" validate:"required,min=2,max=80"`
	CategoryType string `json:"category_type" validate:"omitempty,oneof=place article offer"`
}

func (r *CategoryRequest) ToModel(a policy.Actor) model.CategoryModel {
	m := model.CategoryModel{
		CategoryName: strings.TrimSpace(r.CategoryName),
		CategoryType: strings.TrimSpace(r.CategoryType),
	}
	if m.CategoryType == "" {
		m.CategoryType = "place"
	}
	if a.IsSuperAdmin() {
		if id, err := uuid.Parse(strings.TrimSpace(r.CategoryVillageID)); err == nil {
			m.CategoryVillageID = id
		}
	} else if a.VillageID != nil {
		m.CategoryVillageID = *a.VillageID
	}
	return m
}

type CategoryUpdateRequest struct {
	CategoryName *string `json:"category_name" validate:"omitempty,min=2,max=80"`
	CategoryType *string `json:"category_type" validate:"omitempty,oneof=place article offer"`
}

func (r *CategoryUpdateRequest) Apply(m *model.CategoryModel) {
	if r.CategoryName != nil {
		if v := strings.TrimSpace(*r.CategoryName); v != "" {
			m.CategoryName = v
		}
	}
	if r.CategoryType != nil {
		if v := strings.TrimSpace(*r.CategoryType); v != "" {
			m.CategoryType = v
		}
	}
}

type CategoryResponse struct {
	CategoryID        uuid.UUID `json:"category_id"`
	CategoryVillageID uuid.UUID `json:"category_village_id"`
	CategoryName      string    `json:"category_name"`
	CategorySlug      string    `json:"category_slug"`
	CategoryType      string    `json:"category_type"`
	CategoryCreatedAt time.Time `json:"category_created_at"`
	CategoryUpdatedAt time.Time `json:"category_updated_at"`
}

func FromModel(m *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:        m.CategoryID,
		CategoryVillageID: m.CategoryVillageID,
		CategoryName:      m.CategoryName,
		CategorySlug:      m.CategorySlug,
		CategoryType:      m.CategoryType,
		CategoryCreatedAt: m.CategoryCreatedAt,
		CategoryUpdatedAt: m.CategoryUpdatedAt,
	}
}

func FromModels(ms []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
