// file: internals/features/content/categories/model/category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel: kategori konten per desa (dipakai Place, Article, Offer).
type CategoryModel struct {
	CategoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`

	CategoryVillageID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_category_village_slug" json:"category_village_id"`

	CategoryName string `gorm:"type:varchar(80);not null" json:"category_name"`
	CategorySlug string `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_village_slug" json:"category_slug"`
	// Jenis: "place" | "article" | "offer"
	CategoryType string `gorm:"type:varchar(20);not null;default:'place'" json:"category_type"`

	CategoryCreatedAt time.Time      `gorm:"autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"category_updated_at"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"index" json:"category_deleted_at,omitempty"`
}

func (CategoryModel) TableName() string { return "categories" }
