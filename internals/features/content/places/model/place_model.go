// file: internals/features/content/places/model/place_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PlaceModel: tempat/destinasi milik satu desa.
type PlaceModel struct {
	PlaceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"place_id"`

	// Relasi
	PlaceVillageID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_place_village_slug" json:"place_village_id"`
	PlaceCategoryID *uuid.UUID `gorm:"type:uuid;index" json:"place_category_id,omitempty"`

	// Identitas
	PlaceName        string  `gorm:"type:varchar(120);not null" json:"place_name"`
	PlaceSlug        string  `gorm:"type:varchar(140);not null;uniqueIndex:idx_place_village_slug" json:"place_slug"`
	PlaceDescription *string `gorm:"type:text" json:"place_description,omitempty"`

	// Lokasi
	PlaceAddress   *string  `gorm:"type:text" json:"place_address,omitempty"`
	PlaceLatitude  *float64 `gorm:"type:decimal(9,6)" json:"place_latitude,omitempty"`
	PlaceLongitude *float64 `gorm:"type:decimal(9,6)" json:"place_longitude,omitempty"`

	// Media
	PlaceImageURL    *string        `gorm:"type:text" json:"place_image_url,omitempty"`
	PlaceGalleryURLs pq.StringArray `gorm:"type:text[]" json:"place_gallery_urls,omitempty"`

	PlaceIsActive bool `gorm:"not null;default:true" json:"place_is_active"`

	// Audit
	PlaceCreatedAt time.Time      `gorm:"autoCreateTime" json:"place_created_at"`
	PlaceUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"place_updated_at"`
	PlaceDeletedAt gorm.DeletedAt `gorm:"index" json:"place_deleted_at,omitempty"`
}

func (PlaceModel) TableName() string { return "places" }
