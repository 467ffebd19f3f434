// file: internals/features/village/villages/model/village_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VillageModel merepresentasikan tabel villages (tenant root).
// Satu desa = satu subdomain {slug}.{APP_DOMAIN}, opsional custom domain.
type VillageModel struct {
	// PK
	VillageID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"village_id"`

	// Identitas
	VillageName     string  `gorm:"type:varchar(100);not null" json:"village_name"`
	VillageBioShort *string `gorm:"type:text" json:"village_bio_short,omitempty"`

	// Domain & Slug
	VillageSlug   string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"village_slug"`
	VillageDomain *string `gorm:"type:varchar(100);uniqueIndex" json:"village_domain,omitempty"`

	// Lokasi
	VillageLocation  *string        `gorm:"type:text" json:"village_location,omitempty"`
	VillageLatitude  *float64       `gorm:"type:decimal(9,6)" json:"village_latitude,omitempty"`
	VillageLongitude *float64       `gorm:"type:decimal(9,6)" json:"village_longitude,omitempty"`
	VillageBoundary  datatypes.JSON `gorm:"type:jsonb" json:"village_boundary,omitempty"` // GeoJSON batas desa

	// Media
	VillageImageURL *string `gorm:"type:text" json:"village_image_url,omitempty"`

	// Status
	VillageIsActive bool `gorm:"not null;default:true" json:"village_is_active"`

	// Audit
	VillageCreatedAt time.Time      `gorm:"column:village_created_at;autoCreateTime" json:"village_created_at"`
	VillageUpdatedAt time.Time      `gorm:"column:village_updated_at;autoUpdateTime" json:"village_updated_at"`
	VillageDeletedAt gorm.DeletedAt `gorm:"column:village_deleted_at;index" json:"village_deleted_at,omitempty"`
}

func (VillageModel) TableName() string { return "villages" }
