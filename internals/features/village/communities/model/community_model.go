// file: internals/features/village/communities/model/community_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityModel: komunitas warga, selalu milik tepat satu desa.
type CommunityModel struct {
	CommunityID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"community_id"`

	// Relasi
	CommunityVillageID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_community_village_slug" json:"community_village_id"`

	// Identitas
	CommunityName        string  `gorm:"type:varchar(100);not null" json:"community_name"`
	CommunitySlug        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_community_village_slug" json:"community_slug"`
	CommunityDescription *string `gorm:"type:text" json:"community_description,omitempty"`
	CommunityImageURL    *string `gorm:"type:text" json:"community_image_url,omitempty"`

	CommunityIsActive bool `gorm:"not null;default:true" json:"community_is_active"`

	// Audit
	CommunityCreatedAt time.Time      `gorm:"autoCreateTime" json:"community_created_at"`
	CommunityUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"community_updated_at"`
	CommunityDeletedAt gorm.DeletedAt `gorm:"index" json:"community_deleted_at,omitempty"`
}

func (CommunityModel) TableName() string { return "communities" }
