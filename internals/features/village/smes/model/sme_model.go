// file: internals/features/village/smes/model/sme_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SmeModel: UMKM milik satu komunitas (dan transitif satu desa).
// village_id ter-denormalisasi supaya policy & listing tidak perlu join.
type SmeModel struct {
	SmeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"sme_id"`

	// Relasi (rantai tenant: Sme→Community→Village)
	SmeCommunityID uuid.UUID `gorm:"type:uuid;not null;index" json:"sme_community_id"`
	SmeVillageID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_sme_village_slug" json:"sme_village_id"`

	// Identitas
	SmeName        string  `gorm:"type:varchar(100);not null" json:"sme_name"`
	SmeSlug        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_sme_village_slug" json:"sme_slug"`
	SmeDescription *string `gorm:"type:text" json:"sme_description,omitempty"`

	// Kontak & lokasi
	SmeAddress  *string `gorm:"type:text" json:"sme_address,omitempty"`
	SmePhone    *string `gorm:"type:varchar(30)" json:"sme_phone,omitempty"`
	SmeWhatsapp *string `gorm:"type:varchar(30)" json:"sme_whatsapp,omitempty"`

	// Media
	SmeImageURL *string `gorm:"type:text" json:"sme_image_url,omitempty"`

	SmeIsActive bool `gorm:"not null;default:true" json:"sme_is_active"`

	// Audit
	SmeCreatedAt time.Time      `gorm:"autoCreateTime" json:"sme_created_at"`
	SmeUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"sme_updated_at"`
	SmeDeletedAt gorm.DeletedAt `gorm:"index" json:"sme_deleted_at,omitempty"`
}

func (SmeModel) TableName() string { return "smes" }
