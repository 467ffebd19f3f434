// file: internals/features/links/model/external_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExternalLinkModel: tautan keluar milik satu Place, dengan short-slug
// yang di-resolve lewat URL desa: {protocol}://{slug-desa}.{base}/l/{slug}.
type ExternalLinkModel struct {
	ExternalLinkID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"external_link_id"`

	ExternalLinkVillageID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_link_village_slug" json:"external_link_village_id"`
	ExternalLinkPlaceID   *uuid.UUID `gorm:"type:uuid;index" json:"external_link_place_id,omitempty"`

	ExternalLinkLabel     string `gorm:"type:varchar(120);not null" json:"external_link_label"`
	ExternalLinkSlug      string `gorm:"type:varchar(80);not null;uniqueIndex:idx_link_village_slug" json:"external_link_slug"`
	ExternalLinkTargetURL string `gorm:"type:text;not null" json:"external_link_target_url"`

	// Statistik klik — increment best-effort, tidak akurat 100% dan memang
	// tidak perlu (bukan sumber kebenaran billing).
	ExternalLinkClickCount int64 `gorm:"not null;default:0" json:"external_link_click_count"`

	ExternalLinkIsActive bool `gorm:"not null;default:true" json:"external_link_is_active"`

	ExternalLinkCreatedAt time.Time      `gorm:"autoCreateTime" json:"external_link_created_at"`
	ExternalLinkUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"external_link_updated_at"`
	ExternalLinkDeletedAt gorm.DeletedAt `gorm:"index" json:"external_link_deleted_at,omitempty"`
}

func (ExternalLinkModel) TableName() string { return "external_links" }
