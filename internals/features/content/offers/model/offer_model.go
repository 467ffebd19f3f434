// file: internals/features/content/offers/model/offer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferModel: produk/penawaran milik satu UMKM.
// Rantai scope penuh (Offer→Sme→Community→Village) ter-denormalisasi.
type OfferModel struct {
	OfferID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"offer_id"`

	// Scope
	OfferSmeID       uuid.UUID `gorm:"type:uuid;not null;index" json:"offer_sme_id"`
	OfferCommunityID uuid.UUID `gorm:"type:uuid;not null;index" json:"offer_community_id"`
	OfferVillageID   uuid.UUID `gorm:"type:uuid;not null;index" json:"offer_village_id"`

	// Konten
	OfferTitle       string   `gorm:"type:varchar(160);not null" json:"offer_title"`
	OfferSlug        string   `gorm:"type:varchar(180);not null;index" json:"offer_slug"`
	OfferDescription *string  `gorm:"type:text" json:"offer_description,omitempty"`
	OfferPrice       *float64 `gorm:"type:decimal(14,2)" json:"offer_price,omitempty"`
	OfferUnit        *string  `gorm:"type:varchar(30)" json:"offer_unit,omitempty"` // "pcs", "kg", ...

	// Media
	OfferImageURL *string `gorm:"type:text" json:"offer_image_url,omitempty"`

	OfferIsActive bool `gorm:"not null;default:true" json:"offer_is_active"`

	// Audit
	OfferCreatedAt time.Time      `gorm:"autoCreateTime" json:"offer_created_at"`
	OfferUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"offer_updated_at"`
	OfferDeletedAt gorm.DeletedAt `gorm:"index" json:"offer_deleted_at,omitempty"`
}

func (OfferModel) TableName() string { return "offers" }
