// file: internals/features/content/media/model/image_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helperOSS "smartvillage_backend/internals/helpers/oss"
)

// ImageModel: gambar milik satu entity konten (owner polimorfik).
type ImageModel struct {
	ImageID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"image_id"`

	ImageVillageID uuid.UUID `gorm:"type:uuid;not null;index" json:"image_village_id"`

	ImageOwnerType string    `gorm:"type:varchar(20);not null;index:idx_image_owner" json:"image_owner_type"`
	ImageOwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_image_owner" json:"image_owner_id"`

	ImageFileURL string  `gorm:"type:text;not null" json:"image_file_url"`
	ImageCaption *string `gorm:"type:varchar(200)" json:"image_caption,omitempty"`

	ImageCreatedAt time.Time `gorm:"autoCreateTime" json:"image_created_at"`
	ImageUpdatedAt time.Time `gorm:"autoUpdateTime" json:"image_updated_at"`
}

func (ImageModel) TableName() string { return "images" }

// AfterDelete: satu file saja, tetap best-effort.
func (m *ImageModel) AfterDelete(tx *gorm.DB) error {
	helperOSS.DeleteManyByPublicURL(tx.Statement.Context, helperOSS.DefaultFileRemover(), m.ImageFileURL)
	return nil
}
