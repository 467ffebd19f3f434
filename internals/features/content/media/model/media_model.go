// file: internals/features/content/media/model/media_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helperOSS "smartvillage_backend/internals/helpers/oss"
)

// MediaModel: video/audio milik satu entity konten (owner polimorfik).
// Row di-hard-delete; file di storage menyusul best-effort lewat hook.
type MediaModel struct {
	MediaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"media_id"`

	MediaVillageID uuid.UUID `gorm:"type:uuid;not null;index" json:"media_village_id"`

	// Owner polimorfik: "article" | "place" | "offer" | "sme"
	MediaOwnerType string    `gorm:"type:varchar(20);not null;index:idx_media_owner" json:"media_owner_type"`
	MediaOwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_media_owner" json:"media_owner_id"`

	MediaFileURL      string  `gorm:"type:text;not null" json:"media_file_url"`
	MediaThumbnailURL *string `gorm:"type:text" json:"media_thumbnail_url,omitempty"`
	MediaMimeType     string  `gorm:"type:varchar(60);not null" json:"media_mime_type"`
	MediaSizeBytes    int64   `gorm:"not null;default:0" json:"media_size_bytes"`

	MediaCreatedAt time.Time `gorm:"autoCreateTime" json:"media_created_at"`
	MediaUpdatedAt time.Time `gorm:"autoUpdateTime" json:"media_updated_at"`
}

func (MediaModel) TableName() string { return "media" }

// AfterDelete: hapus file utama & thumbnail secara independen.
// Kegagalan hanya di-log — row sudah terhapus, file yatim diterima
// (best-effort, tanpa retry, tanpa transaksi lintas storage).
func (m *MediaModel) AfterDelete(tx *gorm.DB) error {
	urls := []string{m.MediaFileURL}
	if m.MediaThumbnailURL != nil {
		urls = append(urls, *m.MediaThumbnailURL)
	}
	helperOSS.DeleteManyByPublicURL(tx.Statement.Context, helperOSS.DefaultFileRemover(), urls...)
	return nil
}
