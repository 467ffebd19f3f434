// file: internals/features/content/media/dto/media_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"smartvillage_backend/internals/features/content/media/model"
)

type MediaResponse struct {
	MediaID           uuid.UUID `json:"media_id"`
	MediaVillageID    uuid.UUID `json:"media_village_id"`
	MediaOwnerType    string    `json:"media_owner_type"`
	MediaOwnerID      uuid.UUID `json:"media_owner_id"`
	MediaFileURL      string    `json:"media_file_url"`
	MediaThumbnailURL string    `json:"media_thumbnail_url"`
	MediaMimeType     string    `json:"media_mime_type"`
	MediaSizeBytes    int64     `json:"media_size_bytes"`
	MediaCreatedAt    time.Time `json:"media_created_at"`
}

func MediaFromModel(m *model.MediaModel) MediaResponse {
	thumb := ""
	if m.MediaThumbnailURL != nil {
		thumb = *m.MediaThumbnailURL
	}
	return MediaResponse{
		MediaID:           m.MediaID,
		MediaVillageID:    m.MediaVillageID,
		MediaOwnerType:    m.MediaOwnerType,
		MediaOwnerID:      m.MediaOwnerID,
		MediaFileURL:      m.MediaFileURL,
		MediaThumbnailURL: thumb,
		MediaMimeType:     m.MediaMimeType,
		MediaSizeBytes:    m.MediaSizeBytes,
		MediaCreatedAt:    m.MediaCreatedAt,
	}
}

func MediaFromModels(ms []model.MediaModel) []MediaResponse {
	out := make([]MediaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, MediaFromModel(&ms[i]))
	}
	return out
}

type ImageResponse struct {
	ImageID        uuid.UUID `json:"image_id"`
	ImageVillageID uuid.UUID `json:"image_village_id"`
	ImageOwnerType string    `json:"image_owner_type"`
	ImageOwnerID   uuid.UUID `json:"image_owner_id"`
	ImageFileURL   string    `json:"image_file_url"`
	ImageCaption   string    `json:"image_caption"`
	ImageCreatedAt time.Time `json:"image_created_at"`
}

func ImageFromModel(m *model.ImageModel) ImageResponse {
	caption := ""
	if m.ImageCaption != nil {
		caption = *m.ImageCaption
	}
	return ImageResponse{
		ImageID:        m.ImageID,
		ImageVillageID: m.ImageVillageID,
		ImageOwnerType: m.ImageOwnerType,
		ImageOwnerID:   m.ImageOwnerID,
		ImageFileURL:   m.ImageFileURL,
		ImageCaption:   caption,
		ImageCreatedAt: m.ImageCreatedAt,
	}
}

func ImageFromModels(ms []model.ImageModel) []ImageResponse {
	out := make([]ImageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ImageFromModel(&ms[i]))
	}
	return out
}
