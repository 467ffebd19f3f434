// file: internals/helpers/oss/oss_media.go
package helper

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartvillage_backend/internals/constants"
)

// Batas upload media (video/audio)
const (
	MaxMediaBytes     = 100 << 20 // 100MB
	MaxThumbnailBytes = 5 << 20   // 5MB
)

// MIME media yang diterima — dicek dari isi file, bukan ekstensi.
var allowedMediaMIME = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"video/x-matroska": true,
	"audio/mpeg":       true,
	"audio/wav":        true,
	"audio/ogg":        true,
	"audio/mp4":        true,
}

// ValidateMediaUpload: size ≤100MB + sniff MIME terhadap daftar di atas.
// Mengembalikan MIME terdeteksi.
func ValidateMediaUpload(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxMediaBytes {
		return "", fiber.NewError(fiber.StatusBadRequest, "Ukuran media maksimal 100MB")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// cukup header 3KB untuk deteksi
	head := make([]byte, 3072)
	n, _ := io.ReadFull(f, head)
	mt := mimetype.Detect(head[:n])

	ct := strings.ToLower(mt.String())
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if !allowedMediaMIME[ct] {
		return "", fiber.NewError(fiber.StatusBadRequest, "Tipe media tidak didukung: "+ct)
	}
	return ct, nil
}

// mediaSlot memilah folder object key berdasarkan jenis file.
func mediaSlot(filename string) string {
	switch constants.DetectFileTypeFromExt(filename) {
	case constants.FileTypeVideo:
		return "media/video"
	case constants.FileTypeAudio:
		return "media/audio"
	default:
		return "media"
	}
}

// UploadMedia menyimpan file media apa adanya (tanpa transcoding).
func (s *OSSService) UploadMedia(ctx context.Context, villageID uuid.UUID, fh *multipart.FileHeader) (string, string, error) {
	ct, err := ValidateMediaUpload(fh)
	if err != nil {
		return "", "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	key := s.buildObjectKey(villageID, mediaSlot(fh.Filename), fh.Filename)
	if err := s.UploadStream(ctx, key, f, ct); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), ct, nil
}

// UploadMediaThumbnail: thumbnail opsional ≤5MB, aturan gambar biasa
// tapi dengan batas ukuran lebih ketat.
func (s *OSSService) UploadMediaThumbnail(ctx context.Context, villageID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxThumbnailBytes {
		return "", fiber.NewError(fiber.StatusBadRequest, "Ukuran thumbnail maksimal 5MB")
	}

	_, img, err := ValidateImageUpload(fh)
	if err != nil {
		return "", err
	}

	out, err := encodeToWebP(downscaleIfNeeded(img, 640))
	if err != nil {
		return "", err
	}

	key := s.buildObjectKey(villageID, "media/thumbnails", fh.Filename+".webp")
	if err := s.UploadStream(ctx, key, bytes.NewReader(out), "image/webp"); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}
