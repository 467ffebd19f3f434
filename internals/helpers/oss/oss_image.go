// file: internals/helpers/oss/oss_image.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Batas upload gambar
const (
	MaxImageBytes = 10 << 20 // 10MB
	MinImageDim   = 100
	MaxImageDim   = 4000

	webpQuality = 80
	maxWebPSide = 1920 // downscale sebelum encode, hemat storage
)

var allowedImageMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImageUpload: size → MIME → decode → bounds 100..4000 per sisi.
// Return bytes yang sudah terbaca supaya tidak perlu re-open file.
func ValidateImageUpload(fh *multipart.FileHeader) ([]byte, image.Image, error) {
	if fh.Size > MaxImageBytes {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Ukuran gambar maksimal 10MB")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return nil, nil, err
	}
	if int64(len(all)) > MaxImageBytes {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Ukuran gambar maksimal 10MB")
	}

	ct := sniffImageMIME(all, fh)
	if !allowedImageMIME[ct] {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Format gambar harus jpeg/png/gif/webp")
	}

	img, err := decodeImage(all, ct)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "File gambar tidak bisa dibaca")
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < MinImageDim || h < MinImageDim {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Dimensi gambar minimal %dpx per sisi", MinImageDim))
	}
	if w > MaxImageDim || h > MaxImageDim {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Dimensi gambar maksimal %dpx per sisi", MaxImageDim))
	}

	return all, img, nil
}

func sniffImageMIME(all []byte, fh *multipart.FileHeader) string {
	if ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type"))); allowedImageMIME[ct] {
		return ct
	}
	// fallback sniff dari isi
	if len(all) >= 12 {
		switch {
		case bytes.HasPrefix(all, []byte("\xff\xd8\xff")):
			return "image/jpeg"
		case bytes.HasPrefix(all, []byte("\x89PNG\r\n\x1a\n")):
			return "image/png"
		case bytes.HasPrefix(all, []byte("GIF8")):
			return "image/gif"
		case bytes.HasPrefix(all[8:], []byte("WEBP")):
			return "image/webp"
		}
	}
	return ""
}

func decodeImage(all []byte, ct string) (image.Image, error) {
	if ct == "image/webp" {
		return webp.Decode(bytes.NewReader(all))
	}
	return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
}

func downscaleIfNeeded(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}
	nw, nh := w, h
	if w >= h {
		nw = maxSide
		nh = h * maxSide / w
	} else {
		nh = maxSide
		nw = w * maxSide / h
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func encodeToWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadImage: validasi penuh lalu simpan sebagai WebP di scope desa.
// slot contoh: "logo", "gallery", "article".
func (s *OSSService) UploadImage(ctx context.Context, villageID uuid.UUID, slot string, fh *multipart.FileHeader) (string, error) {
	_, img, err := ValidateImageUpload(fh)
	if err != nil {
		return "", err
	}

	out, err := encodeToWebP(downscaleIfNeeded(img, maxWebPSide))
	if err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	name := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename)) + ".webp"
	key := s.buildObjectKey(villageID, slot, name)
	if err := s.UploadStream(ctx, key, bytes.NewReader(out), "image/webp"); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	return s.PublicURL(key), nil
}
