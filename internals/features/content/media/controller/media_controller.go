// file: internals/features/content/media/controller/media_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/content/media/dto"
	"smartvillage_backend/internals/features/content/media/model"
	helper "smartvillage_backend/internals/helpers"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/policy"
)

var allowedOwnerTypes = map[string]bool{
	"article": true, "place": true, "offer": true, "sme": true,
}

type MediaController struct {
	DB  *gorm.DB
	OSS *helperOSS.OSSService
}

func NewMediaController(db *gorm.DB, oss *helperOSS.OSSService) *MediaController {
	return &MediaController{DB: db, OSS: oss}
}

func mediaScope(m *model.MediaModel) policy.Scope {
	return policy.Scope{VillageID: &m.MediaVillageID}
}

func imageScope(m *model.ImageModel) policy.Scope {
	return policy.Scope{VillageID: &m.ImageVillageID}
}

// Scope village untuk upload: super_admin boleh kirim village_id form,
// role lain dipaksa ke desanya.
func resolveVillage(actor policy.Actor, c *fiber.Ctx) (uuid.UUID, error) {
	if actor.IsSuperAdmin() {
		id, err := uuid.Parse(strings.TrimSpace(c.FormValue("village_id")))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "village_id wajib diisi")
		}
		return id, nil
	}
	if actor.VillageID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	return *actor.VillageID, nil
}

func ownerFromForm(c *fiber.Ctx) (string, uuid.UUID, error) {
	ownerType := strings.TrimSpace(c.FormValue("owner_type"))
	if !allowedOwnerTypes[ownerType] {
		return "", uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "owner_type tidak valid")
	}
	ownerID, err := uuid.Parse(strings.TrimSpace(c.FormValue("owner_id")))
	if err != nil {
		return "", uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "owner_id tidak valid")
	}
	return ownerType, ownerID, nil
}

// GET /media?owner_type=article&owner_id=…
func (mc *MediaController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.MediaViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	q := mc.DB.Model(&model.MediaModel{})
	if !actor.IsSuperAdmin() {
		q = q.Where("media_village_id = ?", actor.VillageID)
	}
	if t := strings.TrimSpace(c.Query("owner_type")); t != "" {
		q = q.Where("media_owner_type = ?", t)
	}
	if id := strings.TrimSpace(c.Query("owner_id")); id != "" {
		q = q.Where("media_owner_id = ?", id)
	}

	var rows []model.MediaModel
	if err := q.Order("media_created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil media")
	}
	return helper.JsonOK(c, "", dto.MediaFromModels(rows))
}

// POST /media — multipart: file (wajib), thumbnail (opsional), owner_type, owner_id
func (mc *MediaController) Upload(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.MediaCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if mc.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage belum dikonfigurasi")
	}

	villageID, err := resolveVillage(actor, c)
	if err != nil {
		return err
	}
	ownerType, ownerID, err := ownerFromForm(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File wajib diunggah")
	}

	fileURL, mime, err := mc.OSS.UploadMedia(c.UserContext(), villageID, fh)
	if err != nil {
		return err
	}

	m := model.MediaModel{
		MediaVillageID: villageID,
		MediaOwnerType: ownerType,
		MediaOwnerID:   ownerID,
		MediaFileURL:   fileURL,
		MediaMimeType:  mime,
		MediaSizeBytes: fh.Size,
	}

	if th, terr := c.FormFile("thumbnail"); terr == nil && th != nil {
		thumbURL, upErr := mc.OSS.UploadMediaThumbnail(c.UserContext(), villageID, th)
		if upErr != nil {
			return upErr
		}
		m.MediaThumbnailURL = &thumbURL
	}

	if err := mc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan media")
	}
	return helper.JsonCreated(c, "Media berhasil diunggah", dto.MediaFromModel(&m))
}

// DELETE /media/:id — row dihapus dulu; file menyusul lewat hook AfterDelete
func (mc *MediaController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MediaModel
	if err := mc.DB.First(&m, "media_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Media tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil media")
	}
	if !policy.MediaDelete(actor, mediaScope(&m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	if err := mc.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus media")
	}
	return helper.JsonDeleted(c, "Media berhasil dihapus", fiber.Map{"media_id": m.MediaID})
}

// GET /images?owner_type=place&owner_id=…
func (mc *MediaController) ListImages(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.MediaViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	q := mc.DB.Model(&model.ImageModel{})
	if !actor.IsSuperAdmin() {
		q = q.Where("image_village_id = ?", actor.VillageID)
	}
	if t := strings.TrimSpace(c.Query("owner_type")); t != "" {
		q = q.Where("image_owner_type = ?", t)
	}
	if id := strings.TrimSpace(c.Query("owner_id")); id != "" {
		q = q.Where("image_owner_id = ?", id)
	}

	var rows []model.ImageModel
	if err := q.Order("image_created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil gambar")
	}
	return helper.JsonOK(c, "", dto.ImageFromModels(rows))
}

// POST /images — multipart: file, owner_type, owner_id, caption (opsional)
func (mc *MediaController) UploadImage(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.MediaCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if mc.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage belum dikonfigurasi")
	}

	villageID, err := resolveVillage(actor, c)
	if err != nil {
		return err
	}
	ownerType, ownerID, err := ownerFromForm(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File wajib diunggah")
	}

	url, err := mc.OSS.UploadImage(c.UserContext(), villageID, "images/"+ownerType, fh)
	if err != nil {
		return err
	}

	m := model.ImageModel{
		ImageVillageID: villageID,
		ImageOwnerType: ownerType,
		ImageOwnerID:   ownerID,
		ImageFileURL:   url,
	}
	if caption := strings.TrimSpace(c.FormValue("caption")); caption != "" {
		m.ImageCaption = &caption
	}

	if err := mc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}
	return helper.JsonCreated(c, "Gambar berhasil diunggah", dto.ImageFromModel(&m))
}

// DELETE /images/:id
func (mc *MediaController) DeleteImage(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ImageModel
	if err := mc.DB.First(&m, "image_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil gambar")
	}
	if !policy.MediaDelete(actor, imageScope(&m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	if err := mc.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus gambar")
	}
	return helper.JsonDeleted(c, "Gambar berhasil dihapus", fiber.Map{"image_id": m.ImageID})
}
