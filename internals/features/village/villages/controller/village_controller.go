// file: internals/features/village/villages/controller/village_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/village/villages/dto"
	"smartvillage_backend/internals/features/village/villages/model"
	helper "smartvillage_backend/internals/helpers"
	cachehelper "smartvillage_backend/internals/helpers/cache"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/policy"
)

type VillageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *cachehelper.VillageCache // boleh nil
	OSS      *helperOSS.OSSService     // boleh nil
}

func NewVillageController(db *gorm.DB, v *validator.Validate, c *cachehelper.VillageCache, oss *helperOSS.OSSService) *VillageController {
	return &VillageController{DB: db, Validate: v, Cache: c, OSS: oss}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return id, nil
}

// GET /villages — hanya super/village admin (viewAny);
// village_admin otomatis cuma lihat desanya sendiri.
func (vc *VillageController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.VillageViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := vc.DB.Model(&model.VillageModel{})
	if !actor.IsSuperAdmin() {
		q = q.Where("village_id = ?", actor.VillageID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("village_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung desa")
	}

	var rows []model.VillageModel
	if err := q.Order("village_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil desa")
	}

	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /villages/:id
func (vc *VillageController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !policy.VillageView(actor, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var v model.VillageModel
	if err := vc.DB.First(&v, "village_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil desa")
	}
	return helper.JsonOK(c, "", dto.FromModel(&v))
}

// POST /villages — super admin only
func (vc *VillageController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.VillageCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin yang boleh membuat desa")
	}

	var req dto.VillageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := vc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if m.VillageSlug == "" {
		slug, err := helper.GenerateUniqueSlug(vc.DB, helper.SlugOptions{
			Table:            "villages",
			SlugColumn:       "village_slug",
			SoftDeleteColumn: "village_deleted_at",
			DefaultBase:      "desa",
		}, m.VillageName)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.VillageSlug = slug
	} else {
		m.VillageSlug = helper.GenerateSlug(m.VillageSlug)
	}

	if err := vc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan desa")
	}
	return helper.JsonCreated(c, "Desa berhasil dibuat", dto.FromModel(&m))
}

// PATCH /villages/:id
// Mutasi slug/domain/status WAJIB invalidasi cache pakai nilai LAMA.
func (vc *VillageController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !policy.VillageUpdate(actor, id) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak: bukan desa Anda")
	}

	var m model.VillageModel
	if err := vc.DB.First(&m, "village_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil desa")
	}

	oldSlug := m.VillageSlug
	oldDomain := ""
	if m.VillageDomain != nil {
		oldDomain = *m.VillageDomain
	}

	var req dto.VillageUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := vc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&m)
	if req.VillageSlug != nil {
		m.VillageSlug = helper.GenerateSlug(m.VillageSlug)
	}

	// upload logo opsional (multipart)
	if vc.OSS != nil {
		if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
			url, upErr := vc.OSS.UploadImage(c.UserContext(), m.VillageID, "logo", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadGateway, upErr.Error())
			}
			m.VillageImageURL = &url
		}
	}

	if err := vc.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan desa")
	}

	if vc.Cache != nil {
		vc.Cache.ClearVillage(c.UserContext(), oldSlug, oldDomain, m.VillageID)
	}
	return helper.JsonUpdated(c, "Desa berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /villages/:id — soft delete, super admin only
func (vc *VillageController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.VillageDelete(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin yang boleh menghapus desa")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.VillageModel
	if err := vc.DB.First(&m, "village_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil desa")
	}
	if err := vc.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus desa")
	}

	if vc.Cache != nil {
		oldDomain := ""
		if m.VillageDomain != nil {
			oldDomain = *m.VillageDomain
		}
		vc.Cache.ClearVillage(c.UserContext(), m.VillageSlug, oldDomain, m.VillageID)
	}
	return helper.JsonDeleted(c, "Desa berhasil dihapus", fiber.Map{"village_id": m.VillageID})
}

// GET /profile — profil desa aktif (public, konteks subdomain)
func (vc *VillageController) PublicProfile(c *fiber.Ctx) error {
	v, _ := c.Locals("village").(*model.VillageModel)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}
	return helper.JsonOK(c, "", dto.FromModel(v))
}
