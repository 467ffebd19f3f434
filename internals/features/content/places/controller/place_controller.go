// file: internals/features/content/places/controller/place_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/content/places/dto"
	"smartvillage_backend/internals/features/content/places/model"
	helper "smartvillage_backend/internals/helpers"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

type PlaceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *helperOSS.OSSService
}

func NewPlaceController(db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) *PlaceController {
	return &PlaceController{DB: db, Validate: v, OSS: oss}
}

func scopeOf(m *model.PlaceModel) policy.Scope {
	return policy.Scope{VillageID: &m.PlaceVillageID}
}

func (pc *PlaceController) find(c *fiber.Ctx) (*model.PlaceModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.PlaceModel
	if err := pc.DB.First(&m, "place_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tempat tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tempat")
	}
	return &m, nil
}

// GET /places — admin listing, sme_admin tidak ikut
func (pc *PlaceController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.PlaceViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := pc.DB.Model(&model.PlaceModel{})
	if !actor.IsSuperAdmin() {
		q = q.Where("place_village_id = ?", actor.VillageID)
	}
	if cat := strings.TrimSpace(c.Query("category_id")); cat != "" {
		q = q.Where("place_category_id = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tempat")
	}
	var rows []model.PlaceModel
	if err := q.Order("place_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tempat")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /places/:id
func (pc *PlaceController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := pc.find(c)
	if err != nil {
		return err
	}
	if !policy.PlaceView(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// POST /places — super_admin & village_admin
func (pc *PlaceController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.PlaceCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.PlaceVillageID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope desa wajib diisi")
	}

	if m.PlaceSlug == "" {
		slug, err := helper.GenerateUniqueSlug(pc.DB, helper.SlugOptions{
			Table:            "places",
			SlugColumn:       "place_slug",
			SoftDeleteColumn: "place_deleted_at",
			Filters:          map[string]any{"place_village_id": m.PlaceVillageID},
			DefaultBase:      "tempat",
		}, m.PlaceName)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.PlaceSlug = slug
	} else {
		m.PlaceSlug = helper.GenerateSlug(m.PlaceSlug)
	}

	if err := pc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tempat")
	}
	return helper.JsonCreated(c, "Tempat berhasil dibuat", dto.FromModel(&m))
}

// PATCH /places/:id
func (pc *PlaceController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := pc.find(c)
	if err != nil {
		return err
	}
	if !policy.PlaceUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.PlaceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if pc.OSS != nil {
		if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
			url, upErr := pc.OSS.UploadImage(c.UserContext(), m.PlaceVillageID, "places", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadGateway, upErr.Error())
			}
			m.PlaceImageURL = &url
		}
	}

	if err := pc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tempat")
	}
	return helper.JsonUpdated(c, "Tempat berhasil diperbarui", dto.FromModel(m))
}

// DELETE /places/:id — minimal village_admin
func (pc *PlaceController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := pc.find(c)
	if err != nil {
		return err
	}
	if !policy.PlaceDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := pc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tempat")
	}
	return helper.JsonDeleted(c, "Tempat berhasil dihapus", fiber.Map{"place_id": m.PlaceID})
}

// --- Endpoint publik (per desa, dari subdomain) ---

// GET /public/places — daftar tempat aktif milik desa di host
func (pc *PlaceController) PublicList(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := pc.DB.Model(&model.PlaceModel{}).
		Where("place_village_id = ? AND place_is_active = TRUE", v.VillageID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tempat")
	}
	var rows []model.PlaceModel
	if err := q.Order("place_name ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tempat")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /public/places/:slug
func (pc *PlaceController) PublicDetail(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}
	var m model.PlaceModel
	err := pc.DB.First(&m,
		"place_village_id = ? AND place_slug = ? AND place_is_active = TRUE",
		v.VillageID, strings.TrimSpace(c.Params("slug"))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tempat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tempat")
	}
	return helper.JsonOK(c, "", dto.FromModel(&m))
}
