// file: internals/features/content/offers/controller/offer_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/content/offers/dto"
	"smartvillage_backend/internals/features/content/offers/model"
	smeModel "smartvillage_backend/internals/features/village/smes/model"
	helper "smartvillage_backend/internals/helpers"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

type OfferController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *helperOSS.OSSService
}

func NewOfferController(db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) *OfferController {
	return &OfferController{DB: db, Validate: v, OSS: oss}
}

func scopeOf(m *model.OfferModel) policy.Scope {
	return policy.Scope{
		VillageID:   &m.OfferVillageID,
		CommunityID: &m.OfferCommunityID,
		SmeID:       &m.OfferSmeID,
	}
}

func (oc *OfferController) find(c *fiber.Ctx) (*model.OfferModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.OfferModel
	if err := oc.DB.First(&m, "offer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Penawaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penawaran")
	}
	return &m, nil
}

// GET /offers
func (oc *OfferController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.OfferViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := oc.DB.Model(&model.OfferModel{})
	switch {
	case actor.IsSuperAdmin():
	case actor.IsVillageAdmin():
		q = q.Where("offer_village_id = ?", actor.VillageID)
	case actor.IsCommunityAdmin():
		q = q.Where("offer_community_id = ?", actor.CommunityID)
	default:
		q = q.Where("offer_sme_id = ?", actor.SmeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penawaran")
	}
	var rows []model.OfferModel
	if err := q.Order("offer_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penawaran")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /offers/:id
func (oc *OfferController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := oc.find(c)
	if err != nil {
		return err
	}
	if !policy.OfferView(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// POST /offers — rantai scope dilengkapi dari baris sme, lalu dicek policy
func (oc *OfferController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.OfferCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := oc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.OfferSmeID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope UMKM wajib diisi")
	}

	// Lengkapi rantai dari baris sme (sekaligus validasi sme-nya ada).
	var sme smeModel.SmeModel
	if err := oc.DB.First(&sme, "sme_id = ?", m.OfferSmeID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "UMKM tidak ditemukan")
	}
	m.OfferCommunityID = sme.SmeCommunityID
	m.OfferVillageID = sme.SmeVillageID

	// Aktor non-super hanya boleh membuat penawaran di dalam scope-nya.
	if !policy.OfferView(actor, scopeOf(&m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	slug, err := helper.GenerateUniqueSlug(oc.DB, helper.SlugOptions{
		Table:            "offers",
		SlugColumn:       "offer_slug",
		SoftDeleteColumn: "offer_deleted_at",
		Filters:          map[string]any{"offer_sme_id": m.OfferSmeID},
		DefaultBase:      "penawaran",
	}, m.OfferTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.OfferSlug = slug

	if err := oc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penawaran")
	}
	return helper.JsonCreated(c, "Penawaran berhasil dibuat", dto.FromModel(&m))
}

// PATCH /offers/:id
func (oc *OfferController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := oc.find(c)
	if err != nil {
		return err
	}
	if !policy.OfferUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.OfferUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := oc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if oc.OSS != nil {
		if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
			url, upErr := oc.OSS.UploadImage(c.UserContext(), m.OfferVillageID, "offers", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadGateway, upErr.Error())
			}
			m.OfferImageURL = &url
		}
	}

	if err := oc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penawaran")
	}
	return helper.JsonUpdated(c, "Penawaran berhasil diperbarui", dto.FromModel(m))
}

// DELETE /offers/:id — sme_admin boleh menghapus miliknya sendiri
func (oc *OfferController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := oc.find(c)
	if err != nil {
		return err
	}
	if !policy.OfferDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := oc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penawaran")
	}
	return helper.JsonDeleted(c, "Penawaran berhasil dihapus", fiber.Map{"offer_id": m.OfferID})
}

// GET /public/offers — penawaran aktif milik desa di host
func (oc *OfferController) PublicList(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := oc.DB.Model(&model.OfferModel{}).
		Where("offer_village_id = ? AND offer_is_active = TRUE", v.VillageID)
	if smeID := strings.TrimSpace(c.Query("sme_id")); smeID != "" {
		q = q.Where("offer_sme_id = ?", smeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penawaran")
	}
	var rows []model.OfferModel
	if err := q.Order("offer_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penawaran")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}
