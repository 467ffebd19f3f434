// file: internals/features/village/smes/controller/sme_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	communityModel "smartvillage_backend/internals/features/village/communities/model"
	"smartvillage_backend/internals/features/village/smes/dto"
	"smartvillage_backend/internals/features/village/smes/model"
	helper "smartvillage_backend/internals/helpers"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/policy"
)

type SmeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *helperOSS.OSSService
}

func NewSmeController(db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) *SmeController {
	return &SmeController{DB: db, Validate: v, OSS: oss}
}

func scopeOf(m *model.SmeModel) policy.Scope {
	return policy.Scope{VillageID: &m.SmeVillageID, CommunityID: &m.SmeCommunityID, SmeID: &m.SmeID}
}

func (sc *SmeController) find(c *fiber.Ctx) (*model.SmeModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.SmeModel
	if err := sc.DB.First(&m, "sme_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "UMKM tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil UMKM")
	}
	return &m, nil
}

// GET /smes — listing terbuka untuk SEMUA role admin, di-scope otomatis.
func (sc *SmeController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.SmeViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := sc.DB.Model(&model.SmeModel{})
	switch {
	case actor.IsSuperAdmin():
	case actor.IsVillageAdmin():
		q = q.Where("sme_village_id = ?", actor.VillageID)
	case actor.IsCommunityAdmin():
		q = q.Where("sme_community_id = ?", actor.CommunityID)
	default:
		q = q.Where("sme_id = ?", actor.SmeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung UMKM")
	}
	var rows []model.SmeModel
	if err := q.Order("sme_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil UMKM")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /smes/:id
func (sc *SmeController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := sc.find(c)
	if err != nil {
		return err
	}
	if !policy.SmeView(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// POST /smes
func (sc *SmeController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.SmeCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.SmeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.SmeCommunityID == uuid.Nil || m.SmeVillageID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope komunitas/desa wajib diisi")
	}

	// Rantai tenant harus nyambung: community yang ditunjuk memang milik
	// village di scope (invariant Offer→Sme→Community→Village).
	var comm communityModel.CommunityModel
	if err := sc.DB.First(&comm, "community_id = ?", m.SmeCommunityID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Komunitas tidak ditemukan")
	}
	if comm.CommunityVillageID != m.SmeVillageID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Komunitas bukan milik desa tersebut")
	}

	if m.SmeSlug == "" {
		slug, err := helper.GenerateUniqueSlug(sc.DB, helper.SlugOptions{
			Table:            "smes",
			SlugColumn:       "sme_slug",
			SoftDeleteColumn: "sme_deleted_at",
			Filters:          map[string]any{"sme_village_id": m.SmeVillageID},
			DefaultBase:      "umkm",
		}, m.SmeName)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.SmeSlug = slug
	} else {
		m.SmeSlug = helper.GenerateSlug(m.SmeSlug)
	}

	if err := sc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan UMKM")
	}
	return helper.JsonCreated(c, "UMKM berhasil dibuat", dto.FromModel(&m))
}

// PATCH /smes/:id — sme_admin boleh update miliknya sendiri
func (sc *SmeController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := sc.find(c)
	if err != nil {
		return err
	}
	if !policy.SmeUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.SmeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if sc.OSS != nil {
		if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
			url, upErr := sc.OSS.UploadImage(c.UserContext(), m.SmeVillageID, "smes", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadGateway, upErr.Error())
			}
			m.SmeImageURL = &url
		}
	}

	if err := sc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan UMKM")
	}
	return helper.JsonUpdated(c, "UMKM berhasil diperbarui", dto.FromModel(m))
}

// DELETE /smes/:id — sme_admin TIDAK boleh (minimal community admin)
func (sc *SmeController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := sc.find(c)
	if err != nil {
		return err
	}
	if !policy.SmeDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := sc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus UMKM")
	}
	return helper.JsonDeleted(c, "UMKM berhasil dihapus", fiber.Map{"sme_id": m.SmeID})
}
