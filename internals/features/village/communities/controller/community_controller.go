// file: internals/features/village/communities/controller/community_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/village/communities/dto"
	"smartvillage_backend/internals/features/village/communities/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

type CommunityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCommunityController(db *gorm.DB, v *validator.Validate) *CommunityController {
	return &CommunityController{DB: db, Validate: v}
}

func scopeOf(m *model.CommunityModel) policy.Scope {
	return policy.Scope{VillageID: &m.CommunityVillageID, CommunityID: &m.CommunityID}
}

func (cc *CommunityController) find(c *fiber.Ctx) (*model.CommunityModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.CommunityModel
	if err := cc.DB.First(&m, "community_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Komunitas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil komunitas")
	}
	return &m, nil
}

// GET /communities
func (cc *CommunityController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.CommunityViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := cc.DB.Model(&model.CommunityModel{})
	switch {
	case actor.IsSuperAdmin():
		// semua
	case actor.IsVillageAdmin():
		q = q.Where("community_village_id = ?", actor.VillageID)
	default:
		q = q.Where("community_id = ?", actor.CommunityID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung komunitas")
	}
	var rows []model.CommunityModel
	if err := q.Order("community_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komunitas")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /communities/:id
func (cc *CommunityController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := cc.find(c)
	if err != nil {
		return err
	}
	if !policy.CommunityView(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// POST /communities — super/village admin; village_id auto untuk non-super
func (cc *CommunityController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.CommunityCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin / admin desa yang boleh membuat komunitas")
	}

	var req dto.CommunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.CommunityVillageID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "community_village_id wajib diisi")
	}

	if m.CommunitySlug == "" {
		slug, err := helper.GenerateUniqueSlug(cc.DB, helper.SlugOptions{
			Table:            "communities",
			SlugColumn:       "community_slug",
			SoftDeleteColumn: "community_deleted_at",
			Filters:          map[string]any{"community_village_id": m.CommunityVillageID},
			DefaultBase:      "komunitas",
		}, m.CommunityName)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.CommunitySlug = slug
	} else {
		m.CommunitySlug = helper.GenerateSlug(m.CommunitySlug)
	}

	if err := cc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komunitas")
	}
	return helper.JsonCreated(c, "Komunitas berhasil dibuat", dto.FromModel(&m))
}

// PATCH /communities/:id
func (cc *CommunityController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := cc.find(c)
	if err != nil {
		return err
	}
	if !policy.CommunityUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.CommunityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if err := cc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komunitas")
	}
	return helper.JsonUpdated(c, "Komunitas berhasil diperbarui", dto.FromModel(m))
}

// DELETE /communities/:id — super/village admin
func (cc *CommunityController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := cc.find(c)
	if err != nil {
		return err
	}
	if !policy.CommunityDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := cc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komunitas")
	}
	return helper.JsonDeleted(c, "Komunitas berhasil dihapus", fiber.Map{"community_id": m.CommunityID})
}

// GET /public/communities — komunitas aktif milik desa di host
func (cc *CommunityController) PublicList(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := cc.DB.Model(&model.CommunityModel{}).
		Where("community_village_id = ? AND community_is_active = TRUE", v.VillageID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung komunitas")
	}
	var rows []model.CommunityModel
	if err := q.Order("community_name ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komunitas")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}
