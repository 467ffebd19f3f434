// file: internals/features/links/controller/link_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/links/dto"
	"smartvillage_backend/internals/features/links/model"
	villageModel "smartvillage_backend/internals/features/village/villages/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/helpers/cache"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

type LinkController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *cache.VillageCache
}

func NewLinkController(db *gorm.DB, v *validator.Validate, c *cache.VillageCache) *LinkController {
	return &LinkController{DB: db, Validate: v, Cache: c}
}

func scopeOf(m *model.ExternalLinkModel) policy.Scope {
	return policy.Scope{VillageID: &m.ExternalLinkVillageID}
}

// Entri ringkas yang dimuat ke cache village_links:{id} — cukup untuk
// redirect tanpa menyentuh DB.
type cachedLink struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	TargetURL string    `json:"target_url"`
}

func (lc *LinkController) find(c *fiber.Ctx) (*model.ExternalLinkModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.ExternalLinkModel
	if err := lc.DB.First(&m, "external_link_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tautan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tautan")
	}
	return &m, nil
}

func (lc *LinkController) villageSlug(villageID uuid.UUID) string {
	var v villageModel.VillageModel
	if err := lc.DB.Select("village_slug").First(&v, "village_id = ?", villageID).Error; err != nil {
		return ""
	}
	return v.VillageSlug
}

func (lc *LinkController) invalidateLinks(c *fiber.Ctx, villageID uuid.UUID) {
	if lc.Cache == nil {
		return
	}
	// Slug/domain kosong → hanya key village_links yang dibuang.
	lc.Cache.ClearVillage(c.UserContext(), "", "", villageID)
}

// GET /links
func (lc *LinkController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.ExternalLinkViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	q := lc.DB.Model(&model.ExternalLinkModel{})
	if !actor.IsSuperAdmin() {
		q = q.Where("external_link_village_id = ?", actor.VillageID)
	}

	var rows []model.ExternalLinkModel
	if err := q.Order("external_link_created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tautan")
	}

	slug := ""
	if len(rows) > 0 && !actor.IsSuperAdmin() {
		slug = lc.villageSlug(rows[0].ExternalLinkVillageID)
	}
	return helper.JsonOK(c, "", dto.FromModels(rows, slug))
}

// POST /links
func (lc *LinkController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.ExternalLinkCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := lc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.ExternalLinkVillageID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope desa wajib diisi")
	}

	if m.ExternalLinkSlug == "" {
		slug, err := helper.GenerateUniqueSlug(lc.DB, helper.SlugOptions{
			Table:            "external_links",
			SlugColumn:       "external_link_slug",
			SoftDeleteColumn: "external_link_deleted_at",
			Filters:          map[string]any{"external_link_village_id": m.ExternalLinkVillageID},
			MaxLen:           80,
			DefaultBase:      "tautan",
		}, m.ExternalLinkLabel)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.ExternalLinkSlug = slug
	} else {
		m.ExternalLinkSlug = helper.GenerateSlug(m.ExternalLinkSlug)
	}

	if err := lc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tautan")
	}
	lc.invalidateLinks(c, m.ExternalLinkVillageID)

	return helper.JsonCreated(c, "Tautan berhasil dibuat",
		dto.FromModel(&m, lc.villageSlug(m.ExternalLinkVillageID)))
}

// PATCH /links/:id
func (lc *LinkController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := lc.find(c)
	if err != nil {
		return err
	}
	if !policy.ExternalLinkUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.LinkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := lc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if err := lc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tautan")
	}
	lc.invalidateLinks(c, m.ExternalLinkVillageID)

	return helper.JsonUpdated(c, "Tautan berhasil diperbarui",
		dto.FromModel(m, lc.villageSlug(m.ExternalLinkVillageID)))
}

// DELETE /links/:id
func (lc *LinkController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := lc.find(c)
	if err != nil {
		return err
	}
	if !policy.ExternalLinkDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := lc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tautan")
	}
	lc.invalidateLinks(c, m.ExternalLinkVillageID)
	return helper.JsonDeleted(c, "Tautan berhasil dihapus", fiber.Map{"external_link_id": m.ExternalLinkID})
}

// GET /links/:id/stats
func (lc *LinkController) Stats(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := lc.find(c)
	if err != nil {
		return err
	}
	if !policy.ExternalLinkView(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"external_link_id":          m.ExternalLinkID,
		"external_link_slug":        m.ExternalLinkSlug,
		"external_link_click_count": m.ExternalLinkClickCount,
		"external_link_is_active":   m.ExternalLinkIsActive,
	})
}

// Redirect menangani GET /l/:slug di subdomain desa: 302 ke target.
// Lookup lewat cache village_links:{id} dulu; increment klik best-effort.
func (lc *LinkController) Redirect(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Tautan tidak ditemukan")
	}

	var (
		linkID uuid.UUID
		target string
	)

	if lc.Cache != nil {
		var links []cachedLink
		if hit, err := lc.Cache.GetLinks(c.UserContext(), v.VillageID, &links); err == nil && hit {
			for _, l := range links {
				if l.Slug == slug {
					linkID, target = l.ID, l.TargetURL
					break
				}
			}
		}
	}

	if target == "" {
		var m model.ExternalLinkModel
		err := lc.DB.First(&m,
			"external_link_village_id = ? AND external_link_slug = ? AND external_link_is_active = TRUE",
			v.VillageID, slug).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Tautan tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tautan")
		}
		linkID, target = m.ExternalLinkID, m.ExternalLinkTargetURL

		lc.refreshLinksCache(c, v.VillageID)
	}

	// Klik dicatat best-effort; redirect jalan terus walau update gagal.
	if err := lc.DB.Model(&model.ExternalLinkModel{}).
		Where("external_link_id = ?", linkID).
		UpdateColumn("external_link_click_count", gorm.Expr("external_link_click_count + 1")).Error; err != nil {
		log.Printf("[LINKS] klik %s gagal dicatat: %v", linkID, err)
	}

	return c.Redirect(target, fiber.StatusFound)
}

func (lc *LinkController) refreshLinksCache(c *fiber.Ctx, villageID uuid.UUID) {
	if lc.Cache == nil {
		return
	}
	var rows []model.ExternalLinkModel
	if err := lc.DB.
		Where("external_link_village_id = ? AND external_link_is_active = TRUE", villageID).
		Find(&rows).Error; err != nil {
		return
	}
	links := make([]cachedLink, 0, len(rows))
	for _, r := range rows {
		links = append(links, cachedLink{
			ID:        r.ExternalLinkID,
			Slug:      r.ExternalLinkSlug,
			TargetURL: r.ExternalLinkTargetURL,
		})
	}
	if err := lc.Cache.SetLinks(c.UserContext(), villageID, links); err != nil {
		log.Printf("[LINKS] refresh cache %s err: %v", villageID, err)
	}
}
