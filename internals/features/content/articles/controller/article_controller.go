// file: internals/features/content/articles/controller/article_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/content/articles/dto"
	"smartvillage_backend/internals/features/content/articles/model"
	helper "smartvillage_backend/internals/helpers"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

type ArticleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	OSS      *helperOSS.OSSService
}

func NewArticleController(db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) *ArticleController {
	return &ArticleController{DB: db, Validate: v, OSS: oss}
}

func scopeOf(m *model.ArticleModel) policy.Scope {
	return policy.Scope{
		VillageID:   &m.ArticleVillageID,
		CommunityID: m.ArticleCommunityID,
		SmeID:       m.ArticleSmeID,
	}
}

func (ac *ArticleController) find(c *fiber.Ctx) (*model.ArticleModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.ArticleModel
	if err := ac.DB.First(&m, "article_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	return &m, nil
}

// GET /articles — semua role admin, scope mengikuti role
func (ac *ArticleController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.ArticleViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ac.DB.Model(&model.ArticleModel{})
	switch {
	case actor.IsSuperAdmin():
	case actor.IsVillageAdmin():
		q = q.Where("article_village_id = ?", actor.VillageID)
	case actor.IsCommunityAdmin():
		q = q.Where("article_community_id = ?", actor.CommunityID)
	default:
		q = q.Where("article_sme_id = ?", actor.SmeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}
	var rows []model.ArticleModel
	if err := q.Order("article_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /articles/:id
func (ac *ArticleController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := ac.find(c)
	if err != nil {
		return err
	}
	if !policy.ArticleView(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// POST /articles — semua role admin (scope dipaksa di DTO)
func (ac *ArticleController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.ArticleCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.ArticleVillageID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope desa wajib diisi")
	}

	if m.ArticleSlug == "" {
		slug, err := helper.GenerateUniqueSlug(ac.DB, helper.SlugOptions{
			Table:            "articles",
			SlugColumn:       "article_slug",
			SoftDeleteColumn: "article_deleted_at",
			Filters:          map[string]any{"article_village_id": m.ArticleVillageID},
			DefaultBase:      "artikel",
		}, m.ArticleTitle)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.ArticleSlug = slug
	} else {
		m.ArticleSlug = helper.GenerateSlug(m.ArticleSlug)
	}

	if err := ac.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan artikel")
	}
	return helper.JsonCreated(c, "Artikel berhasil dibuat", dto.FromModel(&m))
}

// PATCH /articles/:id
func (ac *ArticleController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := ac.find(c)
	if err != nil {
		return err
	}
	if !policy.ArticleUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.ArticleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if ac.OSS != nil {
		if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
			url, upErr := ac.OSS.UploadImage(c.UserContext(), m.ArticleVillageID, "articles", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadGateway, upErr.Error())
			}
			m.ArticleImageURL = &url
		}
	}

	if err := ac.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan artikel")
	}
	return helper.JsonUpdated(c, "Artikel berhasil diperbarui", dto.FromModel(m))
}

// DELETE /articles/:id — sme_admin TIDAK boleh menghapus
func (ac *ArticleController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := ac.find(c)
	if err != nil {
		return err
	}
	if !policy.ArticleDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := ac.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}
	return helper.JsonDeleted(c, "Artikel berhasil dihapus", fiber.Map{"article_id": m.ArticleID})
}

// --- Endpoint publik ---

// GET /public/articles — artikel published milik desa di host
func (ac *ArticleController) PublicList(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}

	p := helper.ResolvePaging(c, 10, 50)
	q := ac.DB.Model(&model.ArticleModel{}).
		Where("article_village_id = ? AND article_is_published = TRUE", v.VillageID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}
	var rows []model.ArticleModel
	if err := q.Order("article_published_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /public/articles/:slug
func (ac *ArticleController) PublicDetail(c *fiber.Ctx) error {
	v := tenant.VillageFromLocals(c)
	if v == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
	}
	var m model.ArticleModel
	err := ac.DB.First(&m,
		"article_village_id = ? AND article_slug = ? AND article_is_published = TRUE",
		v.VillageID, strings.TrimSpace(c.Params("slug"))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	return helper.JsonOK(c, "", dto.FromModel(&m))
}
