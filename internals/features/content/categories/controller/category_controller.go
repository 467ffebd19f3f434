// file: internals/features/content/categories/controller/category_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/content/categories/dto"
	"smartvillage_backend/internals/features/content/categories/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/policy"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB, v *validator.Validate) *CategoryController {
	return &CategoryController{DB: db, Validate: v}
}

func scopeOf(m *model.CategoryModel) policy.Scope {
	return policy.Scope{VillageID: &m.CategoryVillageID}
}

func (cc *CategoryController) find(c *fiber.Ctx) (*model.CategoryModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.CategoryModel
	if err := cc.DB.First(&m, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return &m, nil
}

// GET /categories?type=place
func (cc *CategoryController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.CategoryViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	q := cc.DB.Model(&model.CategoryModel{})
	if !actor.IsSuperAdmin() {
		q = q.Where("category_village_id = ?", actor.VillageID)
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("category_type = ?", t)
	}

	var rows []model.CategoryModel
	if err := q.Order("category_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "", dto.FromModels(rows))
}

// POST /categories — super_admin & village_admin saja
func (cc *CategoryController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.CategoryCreate(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if m.CategoryVillageID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope desa wajib diisi")
	}

	slug, err := helper.GenerateUniqueSlug(cc.DB, helper.SlugOptions{
		Table:            "categories",
		SlugColumn:       "category_slug",
		SoftDeleteColumn: "category_deleted_at",
		Filters:          map[string]any{"category_village_id": m.CategoryVillageID},
		DefaultBase:      "kategori",
	}, m.CategoryName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.CategorySlug = slug

	if err := cc.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", dto.FromModel(&m))
}

// PATCH /categories/:id — community_admin se-desa juga boleh (grant lebar)
func (cc *CategoryController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := cc.find(c)
	if err != nil {
		return err
	}
	if !policy.CategoryUpdate(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if err := cc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", dto.FromModel(m))
}

// DELETE /categories/:id — minimal village_admin
func (cc *CategoryController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := cc.find(c)
	if err != nil {
		return err
	}
	if !policy.CategoryDelete(actor, scopeOf(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := cc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", fiber.Map{"category_id": m.CategoryID})
}
