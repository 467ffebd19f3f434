// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/users/user/dto"
	"smartvillage_backend/internals/features/users/user/model"
	communityModel "smartvillage_backend/internals/features/village/communities/model"
	smeModel "smartvillage_backend/internals/features/village/smes/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/policy"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func userScope(m *model.UserModel) policy.Scope {
	return policy.Scope{VillageID: m.UserVillageID, CommunityID: m.UserCommunityID, SmeID: m.UserSmeID}
}

// Rantai scope harus nyambung ke atas: sme → community → village.
// ID kiriman klien diverifikasi ke baris induknya; village yang kosong
// diturunkan dari induk, yang menunjuk desa lain ditolak.
func (uc *UserController) checkScopeChain(m *model.UserModel) error {
	if m.UserSmeID != nil {
		var sme smeModel.SmeModel
		if err := uc.DB.First(&sme, "sme_id = ?", *m.UserSmeID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "UMKM tidak ditemukan")
		}
		if m.UserCommunityID != nil && *m.UserCommunityID != sme.SmeCommunityID {
			return fiber.NewError(fiber.StatusBadRequest, "UMKM bukan milik komunitas tersebut")
		}
		if m.UserVillageID != nil && *m.UserVillageID != sme.SmeVillageID {
			return fiber.NewError(fiber.StatusBadRequest, "UMKM bukan milik desa tersebut")
		}
		m.UserCommunityID = &sme.SmeCommunityID
		m.UserVillageID = &sme.SmeVillageID
		return nil
	}
	if m.UserCommunityID != nil {
		var comm communityModel.CommunityModel
		if err := uc.DB.First(&comm, "community_id = ?", *m.UserCommunityID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Komunitas tidak ditemukan")
		}
		if m.UserVillageID != nil && *m.UserVillageID != comm.CommunityVillageID {
			return fiber.NewError(fiber.StatusBadRequest, "Komunitas bukan milik desa tersebut")
		}
		m.UserVillageID = &comm.CommunityVillageID
	}
	return nil
}

func (uc *UserController) find(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.UserModel
	if err := uc.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return &m, nil
}

// GET /users
func (uc *UserController) List(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	if !policy.UserViewAny(actor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := uc.DB.Model(&model.UserModel{})
	if actor.IsVillageAdmin() {
		q = q.Where("user_village_id = ? AND user_role IN ?",
			actor.VillageID, []string{"community_admin", "sme_admin"})
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}
	var rows []model.UserModel
	if err := q.Order("user_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(p, total, len(rows)))
}

// GET /users/:id
func (uc *UserController) Detail(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := uc.find(c)
	if err != nil {
		return err
	}
	if !policy.UserView(actor, m.UserRole, userScope(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// POST /users
func (uc *UserController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(actor)
	if !policy.UserManageRole(actor, m.UserRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := uc.checkScopeChain(&m); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	m.UserPassword = string(hash)

	if err := uc.DB.Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(&m))
}

// PATCH /users/:id — ganti role otomatis menormalkan ulang scope
func (uc *UserController) Patch(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := uc.find(c)
	if err != nil {
		return err
	}
	if !policy.UserUpdate(actor, m.UserRole, userScope(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Role tujuan juga harus boleh dikelola aktor.
	if req.UserRole != nil && !policy.UserManageRole(actor, strings.TrimSpace(*req.UserRole)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	req.Apply(m)
	if err := uc.checkScopeChain(m); err != nil {
		return err
	}

	if req.UserPassword != nil && *req.UserPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		m.UserPassword = string(hash)
	}

	if err := uc.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(m))
}

// DELETE /users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	m, err := uc.find(c)
	if err != nil {
		return err
	}
	if m.UserID == actor.UserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}
	if !policy.UserDelete(actor, m.UserRole, userScope(m)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	if err := uc.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": m.UserID})
}

// GET /me
func (uc *UserController) Me(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return err
	}
	var m model.UserModel
	if err := uc.DB.First(&m, "user_id = ?", actor.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "", dto.FromModel(&m))
}
