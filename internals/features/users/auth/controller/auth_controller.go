// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/users/auth/dto"
	blacklistModel "smartvillage_backend/internals/features/users/auth/model"
	"smartvillage_backend/internals/features/users/auth/service"
	userDTO "smartvillage_backend/internals/features/users/user/dto"
	userModel "smartvillage_backend/internals/features/users/user/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// Pesan sengaja sama untuk email tak terdaftar & password salah.
const invalidCredentialMsg = "Email atau password salah."

// POST /auth/login
// Admisi domain dicek DI SINI juga: login sukses kredensial tapi salah
// domain tetap ditolak 422 di field email, tanpa token keluar.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var u userModel.UserModel
	if err := ac.DB.First(&u, "user_email = ? AND user_is_active = TRUE", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonValidationError(c, map[string][]string{
				"email": {invalidCredentialMsg},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"email": {invalidCredentialMsg},
		})
	}

	actor := policy.Actor{
		UserID:      u.UserID,
		Role:        u.UserRole,
		VillageID:   u.UserVillageID,
		CommunityID: u.UserCommunityID,
		SmeID:       u.UserSmeID,
	}
	var villageID *uuid.UUID
	if v := tenant.VillageFromLocals(c); v != nil {
		villageID = &v.VillageID
	}
	if denial := tenant.GuardAccess(actor, villageID, tenant.IsMainDomain(c)); denial != nil {
		log.Printf("[AUTH] login ditolak domain guard user=%s role=%s", u.UserID, u.UserRole)
		return helper.JsonValidationError(c, map[string][]string{
			"email": {denial.Error()},
		})
	}

	access, err := service.GenerateAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := service.GenerateRefreshToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  time.Now().Add(service.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.FromModel(&u),
	})
}

// POST /auth/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims, err := service.ParseRefreshToken(strings.TrimSpace(req.RefreshToken))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	userID, _ := claims["user_id"].(string)

	var u userModel.UserModel
	if err := ac.DB.First(&u, "user_id = ? AND user_is_active = TRUE", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	access, err := service.GenerateAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.JsonOK(c, "", fiber.Map{"access_token": access})
}

// POST /auth/logout — token aktif masuk blacklist sampai kedaluwarsa.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw != "" {
		entry := blacklistModel.TokenBlacklist{
			TokenBlacklistToken:     raw,
			TokenBlacklistExpiresAt: time.Now().Add(service.AccessTokenTTL),
		}
		if err := ac.DB.Create(&entry).Error; err != nil {
			log.Printf("[AUTH] gagal blacklist token logout: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}
