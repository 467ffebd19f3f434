// file: internals/seeds/superadmin_seeder.go
package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartvillage_backend/internals/configs"
	"smartvillage_backend/internals/constants"
	userModel "smartvillage_backend/internals/features/users/user/model"
)

// SeedSuperAdmin memastikan minimal ada satu super_admin supaya instance
// baru bisa dipakai. Kredensial dari env; tanpa env → skip diam-diam.
func SeedSuperAdmin(db *gorm.DB) {
	email := configs.GetEnv("SUPERADMIN_EMAIL")
	password := configs.GetEnv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing userModel.UserModel
	err := db.First(&existing, "user_email = ?", email).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED] gagal cek super admin: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] gagal hash password super admin: %v", err)
		return
	}

	u := userModel.UserModel{
		UserName:     configs.GetEnv("SUPERADMIN_NAME", "Super Admin"),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleSuperAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("[SEED] gagal buat super admin: %v", err)
		return
	}
	log.Printf("✅ [SEED] super admin %s dibuat", email)
}
