// file: internals/features/village/villages/route/village_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	villagectl "smartvillage_backend/internals/features/village/villages/controller"
	cachehelper "smartvillage_backend/internals/helpers/cache"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/auth"
)

// VillageAdminRoutes: CRUD desa untuk grup admin.
func VillageAdminRoutes(admin fiber.Router, db *gorm.DB, cache *cachehelper.VillageCache, oss *helperOSS.OSSService) {
	ctrl := villagectl.NewVillageController(db, validator.New(), cache, oss)

	guard := auth.OnlyRolesSlice(
		constants.RoleErrorVillageAdmin("kelola desa"),
		constants.VillageAdminAndAbove,
	)

	villages := admin.Group("/villages")
	villages.Get("/", guard, ctrl.List)
	villages.Get("/:id", guard, ctrl.Detail)
	villages.Post("/", guard, ctrl.Create)
	villages.Patch("/:id", guard, ctrl.Patch)
	villages.Delete("/:id", guard, ctrl.Delete)
}

// VillagePublicRoutes: profil desa di konteks subdomain.
func VillagePublicRoutes(public fiber.Router, db *gorm.DB, cache *cachehelper.VillageCache) {
	ctrl := villagectl.NewVillageController(db, validator.New(), cache, nil)
	public.Get("/profile", ctrl.PublicProfile)
}
