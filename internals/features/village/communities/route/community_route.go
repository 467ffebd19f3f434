// file: internals/features/village/communities/route/community_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	communityctl "smartvillage_backend/internals/features/village/communities/controller"
)

func CommunityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := communityctl.NewCommunityController(db, validator.New())

	communities := admin.Group("/communities")
	communities.Get("/", ctrl.List)
	communities.Get("/:id", ctrl.Detail)
	communities.Post("/", ctrl.Create)
	communities.Patch("/:id", ctrl.Patch)
	communities.Delete("/:id", ctrl.Delete)
}

// CommunityPublicRoutes: daftar komunitas aktif per desa, tanpa login.
func CommunityPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := communityctl.NewCommunityController(db, validator.New())
	public.Get("/communities", ctrl.PublicList)
}
