// file: internals/features/links/route/link_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/links/controller"
	"smartvillage_backend/internals/helpers/cache"
	"smartvillage_backend/internals/middlewares/auth"
)

// LinkAdminRoutes mendaftarkan endpoint /links (butuh login).
func LinkAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c *cache.VillageCache) {
	ctrl := controller.NewLinkController(db, v, c)

	links := r.Group("/links",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola tautan"), constants.CommunityAdminAndAbove),
	)
	links.Get("/", ctrl.List)
	links.Post("/", ctrl.Create)
	links.Patch("/:id", ctrl.Patch)
	links.Delete("/:id", ctrl.Delete)
	links.Get("/:id/stats", ctrl.Stats)
}

// LinkRedirectRoutes: GET /l/:slug di subdomain desa, tanpa login.
// Dipasang di group berprefix /l.
func LinkRedirectRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c *cache.VillageCache) {
	ctrl := controller.NewLinkController(db, v, c)
	r.Get("/:slug", ctrl.Redirect)
}
