// file: internals/features/search/route/search_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/search/controller"
)

// SearchPublicRoutes: pencarian terbuka, tanpa login.
func SearchPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSearchController(db)
	r.Get("/search", ctrl.Search)
}
