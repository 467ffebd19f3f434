// file: internals/features/content/places/route/place_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/content/places/controller"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/auth"
)

// PlaceAdminRoutes mendaftarkan endpoint /places (butuh login).
func PlaceAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) {
	ctrl := controller.NewPlaceController(db, v, oss)

	places := r.Group("/places",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola tempat"), constants.CommunityAdminAndAbove),
	)
	places.Get("/", ctrl.List)
	places.Get("/:id", ctrl.Detail)
	places.Post("/", ctrl.Create)
	places.Patch("/:id", ctrl.Patch)
	places.Delete("/:id", ctrl.Delete)
}

// PlacePublicRoutes: listing tempat per desa lewat subdomain, tanpa login.
func PlacePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewPlaceController(db, v, nil)
	r.Get("/places", ctrl.PublicList)
	r.Get("/places/:slug", ctrl.PublicDetail)
}
