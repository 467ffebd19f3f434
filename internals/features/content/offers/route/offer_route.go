// file: internals/features/content/offers/route/offer_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/content/offers/controller"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/auth"
)

// OfferAdminRoutes mendaftarkan endpoint /offers (butuh login).
func OfferAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) {
	ctrl := controller.NewOfferController(db, v, oss)

	offers := r.Group("/offers",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola penawaran"), constants.AllRoles),
	)
	offers.Get("/", ctrl.List)
	offers.Get("/:id", ctrl.Detail)
	offers.Post("/", ctrl.Create)
	offers.Patch("/:id", ctrl.Patch)
	offers.Delete("/:id", ctrl.Delete)
}

// OfferPublicRoutes: katalog penawaran per desa, tanpa login.
func OfferPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewOfferController(db, v, nil)
	r.Get("/offers", ctrl.PublicList)
}
