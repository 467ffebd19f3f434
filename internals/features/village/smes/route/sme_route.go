// file: internals/features/village/smes/route/sme_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/village/smes/controller"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/auth"
)

// SmeAdminRoutes mendaftarkan endpoint /smes (butuh login).
func SmeAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) {
	ctrl := controller.NewSmeController(db, v, oss)

	smes := r.Group("/smes",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola UMKM"), constants.AllRoles),
	)
	smes.Get("/", ctrl.List)
	smes.Get("/:id", ctrl.Detail)
	smes.Post("/", ctrl.Create)
	smes.Patch("/:id", ctrl.Patch)
	smes.Delete("/:id", ctrl.Delete)
}
