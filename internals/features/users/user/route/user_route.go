// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/users/user/controller"
	"smartvillage_backend/internals/middlewares/auth"
)

// UserAdminRoutes mendaftarkan endpoint /users dan /me (butuh login).
func UserAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewUserController(db, v)

	r.Get("/me", ctrl.Me)

	users := r.Group("/users",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola user"), constants.VillageAdminAndAbove),
	)
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.Detail)
	users.Post("/", ctrl.Create)
	users.Patch("/:id", ctrl.Patch)
	users.Delete("/:id", ctrl.Delete)
}
