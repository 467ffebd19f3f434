// file: internals/features/content/categories/route/category_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/content/categories/controller"
	"smartvillage_backend/internals/middlewares/auth"
)

// CategoryAdminRoutes mendaftarkan endpoint /categories (butuh login).
func CategoryAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewCategoryController(db, v)

	cats := r.Group("/categories",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola kategori"), constants.CommunityAdminAndAbove),
	)
	cats.Get("/", ctrl.List)
	cats.Post("/", ctrl.Create)
	cats.Patch("/:id", ctrl.Patch)
	cats.Delete("/:id", ctrl.Delete)
}
