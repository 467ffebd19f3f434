// file: internals/features/content/articles/route/article_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/content/articles/controller"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/auth"
)

// ArticleAdminRoutes mendaftarkan endpoint /articles (butuh login).
func ArticleAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, oss *helperOSS.OSSService) {
	ctrl := controller.NewArticleController(db, v, oss)

	articles := r.Group("/articles",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola artikel"), constants.AllRoles),
	)
	articles.Get("/", ctrl.List)
	articles.Get("/:id", ctrl.Detail)
	articles.Post("/", ctrl.Create)
	articles.Patch("/:id", ctrl.Patch)
	articles.Delete("/:id", ctrl.Delete)
}

// ArticlePublicRoutes: artikel published per desa, tanpa login.
func ArticlePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewArticleController(db, v, nil)
	r.Get("/articles", ctrl.PublicList)
	r.Get("/articles/:slug", ctrl.PublicDetail)
}
