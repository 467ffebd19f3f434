// file: internals/features/content/media/route/media_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/content/media/controller"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares/auth"
)

// MediaAdminRoutes mendaftarkan endpoint /media dan /images (butuh login).
func MediaAdminRoutes(r fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	ctrl := controller.NewMediaController(db, oss)

	guard := auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola media"), constants.AllRoles)

	media := r.Group("/media", guard)
	media.Get("/", ctrl.List)
	media.Post("/", ctrl.Upload)
	media.Delete("/:id", ctrl.Delete)

	images := r.Group("/images", guard)
	images.Get("/", ctrl.ListImages)
	images.Post("/", ctrl.UploadImage)
	images.Delete("/:id", ctrl.DeleteImage)
}
