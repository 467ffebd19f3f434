// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartvillage_backend/internals/features/users/auth/controller"
	"smartvillage_backend/internals/middlewares"
	authMw "smartvillage_backend/internals/middlewares/auth"
)

// AuthRoutes: login dibatasi rate limiter ketat; logout butuh token valid.
// Dipasang di group berprefix /auth.
func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := controller.NewAuthController(db, v)

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/refresh", ctrl.Refresh)
	r.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
}
