// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "smartvillage_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes: health & root — tanpa auth, tanpa konteks desa.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "SmartVillage API", fiber.Map{
			"service": "smartvillage_backend",
			"status":  "ok",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		code := fiber.StatusOK
		if dbStatus != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":         dbStatus,
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
		})
	})
}
