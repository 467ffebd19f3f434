// file: internals/middlewares/tenant/village_context.go
package tenant

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	villageModel "smartvillage_backend/internals/features/village/villages/model"
	"smartvillage_backend/internals/features/village/villages/service"
	helper "smartvillage_backend/internals/helpers"
)

const logPrefix = "[VILLAGE_CTX]"

// VillageContext me-resolve host → desa lalu menaruh hasilnya di locals:
//   - "village"        *VillageModel (nil di domain utama)
//   - "is_main_domain" bool
//
// Host tak dikenal (bukan base domain, bukan desa aktif) → 404 JSON.
func VillageContext(r *service.Resolver) fiber.Handler {
	if r == nil {
		panic("VillageContext: resolver wajib diisi")
	}
	return func(c *fiber.Ctx) error {
		host := c.Hostname()
		log.Printf("%s 🔥 %s %s host=%q", logPrefix, c.Method(), c.OriginalURL(), host)

		if r.IsMainDomain(host) {
			c.Locals("is_main_domain", true)
			return c.Next()
		}

		v, err := r.Resolve(c.UserContext(), host)
		if errors.Is(err, service.ErrVillageNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Desa tidak ditemukan")
		}
		if err != nil {
			log.Printf("%s resolve err: %v", logPrefix, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve desa")
		}

		c.Locals("is_main_domain", false)
		c.Locals("village", v)
		return c.Next()
	}
}

// VillageFromLocals: ambil desa hasil resolve (nil kalau domain utama).
func VillageFromLocals(c *fiber.Ctx) *villageModel.VillageModel {
	v, _ := c.Locals("village").(*villageModel.VillageModel)
	return v
}

func IsMainDomain(c *fiber.Ctx) bool {
	b, _ := c.Locals("is_main_domain").(bool)
	return b
}
