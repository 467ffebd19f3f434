// file: internals/features/search/controller/search_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placeModel "smartvillage_backend/internals/features/content/places/model"
	smeModel "smartvillage_backend/internals/features/village/smes/model"
	villageModel "smartvillage_backend/internals/features/village/villages/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/middlewares/tenant"
)

const maxResultsPerGroup = 10

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

type searchHit struct {
	Type string `json:"type"` // "village" | "sme" | "place"
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// escapeLike: %/_ dari input user adalah literal, bukan wildcard.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// GET /search?q=… — pencarian publik lintas tabel (ILIKE, max 10 per grup).
// Di subdomain desa, hasil sme & place dibatasi ke desa tersebut.
func (sc *SearchController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kata kunci minimal 2 karakter")
	}
	pattern := "%" + escapeLike(q) + "%"

	var hits []searchHit
	v := tenant.VillageFromLocals(c)

	// Desa hanya dicari dari domain utama.
	if v == nil {
		var villages []villageModel.VillageModel
		if err := sc.DB.
			Where("village_is_active = TRUE AND village_name ILIKE ?", pattern).
			Limit(maxResultsPerGroup).Find(&villages).Error; err == nil {
			for _, row := range villages {
				hits = append(hits, searchHit{
					Type: "village", ID: row.VillageID.String(),
					Name: row.VillageName, Slug: row.VillageSlug,
				})
			}
		}
	}

	smeQ := sc.DB.Where("sme_name ILIKE ?", pattern)
	placeQ := sc.DB.Where("place_is_active = TRUE AND place_name ILIKE ?", pattern)
	if v != nil {
		smeQ = smeQ.Where("sme_village_id = ?", v.VillageID)
		placeQ = placeQ.Where("place_village_id = ?", v.VillageID)
	}

	var smes []smeModel.SmeModel
	if err := smeQ.Limit(maxResultsPerGroup).Find(&smes).Error; err == nil {
		for _, row := range smes {
			hits = append(hits, searchHit{
				Type: "sme", ID: row.SmeID.String(),
				Name: row.SmeName, Slug: row.SmeSlug,
			})
		}
	}

	var places []placeModel.PlaceModel
	if err := placeQ.Limit(maxResultsPerGroup).Find(&places).Error; err == nil {
		for _, row := range places {
			hits = append(hits, searchHit{
				Type: "place", ID: row.PlaceID.String(),
				Name: row.PlaceName, Slug: row.PlaceSlug,
			})
		}
	}

	return helper.JsonOK(c, "", fiber.Map{"query": q, "results": hits})
}
