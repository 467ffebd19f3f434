// file: internals/route/routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleRoute "smartvillage_backend/internals/features/content/articles/route"
	categoryRoute "smartvillage_backend/internals/features/content/categories/route"
	mediaRoute "smartvillage_backend/internals/features/content/media/route"
	offerRoute "smartvillage_backend/internals/features/content/offers/route"
	placeRoute "smartvillage_backend/internals/features/content/places/route"
	linkRoute "smartvillage_backend/internals/features/links/route"
	searchRoute "smartvillage_backend/internals/features/search/route"
	authRoute "smartvillage_backend/internals/features/users/auth/route"
	userRoute "smartvillage_backend/internals/features/users/user/route"
	communityRoute "smartvillage_backend/internals/features/village/communities/route"
	smeRoute "smartvillage_backend/internals/features/village/smes/route"
	villageRoute "smartvillage_backend/internals/features/village/villages/route"
	villageService "smartvillage_backend/internals/features/village/villages/service"
	cachehelper "smartvillage_backend/internals/helpers/cache"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	"smartvillage_backend/internals/middlewares"
	authMw "smartvillage_backend/internals/middlewares/auth"
	"smartvillage_backend/internals/middlewares/tenant"
)

// SetupRoutes merangkai seluruh endpoint:
//
//	/                  health & root
//	/auth/*            login (rate-limited), refresh, logout
//	/public/*          konteks desa dari host, tanpa login
//	/l/:slug           redirect tautan pendek (konteks desa)
//	/api/*             admin: Auth → VillageContext → DomainGuard
func SetupRoutes(app *fiber.App, db *gorm.DB, cache *cachehelper.VillageCache, oss *helperOSS.OSSService, resolver *villageService.Resolver) {
	v := validator.New()

	BaseRoutes(app, db)

	villageCtx := tenant.VillageContext(resolver)

	// Auth: guard admisi domain dievaluasi di controller login,
	// jadi konteks desa harus sudah ter-resolve.
	auth := app.Group("/auth", middlewares.DBMiddleware(db), villageCtx)
	authRoute.AuthRoutes(auth, db, v)

	// Publik per desa (atau domain utama untuk search desa).
	public := app.Group("/public", villageCtx)
	villageRoute.VillagePublicRoutes(public, db, cache)
	communityRoute.CommunityPublicRoutes(public, db)
	placeRoute.PlacePublicRoutes(public, db, v)
	articleRoute.ArticlePublicRoutes(public, db, v)
	offerRoute.OfferPublicRoutes(public, db, v)
	searchRoute.SearchPublicRoutes(public, db)

	// Short-link redirect — limiter sendiri, lebih longgar dari login.
	links := app.Group("/l", middlewares.LinkRedirectRateLimiter(), villageCtx)
	linkRoute.LinkRedirectRoutes(links, db, v, cache)

	// Admin: token valid → konteks desa → admisi domain.
	api := app.Group("/api",
		authMw.AuthMiddleware(db),
		villageCtx,
		tenant.DomainGuard(db),
	)
	userRoute.UserAdminRoutes(api, db, v)
	villageRoute.VillageAdminRoutes(api, db, cache, oss)
	communityRoute.CommunityAdminRoutes(api, db)
	smeRoute.SmeAdminRoutes(api, db, v, oss)
	categoryRoute.CategoryAdminRoutes(api, db, v)
	placeRoute.PlaceAdminRoutes(api, db, v, oss)
	articleRoute.ArticleAdminRoutes(api, db, v, oss)
	offerRoute.OfferAdminRoutes(api, db, v, oss)
	mediaRoute.MediaAdminRoutes(api, db, oss)
	linkRoute.LinkAdminRoutes(api, db, v, cache)
}
