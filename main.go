package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"smartvillage_backend/internals/configs"
	database "smartvillage_backend/internals/databases"
	scheduler "smartvillage_backend/internals/features/users/auth/scheduler"
	villageService "smartvillage_backend/internals/features/village/villages/service"
	cachehelper "smartvillage_backend/internals/helpers/cache"
	helperOSS "smartvillage_backend/internals/helpers/oss"
	middlewares "smartvillage_backend/internals/middlewares"
	routes "smartvillage_backend/internals/route"
	"smartvillage_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"}, // sesuaikan CIDR proxy kalau perlu
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// timeout guard selaras statement_timeout di DB
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// ⏱ scheduler & seed setelah DB siap
	scheduler.StartBlacklistCleanupScheduler(database.DB)
	seeds.SeedSuperAdmin(database.DB)

	// 🗂 Redis cache untuk resolusi desa (opsional — tanpa Redis langsung ke DB)
	var cache *cachehelper.VillageCache
	if configs.RedisAddr != "" {
		var err error
		cache, err = cachehelper.NewVillageCacheFromAddr(configs.RedisAddr, configs.RedisPassword)
		if err != nil {
			log.Printf("⚠️ Redis tidak tersedia, cache desa dimatikan: %v", err)
			cache = nil
		}
	}

	// ☁️ OSS untuk upload & pembersihan file (opsional)
	if oss, err := helperOSS.NewOSSServiceFromEnv("uploads"); err == nil {
		helperOSS.SetDefaultFileRemover(oss)
		routes.SetupRoutes(app, database.DB, cache, oss, newResolver(cache))
	} else {
		log.Printf("⚠️ OSS tidak dikonfigurasi: %v", err)
		routes.SetupRoutes(app, database.DB, cache, nil, newResolver(cache))
	}

	// 🔒 timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newResolver(cache *cachehelper.VillageCache) *villageService.Resolver {
	return villageService.NewResolver(database.DB, cache, configs.AppDomain)
}
