package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	AppDomain        string // domain utama, contoh: "smartvillage.id" → {slug}.smartvillage.id
	URLProtocol      string // "https" (default) / "http" untuk dev lokal
	RedisAddr        string
	RedisPassword    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AppDomain = GetEnv("APP_DOMAIN", "smartvillage.id")
	URLProtocol = GetEnv("SMARTVILLAGE_URL_PROTOCOL", "https")
	RedisAddr = GetEnv("REDIS_ADDR")
	RedisPassword = GetEnv("REDIS_PASSWORD")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR kosong — cache tenant nonaktif, semua lookup langsung ke DB")
	}

	log.Printf("✅ APP_DOMAIN = %s", AppDomain)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
