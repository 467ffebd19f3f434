// file: internals/features/village/villages/service/resolver.go
package service

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"

	"gorm.io/gorm"

	"smartvillage_backend/internals/features/village/villages/model"
	cachehelper "smartvillage_backend/internals/helpers/cache"
)

const logPrefix = "[VILLAGE_CTX]"

// ErrVillageNotFound: host valid tapi tidak ada desa aktif yang cocok.
var ErrVillageNotFound = errors.New("village tidak ditemukan")

// Resolver memetakan host HTTP → desa (tenant), cache-aside via Redis.
// Cache boleh nil (dev tanpa Redis) → semua lookup langsung ke DB.
type Resolver struct {
	DB         *gorm.DB
	Cache      *cachehelper.VillageCache
	BaseDomain string // contoh: "smartvillage.id"
}

func NewResolver(db *gorm.DB, c *cachehelper.VillageCache, baseDomain string) *Resolver {
	return &Resolver{DB: db, Cache: c, BaseDomain: strings.ToLower(strings.TrimSpace(baseDomain))}
}

// NormalizeHost: lower-case, buang port & prefix www.
func NormalizeHost(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if h == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(h); err == nil {
		h = host
	}
	return strings.TrimPrefix(h, "www.")
}

// IsMainDomain: host persis sama dengan base domain → konteks admin pusat.
func (r *Resolver) IsMainDomain(host string) bool {
	return NormalizeHost(host) == r.BaseDomain
}

// Resolve memetakan host ke desa aktif.
// - host == base domain        → (nil, nil): tidak ada tenant.
// - host == {slug}.{base}      → lookup by slug.
// - selain itu (custom domain) → lookup by exact domain.
// Desa non-aktif diperlakukan sama dengan tidak ada (ErrVillageNotFound).
func (r *Resolver) Resolve(ctx context.Context, host string) (*model.VillageModel, error) {
	h := NormalizeHost(host)
	if h == "" {
		return nil, ErrVillageNotFound
	}
	if h == r.BaseDomain {
		return nil, nil
	}

	if suffix := "." + r.BaseDomain; strings.HasSuffix(h, suffix) {
		slug := strings.TrimSuffix(h, suffix)
		if slug == "" || strings.Contains(slug, ".") {
			// subdomain bertingkat tidak dikenal
			return nil, ErrVillageNotFound
		}
		return r.lookup(ctx, cachehelper.SubdomainKey(slug), "village_slug = ?", slug)
	}

	// custom domain: exact match
	return r.lookup(ctx, cachehelper.DomainKey(h), "village_domain = ?", h)
}

func (r *Resolver) lookup(ctx context.Context, cacheKey, cond string, arg string) (*model.VillageModel, error) {
	if r.Cache != nil {
		var v model.VillageModel
		hit, negative, err := r.Cache.Get(ctx, cacheKey, &v)
		if err != nil {
			log.Printf("%s cache get %s err: %v", logPrefix, cacheKey, err)
		}
		if hit {
			if negative {
				return nil, ErrVillageNotFound
			}
			return &v, nil
		}
	}

	var v model.VillageModel
	err := r.DB.WithContext(ctx).
		Where(cond, arg).
		Where("village_is_active = ?", true).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// negative result ikut di-cache: slug/domain ngawur jangan menghajar DB
		if r.Cache != nil {
			if cerr := r.Cache.SetMissing(ctx, cacheKey); cerr != nil {
				log.Printf("%s cache set-missing %s err: %v", logPrefix, cacheKey, cerr)
			}
		}
		return nil, ErrVillageNotFound
	}
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if cerr := r.Cache.Set(ctx, cacheKey, &v); cerr != nil {
			log.Printf("%s cache set %s err: %v", logPrefix, cacheKey, cerr)
		}
	}
	return &v, nil
}
