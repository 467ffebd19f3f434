// file: internals/helpers/cache/village_cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Key derivatif — bukan sumber kebenaran, selalu bisa di-rebuild dari DB.
const (
	keySubdomainFmt = "village:subdomain:%s"
	keyDomainFmt    = "village:domain:%s"
	keyLinksFmt     = "village_links:%s"

	// Sentinel untuk negative cache: "desa tidak ada" ikut di-cache
	// supaya slug/domain ngawur tidak menghajar DB tiap request.
	missSentinel = "-"

	DefaultTTL = 3600 * time.Second
)

type VillageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVillageCache(rdb *redis.Client) *VillageCache {
	return &VillageCache{rdb: rdb, ttl: DefaultTTL}
}

func NewVillageCacheFromAddr(addr, password string) (*VillageCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: 0})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("gagal konek Redis: %w", err)
	}
	return NewVillageCache(rdb), nil
}

func (c *VillageCache) Close() error { return c.rdb.Close() }

func SubdomainKey(slug string) string { return fmt.Sprintf(keySubdomainFmt, slug) }
func DomainKey(host string) string    { return fmt.Sprintf(keyDomainFmt, host) }
func LinksKey(villageID uuid.UUID) string {
	return fmt.Sprintf(keyLinksFmt, villageID.String())
}

// Get membaca satu entri village. hit=false berarti belum pernah di-cache;
// hit=true dengan raw=nil berarti negative cache (desa memang tidak ada).
func (c *VillageCache) Get(ctx context.Context, key string, out any) (hit bool, negative bool, err error) {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	if raw == missSentinel {
		return true, true, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// entri korup → anggap miss, biarkan caller repopulasi
		return false, false, nil
	}
	return true, false, nil
}

func (c *VillageCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *VillageCache) SetMissing(ctx context.Context, key string) error {
	return c.rdb.Set(ctx, key, missSentinel, c.ttl).Err()
}

func (c *VillageCache) SetLinks(ctx context.Context, villageID uuid.UUID, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, LinksKey(villageID), raw, c.ttl).Err()
}

func (c *VillageCache) GetLinks(ctx context.Context, villageID uuid.UUID, out any) (bool, error) {
	raw, err := c.rdb.Get(ctx, LinksKey(villageID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return json.Unmarshal([]byte(raw), out) == nil, nil
}

// ClearVillage membuang semua entri milik satu desa. Dipanggil saat mutasi
// village dengan slug/domain LAMA (key di-cache pakai nilai sebelum update).
func (c *VillageCache) ClearVillage(ctx context.Context, oldSlug, oldDomain string, villageID uuid.UUID) {
	keys := []string{LinksKey(villageID)}
	if oldSlug != "" {
		keys = append(keys, SubdomainKey(oldSlug))
	}
	if oldDomain != "" {
		keys = append(keys, DomainKey(oldDomain))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] clear village %s err: %v", villageID, err)
	}
}
