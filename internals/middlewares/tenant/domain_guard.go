// file: internals/middlewares/tenant/domain_guard.go
package tenant

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	blacklistModel "smartvillage_backend/internals/features/users/auth/model"
	helper "smartvillage_backend/internals/helpers"
	"smartvillage_backend/internals/policy"
)

const (
	// Pesan penolakan dibedakan per konteks domain.
	DeniedMainDomainMsg    = "Hanya super administrator yang dapat masuk lewat domain utama."
	DeniedVillageDomainMsg = "Akun Anda tidak terdaftar di desa ini. Hubungi administrator desa Anda."
)

// AccessDenial: penolakan admisi oleh domain guard.
type AccessDenial struct {
	OnMainDomain bool
}

func (e *AccessDenial) Error() string {
	if e.OnMainDomain {
		return DeniedMainDomainMsg
	}
	return DeniedVillageDomainMsg
}

// GuardAccess memutuskan admisi user pada konteks domain.
// Aturan urut, first-match-wins:
//  1. super_admin → hanya domain utama.
//  2. village_admin → desa dengan village_id miliknya.
//  3. community_admin → desa induk komunitasnya.
//  4. sme_admin → desa induk (via community) sme-nya.
//  5. domain utama untuk non-super → tolak.
//  6. default → tolak.
//
// villageID nil ⇔ konteks domain utama.
func GuardAccess(a policy.Actor, villageID *uuid.UUID, isMainDomain bool) *AccessDenial {
	if a.IsSuperAdmin() {
		if isMainDomain {
			return nil
		}
		return &AccessDenial{OnMainDomain: false}
	}

	if !isMainDomain && villageID != nil {
		switch {
		case a.IsVillageAdmin(), a.IsCommunityAdmin(), a.IsSmeAdmin():
			// rantai scope ter-denormalisasi: user non-super selalu membawa
			// village_id desa induknya (community/sme ikut desa yang sama).
			if a.VillageID != nil && *a.VillageID == *villageID {
				return nil
			}
			return &AccessDenial{OnMainDomain: false}
		}
	}

	return &AccessDenial{OnMainDomain: isMainDomain}
}

// DomainGuard: middleware setelah AuthMiddleware + VillageContext.
// Saat ditolak: token di-blacklist (efek samping logout) dan respons berupa
// error gaya validasi yang nempel di field email, bukan 403 polos.
func DomainGuard(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := helper.GetActorFromToken(c)
		if err != nil {
			return err
		}

		var villageID *uuid.UUID
		if v := VillageFromLocals(c); v != nil {
			villageID = &v.VillageID
		}

		if denial := GuardAccess(actor, villageID, IsMainDomain(c)); denial != nil {
			blacklistToken(c, db)
			log.Printf("[GUARD] tolak user=%s role=%s main=%v", actor.UserID, actor.Role, denial.OnMainDomain)
			return helper.JsonValidationError(c, map[string][]string{
				"email": {denial.Error()},
			})
		}
		return c.Next()
	}
}

// blacklistToken: logout paksa. Best-effort — gagal insert tidak mengubah
// keputusan penolakan.
func blacklistToken(c *fiber.Ctx, db *gorm.DB) {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" || db == nil {
		return
	}
	entry := blacklistModel.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[GUARD] gagal blacklist token: %v", err)
	}
}
