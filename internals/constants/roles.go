package constants

import "fmt"

// Role tunggal per user; scope (village/community/sme) menyesuaikan role.
const (
	RoleSuperAdmin     = "super_admin"
	RoleVillageAdmin   = "village_admin"
	RoleCommunityAdmin = "community_admin"
	RoleSmeAdmin       = "sme_admin"
)

// Template pesan error role
const (
	ErrOnlySuperAdminCanAccess   = "❌ Hanya super admin yang boleh mengakses fitur %s."
	ErrOnlyVillageAdminCanAccess = "❌ Hanya super admin atau admin desa yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess       = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorVillageAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyVillageAdminCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleVillageAdmin,
		RoleCommunityAdmin,
		RoleSmeAdmin,
	}

	VillageAdminAndAbove = []string{
		RoleSuperAdmin,
		RoleVillageAdmin,
	}

	CommunityAdminAndAbove = []string{
		RoleSuperAdmin,
		RoleVillageAdmin,
		RoleCommunityAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
