// file: internals/policy/village.go
package policy

import "github.com/google/uuid"

// Desa (tenant root): hanya super admin dan admin desa ybs yang menyentuhnya.

func VillageViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin()
}

func VillageView(a Actor, villageID uuid.UUID) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.IsVillageAdmin() && a.VillageID != nil && *a.VillageID == villageID
}

func VillageCreate(a Actor) bool { return a.IsSuperAdmin() }

func VillageUpdate(a Actor, villageID uuid.UUID) bool {
	return VillageView(a, villageID)
}

func VillageDelete(a Actor) bool { return a.IsSuperAdmin() }
