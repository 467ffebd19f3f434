// file: internals/policy/sme.go
package policy

// UMKM: semua role boleh listing; sme_admin boleh create/update miliknya
// tapi TIDAK boleh delete.

func SmeViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin() || a.IsSmeAdmin()
}

func SmeView(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	case a.IsCommunityAdmin():
		return sameCommunity(a, s)
	case a.IsSmeAdmin():
		return sameSme(a, s)
	}
	return false
}

func SmeCreate(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin() || a.IsSmeAdmin()
}

func SmeUpdate(a Actor, s Scope) bool { return SmeView(a, s) }

func SmeDelete(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	case a.IsCommunityAdmin():
		return sameCommunity(a, s)
	}
	return false
}
