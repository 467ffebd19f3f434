// file: internals/policy/community.go
package policy

func CommunityViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin()
}

func CommunityView(a Actor, s Scope) bool {
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

func CommunityCreate(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin()
}

func CommunityUpdate(a Actor, s Scope) bool { return CommunityView(a, s) }

func CommunityDelete(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	}
	return false
}
