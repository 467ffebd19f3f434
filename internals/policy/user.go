// file: internals/policy/user.go
package policy

import "smartvillage_backend/internals/constants"

// Manajemen user admin: super_admin mengelola semua; village_admin
// mengelola admin di bawahnya (community_admin & sme_admin desanya).
// community_admin & sme_admin tidak mengelola user sama sekali.

func UserViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin()
}

func UserView(a Actor, targetRole string, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return subordinateRole(targetRole) && sameVillage(a, s)
	}
	return false
}

// UserManageRole: role apa yang boleh DIBUAT/DIUBAH oleh aktor.
func UserManageRole(a Actor, targetRole string) bool {
	switch {
	case a.IsSuperAdmin():
		return constants.IsValidRole(targetRole)
	case a.IsVillageAdmin():
		return subordinateRole(targetRole)
	}
	return false
}

func UserUpdate(a Actor, targetRole string, s Scope) bool { return UserView(a, targetRole, s) }
func UserDelete(a Actor, targetRole string, s Scope) bool { return UserView(a, targetRole, s) }

func subordinateRole(role string) bool {
	return role == constants.RoleCommunityAdmin || role == constants.RoleSmeAdmin
}
