// file: internals/policy/policy.go
package policy

import (
	"github.com/google/uuid"

	"smartvillage_backend/internals/constants"
)

// Actor: user yang sedang beraksi (role + scope dari token).
// Invariant: scope non-null persis sesuai role-nya (dinormalisasi saat save user).
type Actor struct {
	UserID      uuid.UUID
	Role        string
	VillageID   *uuid.UUID
	CommunityID *uuid.UUID
	SmeID       *uuid.UUID
}

// Scope: identitas tenant milik entity target.
// Rantai scope: Offer→Sme→Community→Village; field yang tidak relevan dibiarkan nil.
type Scope struct {
	VillageID   *uuid.UUID
	CommunityID *uuid.UUID
	SmeID       *uuid.UUID
}

func (a Actor) IsSuperAdmin() bool     { return a.Role == constants.RoleSuperAdmin }
func (a Actor) IsVillageAdmin() bool   { return a.Role == constants.RoleVillageAdmin }
func (a Actor) IsCommunityAdmin() bool { return a.Role == constants.RoleCommunityAdmin }
func (a Actor) IsSmeAdmin() bool       { return a.Role == constants.RoleSmeAdmin }

func sameID(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

// sameVillage: village milik actor == village milik entity
func sameVillage(a Actor, s Scope) bool { return sameID(a.VillageID, s.VillageID) }

func sameCommunity(a Actor, s Scope) bool { return sameID(a.CommunityID, s.CommunityID) }

func sameSme(a Actor, s Scope) bool { return sameID(a.SmeID, s.SmeID) }
