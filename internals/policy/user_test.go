// file: internals/policy/user_test.go
package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/constants"
)

func TestUserManageRole(t *testing.T) {
	super := Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}
	village := uuid.New()
	vAdmin := Actor{UserID: uuid.New(), Role: constants.RoleVillageAdmin, VillageID: &village}
	cAdmin := Actor{UserID: uuid.New(), Role: constants.RoleCommunityAdmin, VillageID: &village}

	assert.True(t, UserManageRole(super, constants.RoleSuperAdmin))
	assert.True(t, UserManageRole(super, constants.RoleVillageAdmin))

	assert.True(t, UserManageRole(vAdmin, constants.RoleCommunityAdmin))
	assert.True(t, UserManageRole(vAdmin, constants.RoleSmeAdmin))
	assert.False(t, UserManageRole(vAdmin, constants.RoleVillageAdmin))
	assert.False(t, UserManageRole(vAdmin, constants.RoleSuperAdmin))

	assert.False(t, UserManageRole(cAdmin, constants.RoleSmeAdmin))
}

func TestUserViewScopedToVillage(t *testing.T) {
	own := uuid.New()
	other := uuid.New()
	vAdmin := Actor{UserID: uuid.New(), Role: constants.RoleVillageAdmin, VillageID: &own}

	assert.True(t, UserView(vAdmin, constants.RoleCommunityAdmin, Scope{VillageID: &own}))
	assert.False(t, UserView(vAdmin, constants.RoleCommunityAdmin, Scope{VillageID: &other}))
	// sesama village_admin bukan bawahan
	assert.False(t, UserView(vAdmin, constants.RoleVillageAdmin, Scope{VillageID: &own}))
}
