package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/constants"
)

func fullScopeUser(role string) UserModel {
	v, c, s := uuid.New(), uuid.New(), uuid.New()
	return UserModel{
		UserName:        "Pak Lurah",
		UserEmail:       "lurah@cibayan.id",
		UserRole:        role,
		UserVillageID:   &v,
		UserCommunityID: &c,
		UserSmeID:       &s,
	}
}

func TestNormalizeScopeByRole(t *testing.T) {
	// role diganti jadi super_admin → semua scope di-null-kan,
	// apa pun nilai sebelumnya
	u := fullScopeUser(constants.RoleSuperAdmin)
	u.NormalizeScopeByRole()
	assert.Nil(t, u.UserVillageID)
	assert.Nil(t, u.UserCommunityID)
	assert.Nil(t, u.UserSmeID)

	u = fullScopeUser(constants.RoleVillageAdmin)
	u.NormalizeScopeByRole()
	assert.NotNil(t, u.UserVillageID)
	assert.Nil(t, u.UserCommunityID)
	assert.Nil(t, u.UserSmeID)

	u = fullScopeUser(constants.RoleCommunityAdmin)
	u.NormalizeScopeByRole()
	assert.NotNil(t, u.UserVillageID)
	assert.NotNil(t, u.UserCommunityID)
	assert.Nil(t, u.UserSmeID)

	u = fullScopeUser(constants.RoleSmeAdmin)
	u.NormalizeScopeByRole()
	assert.NotNil(t, u.UserVillageID)
	assert.NotNil(t, u.UserCommunityID)
	assert.NotNil(t, u.UserSmeID)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	u := fullScopeUser(constants.RoleVillageAdmin)
	u.NormalizeScopeByRole()
	before := u
	u.NormalizeScopeByRole()
	assert.Equal(t, before, u)
}
