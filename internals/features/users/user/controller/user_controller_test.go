package controller

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/features/users/user/model"
	"smartvillage_backend/internals/middlewares/tenant"
	"smartvillage_backend/internals/policy"
)

func newUserController(t *testing.T) (*UserController, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return NewUserController(gdb, validator.New()), mock
}

func communityRow(id, villageID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"community_id", "community_village_id"}).AddRow(id, villageID)
}

func smeRow(id, communityID, villageID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"sme_id", "sme_community_id", "sme_village_id"}).
		AddRow(id, communityID, villageID)
}

// community_admin dengan community milik desa lain tidak boleh lolos;
// kalau lolos, domain guard (yang percaya village_id ter-denormalisasi)
// akan mengadmisi dia di desa yang salah.
func TestScopeChainRejectsCommunityFromOtherVillage(t *testing.T) {
	uc, mock := newUserController(t)
	villageA, villageB := uuid.New(), uuid.New()
	commB := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "communities"`).
		WillReturnRows(communityRow(commB, villageB))

	m := model.UserModel{
		UserRole:        constants.RoleCommunityAdmin,
		UserVillageID:   &villageA,
		UserCommunityID: &commB,
	}
	err := uc.checkScopeChain(&m)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopeChainDerivesVillageFromCommunity(t *testing.T) {
	uc, mock := newUserController(t)
	villageA := uuid.New()
	commA := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "communities"`).
		WillReturnRows(communityRow(commA, villageA))

	// super_admin boleh kirim community tanpa village; desanya diturunkan.
	m := model.UserModel{
		UserRole:        constants.RoleCommunityAdmin,
		UserCommunityID: &commA,
	}
	require.NoError(t, uc.checkScopeChain(&m))
	require.NotNil(t, m.UserVillageID)
	assert.Equal(t, villageA, *m.UserVillageID)

	// rantai yang sudah diverifikasi → guard mengadmisi di desa induk saja
	actor := policy.Actor{UserID: uuid.New(), Role: m.UserRole, VillageID: m.UserVillageID}
	assert.Nil(t, tenant.GuardAccess(actor, &villageA, false))
	other := uuid.New()
	assert.NotNil(t, tenant.GuardAccess(actor, &other, false))
}

func TestScopeChainVerifiesSmeChain(t *testing.T) {
	uc, mock := newUserController(t)
	villageA := uuid.New()
	commA, smeA := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "smes"`).
		WillReturnRows(smeRow(smeA, commA, villageA))

	m := model.UserModel{
		UserRole:      constants.RoleSmeAdmin,
		UserVillageID: &villageA,
		UserSmeID:     &smeA,
	}
	require.NoError(t, uc.checkScopeChain(&m))
	require.NotNil(t, m.UserCommunityID)
	assert.Equal(t, commA, *m.UserCommunityID)

	// sme yang menunjuk komunitas berbeda dari kiriman klien → tolak
	uc2, mock2 := newUserController(t)
	otherComm := uuid.New()
	mock2.ExpectQuery(`SELECT \* FROM "smes"`).
		WillReturnRows(smeRow(smeA, commA, villageA))

	bad := model.UserModel{
		UserRole:        constants.RoleSmeAdmin,
		UserVillageID:   &villageA,
		UserCommunityID: &otherComm,
		UserSmeID:       &smeA,
	}
	require.Error(t, uc2.checkScopeChain(&bad))
}

func TestScopeChainUnknownCommunityRejected(t *testing.T) {
	uc, mock := newUserController(t)
	commX := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "communities"`).
		WillReturnError(gorm.ErrRecordNotFound)

	m := model.UserModel{
		UserRole:        constants.RoleCommunityAdmin,
		UserCommunityID: &commX,
	}
	err := uc.checkScopeChain(&m)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
