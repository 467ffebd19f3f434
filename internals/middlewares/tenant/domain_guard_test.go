package tenant

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"smartvillage_backend/internals/constants"
	villageModel "smartvillage_backend/internals/features/village/villages/model"
	"smartvillage_backend/internals/policy"
)

var (
	guardVillageA = uuid.New()
	guardVillageB = uuid.New()
)

func actorWithRole(role string, villageID *uuid.UUID) policy.Actor {
	return policy.Actor{UserID: uuid.New(), Role: role, VillageID: villageID}
}

func TestGuardSuperAdminOnlyOnMainDomain(t *testing.T) {
	super := actorWithRole(constants.RoleSuperAdmin, nil)

	assert.Nil(t, GuardAccess(super, nil, true))

	denial := GuardAccess(super, &guardVillageA, false)
	assert.NotNil(t, denial)
	assert.False(t, denial.OnMainDomain)
	assert.Equal(t, DeniedVillageDomainMsg, denial.Error())
}

func TestGuardVillageAdminScopedToOwnVillage(t *testing.T) {
	va := actorWithRole(constants.RoleVillageAdmin, &guardVillageA)

	assert.Nil(t, GuardAccess(va, &guardVillageA, false))
	assert.NotNil(t, GuardAccess(va, &guardVillageB, false))

	// domain utama tertutup untuk village_admin
	denial := GuardAccess(va, nil, true)
	assert.NotNil(t, denial)
	assert.True(t, denial.OnMainDomain)
	assert.Equal(t, DeniedMainDomainMsg, denial.Error())
}

func TestGuardCommunityAndSmeAdminFollowVillageChain(t *testing.T) {
	ca := actorWithRole(constants.RoleCommunityAdmin, &guardVillageA)
	sa := actorWithRole(constants.RoleSmeAdmin, &guardVillageA)

	assert.Nil(t, GuardAccess(ca, &guardVillageA, false))
	assert.Nil(t, GuardAccess(sa, &guardVillageA, false))
	assert.NotNil(t, GuardAccess(ca, &guardVillageB, false))
	assert.NotNil(t, GuardAccess(sa, &guardVillageB, false))

	assert.NotNil(t, GuardAccess(ca, nil, true))
	assert.NotNil(t, GuardAccess(sa, nil, true))
}

func TestGuardDefaultDeny(t *testing.T) {
	unknown := actorWithRole("tukang_parkir", &guardVillageA)

	assert.NotNil(t, GuardAccess(unknown, &guardVillageA, false))
	assert.NotNil(t, GuardAccess(unknown, nil, true))

	// user scoped tanpa village_id sama sekali → tolak
	orphan := actorWithRole(constants.RoleVillageAdmin, nil)
	assert.NotNil(t, GuardAccess(orphan, &guardVillageA, false))
}

func newGuardApp(t *testing.T, seedLocals func(c *fiber.Ctx)) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		seedLocals(c)
		return c.Next()
	})
	app.Use(DomainGuard(gdb))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app, mock
}

// Penolakan lewat middleware: token ikut di-blacklist dan respons 422
// bergaya validasi dengan pesan nempel di field email.
func TestDomainGuardDenialBlacklistsTokenAnd422(t *testing.T) {
	app, mock := newGuardApp(t, func(c *fiber.Ctx) {
		c.Locals("user_id", uuid.NewString())
		c.Locals("user_role", constants.RoleVillageAdmin)
		c.Locals("village_id", guardVillageA.String())
		c.Locals("raw_token", "token-desa-a")
		c.Locals("is_main_domain", false)
		c.Locals("village", &villageModel.VillageModel{VillageID: guardVillageB})
	})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "token_blacklist"`).
		WillReturnRows(sqlmock.NewRows([]string{"token_blacklist_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Contains(t, payload.Errors, "email")
	assert.Equal(t, DeniedVillageDomainMsg, payload.Errors["email"][0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDomainGuardMainDomainMessageForNonSuper(t *testing.T) {
	app, mock := newGuardApp(t, func(c *fiber.Ctx) {
		c.Locals("user_id", uuid.NewString())
		c.Locals("user_role", constants.RoleCommunityAdmin)
		c.Locals("village_id", guardVillageA.String())
		c.Locals("raw_token", "token-komunitas")
		c.Locals("is_main_domain", true)
	})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "token_blacklist"`).
		WillReturnRows(sqlmock.NewRows([]string{"token_blacklist_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Contains(t, payload.Errors, "email")
	assert.Equal(t, DeniedMainDomainMsg, payload.Errors["email"][0])
}

func TestDomainGuardAdmitsMatchingVillage(t *testing.T) {
	app, mock := newGuardApp(t, func(c *fiber.Ctx) {
		c.Locals("user_id", uuid.NewString())
		c.Locals("user_role", constants.RoleVillageAdmin)
		c.Locals("village_id", guardVillageA.String())
		c.Locals("raw_token", "token-desa-a")
		c.Locals("is_main_domain", false)
		c.Locals("village", &villageModel.VillageModel{VillageID: guardVillageA})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
