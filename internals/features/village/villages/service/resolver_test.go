package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cachehelper "smartvillage_backend/internals/helpers/cache"
)

const baseDomain = "smartvillage.id"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func newResolver(t *testing.T) (*Resolver, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	gdb, mock := newMockDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewResolver(gdb, cachehelper.NewVillageCache(rdb), baseDomain), mock, mr
}

func villageRows(id uuid.UUID, slug string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"village_id", "village_name", "village_slug", "village_is_active"}).
		AddRow(id, "Desa "+slug, slug, true)
}

var selectVillages = regexp.MustCompile(`SELECT \* FROM "villages"`)

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "cibayan.smartvillage.id", NormalizeHost("Cibayan.SmartVillage.ID:8080"))
	assert.Equal(t, "smartvillage.id", NormalizeHost("www.smartvillage.id"))
	assert.Equal(t, "", NormalizeHost("  "))
}

func TestResolveMainDomainHasNoTenant(t *testing.T) {
	r, _, _ := newResolver(t)

	v, err := r.Resolve(context.Background(), "smartvillage.id")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.True(t, r.IsMainDomain("smartvillage.id:443"))
}

func TestResolveSubdomainActiveVillage(t *testing.T) {
	r, mock, _ := newResolver(t)
	id := uuid.New()

	mock.ExpectQuery(selectVillages.String()).
		WillReturnRows(villageRows(id, "cibayan"))

	v, err := r.Resolve(context.Background(), "cibayan.smartvillage.id")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, id, v.VillageID)
	assert.Equal(t, "cibayan", v.VillageSlug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveCachesPositiveResult(t *testing.T) {
	r, mock, mr := newResolver(t)
	id := uuid.New()

	mock.ExpectQuery(selectVillages.String()).
		WillReturnRows(villageRows(id, "cibayan"))

	_, err := r.Resolve(context.Background(), "cibayan.smartvillage.id")
	require.NoError(t, err)
	assert.True(t, mr.Exists(cachehelper.SubdomainKey("cibayan")))

	// request kedua: tidak boleh ada query DB lagi (tanpa ExpectQuery baru)
	v, err := r.Resolve(context.Background(), "cibayan.smartvillage.id")
	require.NoError(t, err)
	assert.Equal(t, id, v.VillageID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveInactiveVillageIsNotFound(t *testing.T) {
	r, mock, mr := newResolver(t)

	// query mem-filter village_is_active = true → row non-aktif tidak kembali
	mock.ExpectQuery(selectVillages.String()).
		WillReturnRows(sqlmock.NewRows([]string{"village_id"}))

	_, err := r.Resolve(context.Background(), "mati.smartvillage.id")
	assert.ErrorIs(t, err, ErrVillageNotFound)

	// negative result ikut di-cache
	assert.True(t, mr.Exists(cachehelper.SubdomainKey("mati")))

	// lookup kedua terjawab dari negative cache, tanpa DB
	_, err = r.Resolve(context.Background(), "mati.smartvillage.id")
	assert.ErrorIs(t, err, ErrVillageNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveCustomDomain(t *testing.T) {
	r, mock, mr := newResolver(t)
	id := uuid.New()

	mock.ExpectQuery(selectVillages.String()).
		WillReturnRows(villageRows(id, "cibayan"))

	v, err := r.Resolve(context.Background(), "desa-cibayan.id")
	require.NoError(t, err)
	assert.Equal(t, id, v.VillageID)
	assert.True(t, mr.Exists(cachehelper.DomainKey("desa-cibayan.id")))
}

func TestResolveNestedSubdomainNotFound(t *testing.T) {
	r, _, _ := newResolver(t)
	_, err := r.Resolve(context.Background(), "a.b.smartvillage.id")
	assert.ErrorIs(t, err, ErrVillageNotFound)
}

func TestResolveWithoutCacheGoesStraightToDB(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewResolver(gdb, nil, baseDomain)
	id := uuid.New()

	mock.ExpectQuery(selectVillages.String()).
		WillReturnRows(villageRows(id, "cibayan"))

	v, err := r.Resolve(context.Background(), "cibayan.smartvillage.id")
	require.NoError(t, err)
	assert.Equal(t, id, v.VillageID)
}
