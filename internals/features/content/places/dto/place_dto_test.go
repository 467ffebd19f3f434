// file: internals/features/content/places/dto/place_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/policy"
)

// village_admin "cibayan" mengirim village_id desa lain di body → scope
// tetap dipaksa ke desanya sendiri, ID kiriman dibuang diam-diam.
func TestPlaceRequestScopeSpoofIgnored(t *testing.T) {
	own := uuid.New()
	other := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &own,
	}

	req := PlaceRequest{
		PlaceVillageID: other.String(),
		PlaceName:      "Curug Cibayan",
	}
	m := req.ToModel(actor)

	assert.Equal(t, own, m.PlaceVillageID)
	assert.NotEqual(t, other, m.PlaceVillageID)
}

func TestPlaceRequestSuperAdminMayTargetAnyVillage(t *testing.T) {
	target := uuid.New()
	actor := policy.Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}

	req := PlaceRequest{
		PlaceVillageID: target.String(),
		PlaceName:      "Balai Desa",
	}
	m := req.ToModel(actor)

	assert.Equal(t, target, m.PlaceVillageID)
}

func TestPlaceRequestTrimsAndDefaults(t *testing.T) {
	own := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &own,
	}

	req := PlaceRequest{
		PlaceName:        "  Pasar Minggu  ",
		PlaceDescription: "   ",
		PlaceAddress:     " Jl. Raya No. 1 ",
	}
	m := req.ToModel(actor)

	assert.Equal(t, "Pasar Minggu", m.PlaceName)
	assert.Nil(t, m.PlaceDescription)
	assert.NotNil(t, m.PlaceAddress)
	assert.Equal(t, "Jl. Raya No. 1", *m.PlaceAddress)
	assert.True(t, m.PlaceIsActive)
}

func TestPlaceUpdateApplyClearsOptionalField(t *testing.T) {
	own := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &own,
	}
	req := PlaceRequest{PlaceName: "Taman Desa", PlaceAddress: "Lama"}
	m := req.ToModel(actor)

	empty := ""
	upd := PlaceUpdateRequest{PlaceAddress: &empty}
	upd.Apply(&m)

	assert.Nil(t, m.PlaceAddress)
	assert.Equal(t, "Taman Desa", m.PlaceName)
}
