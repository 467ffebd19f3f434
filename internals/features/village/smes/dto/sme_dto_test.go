// file: internals/features/village/smes/dto/sme_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/policy"
)

func TestSmeRequestVillageAdminForcedVillageFreeCommunity(t *testing.T) {
	own := uuid.New()
	otherVillage := uuid.New()
	community := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &own,
	}

	req := SmeRequest{
		SmeVillageID:   &otherVillage, // spoof → dibuang
		SmeCommunityID: &community,
		SmeName:        "Kopi Lereng",
	}
	m := req.ToModel(actor)

	assert.Equal(t, own, m.SmeVillageID)
	assert.Equal(t, community, m.SmeCommunityID)
}

func TestSmeRequestCommunityAdminFullyForced(t *testing.T) {
	village := uuid.New()
	ownCommunity := uuid.New()
	spoofCommunity := uuid.New()
	actor := policy.Actor{
		UserID:      uuid.New(),
		Role:        constants.RoleCommunityAdmin,
		VillageID:   &village,
		CommunityID: &ownCommunity,
	}

	req := SmeRequest{
		SmeCommunityID: &spoofCommunity,
		SmeName:        "Batik Tulis",
	}
	m := req.ToModel(actor)

	assert.Equal(t, village, m.SmeVillageID)
	assert.Equal(t, ownCommunity, m.SmeCommunityID)
}

func TestSmeRequestSuperAdminFree(t *testing.T) {
	village := uuid.New()
	community := uuid.New()
	actor := policy.Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}

	req := SmeRequest{
		SmeVillageID:   &village,
		SmeCommunityID: &community,
		SmeName:        "Gula Aren",
	}
	m := req.ToModel(actor)

	assert.Equal(t, village, m.SmeVillageID)
	assert.Equal(t, community, m.SmeCommunityID)
}

func TestSmeUpdateBlankClearsOptional(t *testing.T) {
	village := uuid.New()
	community := uuid.New()
	actor := policy.Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}
	req := SmeRequest{
		SmeVillageID:   &village,
		SmeCommunityID: &community,
		SmeName:        "Keripik Desa",
		SmePhone:       "0812",
	}
	m := req.ToModel(actor)
	assert.NotNil(t, m.SmePhone)

	empty := ""
	upd := SmeUpdateRequest{SmePhone: &empty}
	upd.Apply(&m)
	assert.Nil(t, m.SmePhone)
}
