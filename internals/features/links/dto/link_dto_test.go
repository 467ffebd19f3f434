// file: internals/features/links/dto/link_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/configs"
	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/policy"
)

func TestShortURLFormat(t *testing.T) {
	oldProto, oldDomain := configs.URLProtocol, configs.AppDomain
	configs.URLProtocol = "https"
	configs.AppDomain = "smartvillage.id"
	defer func() {
		configs.URLProtocol, configs.AppDomain = oldProto, oldDomain
	}()

	got := ShortURL("cibayan", "pasar-minggu")
	assert.Equal(t, "https://cibayan.smartvillage.id/l/pasar-minggu", got)
}

func TestLinkRequestScopeForcedForVillageAdmin(t *testing.T) {
	own := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &own,
	}

	req := LinkRequest{
		ExternalLinkVillageID: uuid.New().String(), // spoof
		ExternalLinkLabel:     "Warung Bu Sari",
		ExternalLinkTargetURL: "https://example.com/warung",
	}
	m := req.ToModel(actor)

	assert.Equal(t, own, m.ExternalLinkVillageID)
	assert.True(t, m.ExternalLinkIsActive)
	assert.Equal(t, int64(0), m.ExternalLinkClickCount)
}
