// file: internals/features/content/articles/dto/article_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/constants"
	"smartvillage_backend/internals/policy"
)

func TestArticleRequestSmeAdminFullChainForced(t *testing.T) {
	village := uuid.New()
	community := uuid.New()
	sme := uuid.New()
	spoof := uuid.New().String()
	actor := policy.Actor{
		UserID:      uuid.New(),
		Role:        constants.RoleSmeAdmin,
		VillageID:   &village,
		CommunityID: &community,
		SmeID:       &sme,
	}

	req := ArticleRequest{
		ArticleVillageID:   spoof,
		ArticleCommunityID: spoof,
		ArticleSmeID:       spoof,
		ArticleTitle:       "Panen Raya",
		ArticleContent:     "isi",
	}
	m := req.ToModel(actor)

	assert.Equal(t, village, m.ArticleVillageID)
	assert.Equal(t, community, *m.ArticleCommunityID)
	assert.Equal(t, sme, *m.ArticleSmeID)
	assert.Equal(t, actor.UserID, m.ArticleCreatedBy)
}

func TestArticleRequestVillageAdminOptionalCommunity(t *testing.T) {
	village := uuid.New()
	community := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &village,
	}

	req := ArticleRequest{
		ArticleCommunityID: community.String(),
		ArticleTitle:       "Gotong Royong",
		ArticleContent:     "isi",
	}
	m := req.ToModel(actor)

	assert.Equal(t, village, m.ArticleVillageID)
	assert.Equal(t, community, *m.ArticleCommunityID)
	assert.Nil(t, m.ArticleSmeID)
}

func TestArticlePublishTogglesTimestamp(t *testing.T) {
	village := uuid.New()
	actor := policy.Actor{
		UserID:    uuid.New(),
		Role:      constants.RoleVillageAdmin,
		VillageID: &village,
	}
	req := ArticleRequest{ArticleTitle: "Draft", ArticleContent: "isi"}
	m := req.ToModel(actor)
	assert.False(t, m.ArticleIsPublished)
	assert.Nil(t, m.ArticlePublishedAt)

	yes := true
	upd := ArticleUpdateRequest{ArticleIsPublished: &yes}
	upd.Apply(&m)
	assert.True(t, m.ArticleIsPublished)
	assert.NotNil(t, m.ArticlePublishedAt)

	no := false
	upd = ArticleUpdateRequest{ArticleIsPublished: &no}
	upd.Apply(&m)
	assert.False(t, m.ArticleIsPublished)
	assert.Nil(t, m.ArticlePublishedAt)
}

func TestArticleRequestCreateWithPublishSetsTimestamp(t *testing.T) {
	actor := policy.Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}
	req := ArticleRequest{
		ArticleVillageID:   uuid.New().String(),
		ArticleTitle:       "Langsung Tayang",
		ArticleContent:     "isi",
		ArticleIsPublished: true,
	}
	m := req.ToModel(actor)
	assert.True(t, m.ArticleIsPublished)
	assert.NotNil(t, m.ArticlePublishedAt)
}
