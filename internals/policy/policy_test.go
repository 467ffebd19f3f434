package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartvillage_backend/internals/constants"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

var (
	villageA   = uuid.New()
	villageB   = uuid.New()
	communityA = uuid.New()
	communityB = uuid.New()
	smeA       = uuid.New()
	smeB       = uuid.New()
)

func superAdmin() Actor {
	return Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}
}

func villageAdmin(v uuid.UUID) Actor {
	return Actor{UserID: uuid.New(), Role: constants.RoleVillageAdmin, VillageID: ptr(v)}
}

func communityAdmin(v, c uuid.UUID) Actor {
	return Actor{UserID: uuid.New(), Role: constants.RoleCommunityAdmin, VillageID: ptr(v), CommunityID: ptr(c)}
}

func smeAdmin(v, c, s uuid.UUID) Actor {
	return Actor{UserID: uuid.New(), Role: constants.RoleSmeAdmin, VillageID: ptr(v), CommunityID: ptr(c), SmeID: ptr(s)}
}

func scopeA() Scope {
	return Scope{VillageID: ptr(villageA), CommunityID: ptr(communityA), SmeID: ptr(smeA)}
}

func TestVillagePolicy(t *testing.T) {
	assert.True(t, VillageView(superAdmin(), villageA))
	assert.True(t, VillageUpdate(villageAdmin(villageA), villageA))
	assert.False(t, VillageUpdate(villageAdmin(villageB), villageA))
	assert.False(t, VillageCreate(villageAdmin(villageA)))
	assert.True(t, VillageCreate(superAdmin()))
	assert.False(t, VillageDelete(villageAdmin(villageA)))
	assert.False(t, VillageView(communityAdmin(villageA, communityA), villageA))
}

func TestCommunityPolicy(t *testing.T) {
	s := scopeA()

	assert.True(t, CommunityView(villageAdmin(villageA), s))
	assert.False(t, CommunityView(villageAdmin(villageB), s))
	assert.True(t, CommunityView(communityAdmin(villageA, communityA), s))
	assert.False(t, CommunityView(communityAdmin(villageA, communityB), s))
	assert.False(t, CommunityView(smeAdmin(villageA, communityA, smeA), s))

	assert.True(t, CommunityCreate(villageAdmin(villageA)))
	assert.False(t, CommunityCreate(communityAdmin(villageA, communityA)))

	// delete hanya super/village admin
	assert.True(t, CommunityDelete(villageAdmin(villageA), s))
	assert.False(t, CommunityDelete(communityAdmin(villageA, communityA), s))
}

func TestSmePolicy(t *testing.T) {
	s := scopeA()

	// listing terbuka untuk semua role
	for _, a := range []Actor{superAdmin(), villageAdmin(villageA), communityAdmin(villageA, communityA), smeAdmin(villageA, communityA, smeA)} {
		assert.True(t, SmeViewAny(a), "role %s", a.Role)
	}

	// sme_admin boleh create & update miliknya, tapi tidak delete
	sa := smeAdmin(villageA, communityA, smeA)
	assert.True(t, SmeCreate(sa))
	assert.True(t, SmeUpdate(sa, s))
	assert.False(t, SmeDelete(sa, s))

	other := Scope{VillageID: ptr(villageA), CommunityID: ptr(communityA), SmeID: ptr(smeB)}
	assert.False(t, SmeUpdate(sa, other))

	assert.True(t, SmeDelete(communityAdmin(villageA, communityA), s))
	assert.False(t, SmeDelete(communityAdmin(villageA, communityB), s))
}

func TestPlaceAndCategoryBroadGrant(t *testing.T) {
	// community_admin dicek terhadap village_id, bukan community_id —
	// admin komunitas lain dalam desa yang sama tetap boleh.
	s := Scope{VillageID: ptr(villageA), CommunityID: ptr(communityA)}
	otherCommunity := communityAdmin(villageA, communityB)

	assert.True(t, PlaceView(otherCommunity, s))
	assert.True(t, PlaceUpdate(otherCommunity, s))
	assert.True(t, CategoryView(otherCommunity, s))

	outsider := communityAdmin(villageB, communityB)
	assert.False(t, PlaceView(outsider, s))

	// create/delete tetap super/village admin saja
	assert.False(t, PlaceCreate(otherCommunity))
	assert.False(t, PlaceDelete(otherCommunity, s))
	assert.False(t, CategoryCreate(otherCommunity))
	assert.True(t, PlaceDelete(villageAdmin(villageA), s))
}

func TestViewAnyAsymmetry(t *testing.T) {
	// sme_admin boleh listing Article/Offer/Sme tapi TIDAK Category/Place,
	// meski single-record check bisa saja berbeda hasilnya.
	sa := smeAdmin(villageA, communityA, smeA)

	assert.True(t, ArticleViewAny(sa))
	assert.True(t, OfferViewAny(sa))
	assert.True(t, SmeViewAny(sa))
	assert.False(t, CategoryViewAny(sa))
	assert.False(t, PlaceViewAny(sa))
	assert.False(t, ExternalLinkViewAny(sa))
}

func TestOfferPolicy(t *testing.T) {
	s := scopeA()
	sa := smeAdmin(villageA, communityA, smeA)

	assert.True(t, OfferView(sa, s))
	assert.True(t, OfferDelete(sa, s))

	otherSme := Scope{VillageID: ptr(villageA), CommunityID: ptr(communityA), SmeID: ptr(smeB)}
	assert.False(t, OfferView(sa, otherSme))
	assert.False(t, OfferDelete(sa, otherSme))

	assert.True(t, OfferUpdate(communityAdmin(villageA, communityA), s))
	assert.False(t, OfferUpdate(communityAdmin(villageA, communityB), s))
}

func TestArticleSharedMediaPolicy(t *testing.T) {
	s := scopeA()
	sa := smeAdmin(villageA, communityA, smeA)

	assert.True(t, MediaView(sa, s))
	assert.True(t, MediaCreate(sa))
	assert.True(t, ArticleUpdate(sa, s))
	assert.False(t, ArticleDelete(sa, s)) // delete artikel butuh community admin ke atas
	assert.True(t, ArticleDelete(communityAdmin(villageA, communityA), s))
}

func TestNilScopeNeverMatches(t *testing.T) {
	empty := Scope{}
	assert.False(t, CommunityView(villageAdmin(villageA), empty))
	assert.False(t, OfferView(smeAdmin(villageA, communityA, smeA), empty))
	assert.True(t, CommunityView(superAdmin(), empty))
}
