// file: internals/policy/place.go
package policy

// Tempat & kategori: sme_admin tidak ikut listing sama sekali, dan
// community_admin dicek terhadap village_id (grant lebar se-desa),
// bukan community_id.

func PlaceViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin()
}

func PlaceView(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	case a.IsCommunityAdmin():
		return sameVillage(a, s)
	}
	return false
}

func PlaceCreate(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin()
}

func PlaceUpdate(a Actor, s Scope) bool { return PlaceView(a, s) }

func PlaceDelete(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	}
	return false
}

// Kategori memakai bentuk yang sama persis dengan Place.

func CategoryViewAny(a Actor) bool          { return PlaceViewAny(a) }
func CategoryView(a Actor, s Scope) bool    { return PlaceView(a, s) }
func CategoryCreate(a Actor) bool           { return PlaceCreate(a) }
func CategoryUpdate(a Actor, s Scope) bool  { return PlaceUpdate(a, s) }
func CategoryDelete(a Actor, s Scope) bool  { return PlaceDelete(a, s) }

// ExternalLink nempel ke Place → ikut policy Place.

func ExternalLinkViewAny(a Actor) bool         { return PlaceViewAny(a) }
func ExternalLinkView(a Actor, s Scope) bool   { return PlaceView(a, s) }
func ExternalLinkCreate(a Actor) bool          { return PlaceCreate(a) }
func ExternalLinkUpdate(a Actor, s Scope) bool { return PlaceUpdate(a, s) }
func ExternalLinkDelete(a Actor, s Scope) bool { return PlaceDelete(a, s) }
