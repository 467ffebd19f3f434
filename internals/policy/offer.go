// file: internals/policy/offer.go
package policy

// Produk/penawaran UMKM: entity ber-scope sme penuh; sme_admin mengelola
// (termasuk delete) hanya milik sme-nya sendiri.

func OfferViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin() || a.IsSmeAdmin()
}

func OfferView(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	case a.IsCommunityAdmin():
		return sameCommunity(a, s)
	case a.IsSmeAdmin():
		return sameSme(a, s)
	}
	return false
}

func OfferCreate(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin() || a.IsSmeAdmin()
}

func OfferUpdate(a Actor, s Scope) bool { return OfferView(a, s) }

func OfferDelete(a Actor, s Scope) bool { return OfferView(a, s) }
