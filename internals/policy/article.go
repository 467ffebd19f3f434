// file: internals/policy/article.go
package policy

// Artikel: semua role boleh listing; sme_admin hanya menyentuh artikel
// yang ber-scope sme miliknya.

func ArticleViewAny(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin() || a.IsSmeAdmin()
}

func ArticleView(a Actor, s Scope) bool {
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

func ArticleCreate(a Actor) bool {
	return a.IsSuperAdmin() || a.IsVillageAdmin() || a.IsCommunityAdmin() || a.IsSmeAdmin()
}

func ArticleUpdate(a Actor, s Scope) bool { return ArticleView(a, s) }

func ArticleDelete(a Actor, s Scope) bool {
	switch {
	case a.IsSuperAdmin():
		return true
	case a.IsVillageAdmin():
		return sameVillage(a, s)
	case a.IsCommunityAdmin():
		return sameCommunity(a, s)
	}
	return false
}

// Image & Media berbagi penugasan policy dengan Article (perpanjangan sme).

func MediaViewAny(a Actor) bool         { return ArticleViewAny(a) }
func MediaView(a Actor, s Scope) bool   { return ArticleView(a, s) }
func MediaCreate(a Actor) bool          { return ArticleCreate(a) }
func MediaUpdate(a Actor, s Scope) bool { return ArticleUpdate(a, s) }
func MediaDelete(a Actor, s Scope) bool { return ArticleView(a, s) }
