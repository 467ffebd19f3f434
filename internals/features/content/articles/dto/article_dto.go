// file: internals/features/content/articles/dto/article_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smartvillage_backend/internals/features/content/articles/model"
	"smartvillage_backend/internals/policy"
)

type ArticleRequest struct {
	// Scope opsional di body; non-super dipaksa mengikuti token.
	ArticleVillageID   string `json:"article_village_id"`
	ArticleCommunityID string `json:"article_community_id"`
	ArticleSmeID       string `json:"article_sme_id"`
	ArticleCategoryID  string `json:"article_category_id" validate:"omitempty,uuid"`

	ArticleTitle   string   `json:"article_title" validate:"required,min=3,max=200"`
	ArticleSlug    string   `json:"article_slug" validate:"omitempty,max=220"`
	ArticleContent string   `json:"article_content" validate:"required"`
	ArticleTags    []string `json:"article_tags" validate:"omitempty,max=10,dive,max=40"`

	ArticleIsPublished bool `json:"article_is_published"`
}

// ToModel: scope mengikuti role aktor, bukan body.
//   - super_admin       : bebas menaruh village/community/sme dari body
//   - village_admin     : village dipaksa; community/sme dari body (opsional)
//   - community_admin   : village+community dipaksa; sme dari body
//   - sme_admin         : seluruh rantai dipaksa dari token
func (r *ArticleRequest) ToModel(a policy.Actor) model.ArticleModel {
	m := model.ArticleModel{
		ArticleTitle:       strings.TrimSpace(r.ArticleTitle),
		ArticleSlug:        strings.TrimSpace(r.ArticleSlug),
		ArticleContent:     r.ArticleContent,
		ArticleTags:        pq.StringArray(r.ArticleTags),
		ArticleIsPublished: r.ArticleIsPublished,
		ArticleCreatedBy:   a.UserID,
	}
	if id, err := uuid.Parse(strings.TrimSpace(r.ArticleCategoryID)); err == nil {
		m.ArticleCategoryID = &id
	}

	switch {
	case a.IsSuperAdmin():
		if id, err := uuid.Parse(strings.TrimSpace(r.ArticleVillageID)); err == nil {
			m.ArticleVillageID = id
		}
		m.ArticleCommunityID = parsePtr(r.ArticleCommunityID)
		m.ArticleSmeID = parsePtr(r.ArticleSmeID)
	case a.IsVillageAdmin():
		if a.VillageID != nil {
			m.ArticleVillageID = *a.VillageID
		}
		m.ArticleCommunityID = parsePtr(r.ArticleCommunityID)
		m.ArticleSmeID = parsePtr(r.ArticleSmeID)
	case a.IsCommunityAdmin():
		if a.VillageID != nil {
			m.ArticleVillageID = *a.VillageID
		}
		m.ArticleCommunityID = a.CommunityID
		m.ArticleSmeID = parsePtr(r.ArticleSmeID)
	default:
		if a.VillageID != nil {
			m.ArticleVillageID = *a.VillageID
		}
		m.ArticleCommunityID = a.CommunityID
		m.ArticleSmeID = a.SmeID
	}

	if m.ArticleIsPublished {
		now := time.Now()
		m.ArticlePublishedAt = &now
	}
	return m
}

type ArticleUpdateRequest struct {
	ArticleCategoryID *string `json:"article_category_id" validate:"omitempty,uuid"`

	ArticleTitle   *string   `json:"article_title" validate:"omitempty,min=3,max=200"`
	ArticleContent *string   `json:"article_content"`
	ArticleTags    *[]string `json:"article_tags" validate:"omitempty,max=10,dive,max=40"`

	ArticleIsPublished *bool `json:"article_is_published"`
}

func (r *ArticleUpdateRequest) Apply(m *model.ArticleModel) {
	if r.ArticleTitle != nil {
		if v := strings.TrimSpace(*r.ArticleTitle); v != "" {
			m.ArticleTitle = v
		}
	}
	if r.ArticleContent != nil && *r.ArticleContent != "" {
		m.ArticleContent = *r.ArticleContent
	}
	if r.ArticleTags != nil {
		m.ArticleTags = pq.StringArray(*r.ArticleTags)
	}
	if r.ArticleCategoryID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.ArticleCategoryID)); err == nil {
			m.ArticleCategoryID = &id
		}
	}
	if r.ArticleIsPublished != nil {
		wasPublished := m.ArticleIsPublished
		m.ArticleIsPublished = *r.ArticleIsPublished
		if m.ArticleIsPublished && !wasPublished {
			now := time.Now()
			m.ArticlePublishedAt = &now
		}
		if !m.ArticleIsPublished {
			m.ArticlePublishedAt = nil
		}
	}
}

type ArticleResponse struct {
	ArticleID          uuid.UUID  `json:"article_id"`
	ArticleVillageID   uuid.UUID  `json:"article_village_id"`
	ArticleCommunityID *uuid.UUID `json:"article_community_id,omitempty"`
	ArticleSmeID       *uuid.UUID `json:"article_sme_id,omitempty"`
	ArticleCategoryID  *uuid.UUID `json:"article_category_id,omitempty"`
	ArticleTitle       string     `json:"article_title"`
	ArticleSlug        string     `json:"article_slug"`
	ArticleContent     string     `json:"article_content"`
	ArticleTags        []string   `json:"article_tags"`
	ArticleImageURL    string     `json:"article_image_url"`
	ArticleIsPublished bool       `json:"article_is_published"`
	ArticlePublishedAt *time.Time `json:"article_published_at,omitempty"`
	ArticleCreatedBy   uuid.UUID  `json:"article_created_by"`
	ArticleCreatedAt   time.Time  `json:"article_created_at"`
	ArticleUpdatedAt   time.Time  `json:"article_updated_at"`
}

func FromModel(m *model.ArticleModel) ArticleResponse {
	img := ""
	if m.ArticleImageURL != nil {
		img = *m.ArticleImageURL
	}
	return ArticleResponse{
		ArticleID:          m.ArticleID,
		ArticleVillageID:   m.ArticleVillageID,
		ArticleCommunityID: m.ArticleCommunityID,
		ArticleSmeID:       m.ArticleSmeID,
		ArticleCategoryID:  m.ArticleCategoryID,
		ArticleTitle:       m.ArticleTitle,
		ArticleSlug:        m.ArticleSlug,
		ArticleContent:     m.ArticleContent,
		ArticleTags:        m.ArticleTags,
		ArticleImageURL:    img,
		ArticleIsPublished: m.ArticleIsPublished,
		ArticlePublishedAt: m.ArticlePublishedAt,
		ArticleCreatedBy:   m.ArticleCreatedBy,
		ArticleCreatedAt:   m.ArticleCreatedAt,
		ArticleUpdatedAt:   m.ArticleUpdatedAt,
	}
}

func FromModels(ms []model.ArticleModel) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

func parsePtr(s string) *uuid.UUID {
	if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
		return &id
	}
	return nil
}
