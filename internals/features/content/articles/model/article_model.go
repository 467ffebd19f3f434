// file: internals/features/content/articles/model/article_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ArticleModel: artikel/berita. Scope minimal desa; community/sme opsional
// kalau artikel ditulis atas nama komunitas atau UMKM.
type ArticleModel struct {
	ArticleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"article_id"`

	// Scope
	ArticleVillageID   uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_article_village_slug" json:"article_village_id"`
	ArticleCommunityID *uuid.UUID `gorm:"type:uuid;index" json:"article_community_id,omitempty"`
	ArticleSmeID       *uuid.UUID `gorm:"type:uuid;index" json:"article_sme_id,omitempty"`
	ArticleCategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"article_category_id,omitempty"`

	// Konten
	ArticleTitle   string         `gorm:"type:varchar(200);not null" json:"article_title"`
	ArticleSlug    string         `gorm:"type:varchar(220);not null;uniqueIndex:idx_article_village_slug" json:"article_slug"`
	ArticleContent string         `gorm:"type:text;not null" json:"article_content"`
	ArticleTags    pq.StringArray `gorm:"type:text[]" json:"article_tags,omitempty"`

	// Media
	ArticleImageURL *string `gorm:"type:text" json:"article_image_url,omitempty"`

	ArticleIsPublished bool       `gorm:"not null;default:false" json:"article_is_published"`
	ArticlePublishedAt *time.Time `json:"article_published_at,omitempty"`

	// Audit
	ArticleCreatedBy uuid.UUID      `gorm:"type:uuid" json:"article_created_by"`
	ArticleCreatedAt time.Time      `gorm:"autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"article_updated_at"`
	ArticleDeletedAt gorm.DeletedAt `gorm:"index" json:"article_deleted_at,omitempty"`
}

func (ArticleModel) TableName() string { return "articles" }
