// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menyimpan token yang sudah di-logout / dicabut paksa
// (mis. ditolak domain guard). Dibersihkan periodik oleh scheduler.
type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"type:text;not null;uniqueIndex" json:"token_blacklist_token"`
	TokenBlacklistExpiresAt time.Time      `gorm:"not null;index" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"autoCreateTime" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"index" json:"token_blacklist_deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
