// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"smartvillage_backend/internals/configs"
	userModel "smartvillage_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// buildClaims menaruh identitas + scope role ke dalam token.
// Scope yang nil tidak ikut di-serialize (konsumen menyaring string kosong).
func buildClaims(u *userModel.UserModel, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(ttl).Unix(),
	}
	if u.UserVillageID != nil {
		claims["village_id"] = u.UserVillageID.String()
	}
	if u.UserCommunityID != nil {
		claims["community_id"] = u.UserCommunityID.String()
	}
	if u.UserSmeID != nil {
		claims["sme_id"] = u.UserSmeID.String()
	}
	return claims
}

func GenerateAccessToken(u *userModel.UserModel) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(u, AccessTokenTTL))
	return t.SignedString([]byte(configs.JWTSecret))
}

func GenerateRefreshToken(u *userModel.UserModel) (string, error) {
	claims := buildClaims(u, RefreshTokenTTL)
	claims["type"] = "refresh"
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan claims-nya.
func ParseRefreshToken(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
