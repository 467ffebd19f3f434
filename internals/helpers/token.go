// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartvillage_backend/internals/policy"
)

// Semua getter di bawah membaca locals yang diisi AuthMiddleware.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, _ := c.Locals("user_role").(string)
	if strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role tidak ditemukan di token")
	}
	return role, nil
}

func localUUIDPtr(c *fiber.Ctx, key string) *uuid.UUID {
	raw, _ := c.Locals(key).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// GetActorFromToken merakit policy.Actor dari locals (role + scope IDs).
func GetActorFromToken(c *fiber.Ctx) (policy.Actor, error) {
	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return policy.Actor{}, err
	}
	role, err := GetRoleFromToken(c)
	if err != nil {
		return policy.Actor{}, err
	}
	return policy.Actor{
		UserID:      userID,
		Role:        role,
		VillageID:   localUUIDPtr(c, "village_id"),
		CommunityID: localUUIDPtr(c, "community_id"),
		SmeID:       localUUIDPtr(c, "sme_id"),
	}, nil
}
