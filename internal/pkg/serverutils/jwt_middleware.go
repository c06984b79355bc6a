package serverutils

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// BlockedCheck reports whether the authenticated user is blocked. Wired once
// at startup; a nil check skips the lookup. Blocking takes effect on tokens
// issued before the block because every request re-checks.
var BlockedCheck func(ctx context.Context, userId uuid.UUID) (bool, error)

func isBlocked(ctx *fiber.Ctx, userIdClaim interface{}) bool {
	if BlockedCheck == nil {
		return false
	}
	userIdStr, _ := userIdClaim.(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return false
	}
	blocked, err := BlockedCheck(ctx.Context(), userId)
	return err == nil && blocked
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	if isBlocked(ctx, claims["user_id"]) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Account is blocked"})
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// OptionalJwtMiddleware resolves the user when a valid token is present but
// lets anonymous requests through. Used by the public video feed.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Next()
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err == nil && token.Valid {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if isBlocked(ctx, claims["user_id"]) {
				return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Account is blocked"})
			}
			ctx.Locals("user_id", claims["user_id"])
		}
	}
	return ctx.Next()
}

// GenerateToken issues a signed bearer token for the given user.
func GenerateToken(userId uuid.UUID, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// UserIdFromLocals reads the user id the jwt middleware stored on the context.
func UserIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
