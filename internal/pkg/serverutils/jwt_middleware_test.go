package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestJwtMiddlewareBlockedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userId := uuid.New()
	token, err := GenerateToken(userId, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	blocked := map[uuid.UUID]bool{userId: true}
	BlockedCheck = func(ctx context.Context, id uuid.UUID) (bool, error) {
		return blocked[id], nil
	}
	t.Cleanup(func() { BlockedCheck = nil })

	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403 while blocked", res.StatusCode)
	}

	blocked[userId] = false
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 once unblocked", res.StatusCode)
	}
}

func TestOptionalJwtMiddlewareBlockedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userId := uuid.New()
	token, err := GenerateToken(userId, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	BlockedCheck = func(ctx context.Context, id uuid.UUID) (bool, error) {
		return id == userId, nil
	}
	t.Cleanup(func() { BlockedCheck = nil })

	app := fiber.New()
	app.Get("/feed", OptionalJwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Anonymous requests pass untouched.
	res, err := app.Test(httptest.NewRequest("GET", "/feed", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("anonymous status = %d, want 200", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/feed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403 for a blocked token", res.StatusCode)
	}
}
