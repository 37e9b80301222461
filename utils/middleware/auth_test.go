package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/auth"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestSetup(t *testing.T) (*fiber.App, *gorm.DB, *auth.JWTManager) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.AdminUser{}, &model.RevokedToken{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
	authMiddleware := NewAuthMiddleware(jwtManager, auth.NewBlacklistService(db), db)

	app := fiber.New()
	app.Get("/admin/dashboard", authMiddleware.Required(), func(c *fiber.Ctx) error {
		admin, _ := GetAdmin(c)
		return c.JSON(fiber.Map{"username": admin.Username})
	})

	return app, db, jwtManager
}

func seedAdmin(t *testing.T, db *gorm.DB) model.AdminUser {
	t.Helper()
	admin := model.AdminUser{
		Username:     "shawaiz",
		Email:        "shawaiz@example.com",
		PasswordHash: "irrelevant",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
	return admin
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	app, _, _ := newTestSetup(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("Status = %d, want 401", resp.StatusCode)
	}

	// The payload must preserve the original URL for post-login redirect
	var body struct {
		Next string `json:"next"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Next != "/admin/dashboard" {
		t.Errorf("next = %q, want %q", body.Next, "/admin/dashboard")
	}
}

func TestRequiredAcceptsCookieToken(t *testing.T) {
	app, db, jwtManager := newTestSetup(t)
	admin := seedAdmin(t, db)

	token, err := jwtManager.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Username != admin.Username {
		t.Errorf("Username = %q, want %q", body.Username, admin.Username)
	}
}

func TestRequiredAcceptsBearerToken(t *testing.T) {
	app, db, jwtManager := newTestSetup(t)
	admin := seedAdmin(t, db)

	token, err := jwtManager.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
}

func TestRequiredFallsBackToCookieOnMalformedHeader(t *testing.T) {
	app, db, jwtManager := newTestSetup(t)
	admin := seedAdmin(t, db)

	token, err := jwtManager.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	// A garbage Authorization header must not mask a valid session cookie
	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "NotBearer nonsense extra")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
}

func TestRequiredRejectsRevokedToken(t *testing.T) {
	app, db, jwtManager := newTestSetup(t)
	admin := seedAdmin(t, db)

	token, err := jwtManager.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	claims, err := jwtManager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	blacklist := auth.NewBlacklistService(db)
	if err := blacklist.RevokeToken(context.Background(), claims.ID, admin.ID, claims.ExpiresAt.Time); err != nil {
		t.Fatalf("RevokeToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", resp.StatusCode)
	}
}

func TestRequiredRejectsExpiredToken(t *testing.T) {
	app, db, _ := newTestSetup(t)
	admin := seedAdmin(t, db)

	expired := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: -time.Minute,
	})
	token, err := expired.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", resp.StatusCode)
	}
}

func TestRequiredRejectsTokenForDeletedAccount(t *testing.T) {
	app, db, jwtManager := newTestSetup(t)
	admin := seedAdmin(t, db)

	token, err := jwtManager.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if err := db.Delete(&admin).Error; err != nil {
		t.Fatalf("Failed to delete admin: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", resp.StatusCode)
	}
}
