package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/auth"
	"gorm.io/gorm"
)

// SessionCookieName is the cookie carrying the admin session token
const SessionCookieName = "admin_token"

// AuthMiddleware guards admin routes with session token authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	blacklist  *auth.BlacklistService
	db         *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, blacklist *auth.BlacklistService, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
		db:         db,
	}
}

// Required rejects unauthenticated requests. The 401 payload carries the
// originally requested path as "next" so clients can return to it after login.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return m.unauthorized(c, "Please log in to access the admin panel")
		}

		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return m.unauthorized(c, "Session has expired, please log in again")
			}
			return m.unauthorized(c, "Invalid session token")
		}

		// Logout revokes tokens by JTI before they expire
		isRevoked, err := m.blacklist.IsTokenRevoked(c.Context(), claims.ID)
		if err != nil {
			return m.unauthorized(c, "Invalid session token")
		}
		if isRevoked {
			return m.unauthorized(c, "Session has ended, please log in again")
		}

		// The account may have been deleted since the token was issued
		var admin model.AdminUser
		if err := m.db.First(&admin, claims.AdminID).Error; err != nil {
			return m.unauthorized(c, "Account no longer exists")
		}

		c.Locals("admin", &admin)
		c.Locals("admin_id", admin.ID)
		c.Locals("claims", claims)

		return c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	// A malformed or absent Authorization header falls through to the
	// session cookie
	return c.Cookies(SessionCookieName)
}

func (m *AuthMiddleware) unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"next": c.OriginalURL(),
	})
}

// GetAdmin extracts the authenticated admin from context
func GetAdmin(c *fiber.Ctx) (*model.AdminUser, bool) {
	admin := c.Locals("admin")
	if admin == nil {
		return nil, false
	}
	a, ok := admin.(*model.AdminUser)
	return a, ok
}

// GetAdminID extracts the authenticated admin ID from context
func GetAdminID(c *fiber.Ctx) (uint, bool) {
	id := c.Locals("admin_id")
	if id == nil {
		return 0, false
	}
	adminID, ok := id.(uint)
	return adminID, ok
}
