package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/auth"
	"github.com/shawaizdev/portfolio-api/utils/middleware"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"gorm.io/gorm"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *auth.JWTManager
	blacklist            *auth.BlacklistService
	bruteForceProtection *middleware.BruteForceProtection
	sessionExpiry        time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager, blacklist *auth.BlacklistService, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		blacklist:            blacklist,
		bruteForceProtection: bruteForceProtection,
		sessionExpiry:        24 * time.Hour,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Admin     AdminResponse `json:"admin"`
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expires_in"` // in seconds
	Next      string        `json:"next,omitempty"`
}

// AdminResponse is the admin account shape returned to clients
type AdminResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Please enter both username and password")
	}

	ip := c.IP()

	var admin model.AdminUser
	if err := h.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		// Record failed attempt even if user not found
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	if err := auth.VerifyPassword(admin.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.jwtManager.GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		return response.InternalServerError(c, "Failed to create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionExpiry),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	res := LoginResponse{
		Admin: AdminResponse{
			ID:        admin.ID,
			Username:  admin.Username,
			Email:     admin.Email,
			CreatedAt: admin.CreatedAt,
		},
		Token:     token,
		ExpiresIn: int(h.sessionExpiry.Seconds()),
		// Echo the post-login redirect target preserved by the auth middleware
		Next: c.Query("next"),
	}

	return response.Success(c, res)
}

// Logout handles GET /admin/logout, revoking the session token and expiring
// the cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if claims, ok := c.Locals("claims").(*auth.Claims); ok {
		expiresAt := time.Now().Add(h.sessionExpiry)
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		if err := h.blacklist.RevokeToken(c.Context(), claims.ID, claims.AdminID, expiresAt); err != nil {
			return response.InternalServerError(c, "Failed to end session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// Me handles GET /admin/me, returning the authenticated account
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, AdminResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	})
}
