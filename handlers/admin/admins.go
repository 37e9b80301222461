package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/auth"
	"github.com/shawaizdev/portfolio-api/utils/middleware"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

// CreateAdminRequest represents the request body for creating an admin account
type CreateAdminRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// ListAdmins handles GET /api/v1/admin/admins
func ListAdmins(c *fiber.Ctx, db *gorm.DB) error {
	var admins []model.AdminUser
	if err := db.Order("created_at DESC").Find(&admins).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch admin users")
	}

	return response.Success(c, admins)
}

// CreateAdmin handles POST /api/v1/admin/admins, enforcing username/email
// uniqueness before insert
func CreateAdmin(c *fiber.Ctx, db *gorm.DB, validator *validation.Validator) error {
	var req CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if ok, msg := validation.ValidateUsername(req.Username); !ok {
		return response.BadRequest(c, msg)
	}

	var existing model.AdminUser
	err := db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		return response.Conflict(c, "Username or email already exists")
	}
	if err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Failed to check existing accounts")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	admin := model.AdminUser{
		Username:     validation.SanitizeString(req.Username),
		Email:        validation.SanitizeString(req.Email),
		PasswordHash: passwordHash,
	}

	if err := db.Create(&admin).Error; err != nil {
		return response.InternalServerError(c, "Failed to create admin user")
	}

	return response.Created(c, fiber.Map{
		"id":       admin.ID,
		"username": admin.Username,
		"email":    admin.Email,
	})
}

// DeleteAdmin handles DELETE /api/v1/admin/admins/:id. The currently
// authenticated account cannot delete itself.
func DeleteAdmin(c *fiber.Ctx, db *gorm.DB) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	currentID, ok := middleware.GetAdminID(c)
	if ok && currentID == uint(id) {
		return response.BadRequest(c, "You cannot delete your own account")
	}

	var admin model.AdminUser
	if err := db.First(&admin, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Admin user not found")
		}
		return response.InternalServerError(c, "Failed to fetch admin user")
	}

	if err := db.Delete(&admin).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete admin user")
	}

	return response.SuccessWithMessage(c, "Admin user deleted successfully", fiber.Map{"id": admin.ID})
}
