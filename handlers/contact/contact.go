package contact

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

// AdminPageSize is the page size for the admin message listing
const AdminPageSize = 10

// ContactHandler handles the public contact form and the admin message inbox
type ContactHandler struct {
	db        *gorm.DB
	settings  *services.SettingsService
	email     *services.EmailService
	validator *validation.Validator
}

// NewContactHandler creates a new contact handler
func NewContactHandler(db *gorm.DB, settings *services.SettingsService, email *services.EmailService) *ContactHandler {
	return &ContactHandler{
		db:        db,
		settings:  settings,
		email:     email,
		validator: validation.NewValidator(),
	}
}

// ContactRequest represents a public contact form submission
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"max=255"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Submit handles POST /api/v1/contact. The message is always persisted; the
// email notification is best-effort and never blocks the acknowledgment.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	message := model.ContactMessage{
		Name:    validation.SanitizeString(req.Name),
		Email:   validation.SanitizeString(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.db.Create(&message).Error; err != nil {
		return response.InternalServerError(c, "Failed to save message")
	}

	contactEmail := h.settings.Get("contact_email", "")
	if contactEmail != "" && h.email.IsConfigured() {
		if err := h.email.SendContactNotification(contactEmail, req.Name, req.Email, req.Subject, req.Message); err != nil {
			log.Printf("Failed to send contact notification: %v", err)
		}
	}

	return response.SuccessWithMessage(c, "Thank you for your message! I'll get back to you soon.", fiber.Map{
		"id": message.ID,
	})
}

// AdminList handles GET /api/v1/admin/messages
func (h *ContactHandler) AdminList(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	var total int64
	if err := h.db.Model(&model.ContactMessage{}).Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count messages")
	}

	pagination := response.CalculatePagination(page, AdminPageSize, total)
	offset := (pagination.CurrentPage - 1) * AdminPageSize

	var messages []model.ContactMessage
	if err := h.db.Order("created_at DESC").
		Limit(AdminPageSize).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch messages")
	}

	return response.Paginated(c, messages, pagination)
}

// MarkRead handles POST /api/v1/admin/messages/:id/read
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")

	var message model.ContactMessage
	if err := h.db.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Message not found")
		}
		return response.InternalServerError(c, "Failed to fetch message")
	}

	if err := h.db.Model(&message).Update("is_read", true).Error; err != nil {
		return response.InternalServerError(c, "Failed to update message")
	}

	return response.SuccessWithMessage(c, "Message marked as read", message)
}

// Delete handles DELETE /api/v1/admin/messages/:id
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var message model.ContactMessage
	if err := h.db.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Message not found")
		}
		return response.InternalServerError(c, "Failed to fetch message")
	}

	if err := h.db.Delete(&message).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete message")
	}

	return response.SuccessWithMessage(c, "Message deleted successfully", fiber.Map{"id": message.ID})
}
