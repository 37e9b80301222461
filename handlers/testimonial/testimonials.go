package testimonial

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

// TestimonialHandler handles testimonial requests, plain CRUD only
type TestimonialHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// TestimonialRequest represents the create/update payload for a testimonial
type TestimonialRequest struct {
	Name       string `json:"name" form:"name" validate:"required,max=100"`
	Role       string `json:"role" form:"role" validate:"max=100"`
	Quote      string `json:"quote" form:"quote" validate:"required"`
	OrderIndex int    `json:"order_index" form:"order_index"`
}

// List handles GET /api/v1/admin/testimonials
func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	var testimonials []model.Testimonial
	if err := h.db.Order("order_index DESC, created_at DESC").Find(&testimonials).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch testimonials")
	}

	return response.Success(c, testimonials)
}

// Create handles POST /api/v1/admin/testimonials
func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	var req TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial := model.Testimonial{
		Name:       validation.SanitizeString(req.Name),
		Role:       req.Role,
		Quote:      req.Quote,
		OrderIndex: req.OrderIndex,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to create testimonial")
	}

	return response.Created(c, testimonial)
}

// Update handles PUT /api/v1/admin/testimonials/:id
func (h *TestimonialHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	var req TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial.Name = validation.SanitizeString(req.Name)
	testimonial.Role = req.Role
	testimonial.Quote = req.Quote
	testimonial.OrderIndex = req.OrderIndex

	if err := h.db.Save(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to update testimonial")
	}

	return response.SuccessWithMessage(c, "Testimonial updated successfully", testimonial)
}

// Delete handles DELETE /api/v1/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	if err := h.db.Delete(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete testimonial")
	}

	return response.SuccessWithMessage(c, "Testimonial deleted successfully", fiber.Map{"id": testimonial.ID})
}
