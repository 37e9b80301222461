package experience

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ExperienceHandler handles work experience requests
type ExperienceHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// ExperienceRequest represents the create/update payload for an experience entry
type ExperienceRequest struct {
	JobTitle    string `json:"job_title" form:"job_title" validate:"required,max=255"`
	Company     string `json:"company" form:"company" validate:"required,max=255"`
	Location    string `json:"location" form:"location"`
	StartDate   string `json:"start_date" form:"start_date" validate:"required"`
	EndDate     string `json:"end_date" form:"end_date"`
	Description string `json:"description" form:"description"`
	IsCurrent   bool   `json:"is_current" form:"is_current"`
	OrderIndex  int    `json:"order_index" form:"order_index"`
}

// List handles GET /api/v1/admin/experience and feeds the public about page
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	var experiences []model.Experience
	if err := h.db.Order("order_index DESC").Find(&experiences).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch experience entries")
	}

	return response.Success(c, experiences)
}

// Create handles POST /api/v1/admin/experience
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var req ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	experience, err := h.fromRequest(req)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.db.Create(experience).Error; err != nil {
		return response.InternalServerError(c, "Failed to create experience entry")
	}

	return response.Created(c, experience)
}

// Update handles PUT /api/v1/admin/experience/:id
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.Experience
	if err := h.db.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Experience entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch experience entry")
	}

	var req ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	updated, err := h.fromRequest(req)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := h.db.Save(updated).Error; err != nil {
		return response.InternalServerError(c, "Failed to update experience entry")
	}

	return response.SuccessWithMessage(c, "Experience entry updated successfully", updated)
}

// Delete handles DELETE /api/v1/admin/experience/:id
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var experience model.Experience
	if err := h.db.First(&experience, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Experience entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch experience entry")
	}

	if err := h.db.Delete(&experience).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete experience entry")
	}

	return response.SuccessWithMessage(c, "Experience entry deleted successfully", fiber.Map{"id": experience.ID})
}

// fromRequest builds the entity from validated input. A current position
// never carries an end date.
func (h *ExperienceHandler) fromRequest(req ExperienceRequest) (*model.Experience, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if !req.IsCurrent && req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	return &model.Experience{
		JobTitle:    validation.SanitizeString(req.JobTitle),
		Company:     validation.SanitizeString(req.Company),
		Location:    req.Location,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
		IsCurrent:   req.IsCurrent,
		OrderIndex:  req.OrderIndex,
	}, nil
}
