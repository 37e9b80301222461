package skill

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

// SkillHandler handles skill-related requests
type SkillHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// SkillRequest represents the create/update payload for a skill
type SkillRequest struct {
	Name       string `json:"name" form:"name" validate:"required,max=100"`
	Category   string `json:"category" form:"category" validate:"required,max=50"`
	Level      int    `json:"level" form:"level" validate:"gte=0,lte=100"`
	OrderIndex int    `json:"order_index" form:"order_index"`
}

// List handles GET /api/v1/skills, grouped by category
func (h *SkillHandler) List(c *fiber.Ctx) error {
	grouped, err := GroupedByCategory(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch skills")
	}

	return response.Success(c, grouped)
}

// AdminList handles GET /api/v1/admin/skills as a flat ordered list
func (h *SkillHandler) AdminList(c *fiber.Ctx) error {
	var skills []model.Skill
	if err := h.db.Order("category, order_index").Find(&skills).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch skills")
	}

	return response.Success(c, skills)
}

// Create handles POST /api/v1/admin/skills
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	skill := model.Skill{
		Name:       validation.SanitizeString(req.Name),
		Category:   validation.SanitizeString(req.Category),
		Level:      req.Level,
		OrderIndex: req.OrderIndex,
	}

	if err := h.db.Create(&skill).Error; err != nil {
		return response.InternalServerError(c, "Failed to create skill")
	}

	return response.Created(c, skill)
}

// Update handles PUT /api/v1/admin/skills/:id
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var skill model.Skill
	if err := h.db.First(&skill, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Skill not found")
		}
		return response.InternalServerError(c, "Failed to fetch skill")
	}

	var req SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	skill.Name = validation.SanitizeString(req.Name)
	skill.Category = validation.SanitizeString(req.Category)
	skill.Level = req.Level
	skill.OrderIndex = req.OrderIndex

	if err := h.db.Save(&skill).Error; err != nil {
		return response.InternalServerError(c, "Failed to update skill")
	}

	return response.SuccessWithMessage(c, "Skill updated successfully", skill)
}

// Delete handles DELETE /api/v1/admin/skills/:id
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var skill model.Skill
	if err := h.db.First(&skill, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Skill not found")
		}
		return response.InternalServerError(c, "Failed to fetch skill")
	}

	if err := h.db.Delete(&skill).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete skill")
	}

	return response.SuccessWithMessage(c, "Skill deleted successfully", fiber.Map{"id": skill.ID})
}

// GroupedByCategory maps category names to ordered skill entries, shared with
// the home page view
func GroupedByCategory(db *gorm.DB) (map[string][]fiber.Map, error) {
	var skills []model.Skill
	if err := db.Order("category, order_index").Find(&skills).Error; err != nil {
		return nil, err
	}

	grouped := make(map[string][]fiber.Map)
	for _, s := range skills {
		grouped[s.Category] = append(grouped[s.Category], fiber.Map{
			"name":  s.Name,
			"level": s.Level,
		})
	}
	return grouped, nil
}
