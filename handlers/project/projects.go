package project

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

// Page sizes for project listings
const (
	PublicPageSize = 9
	AdminPageSize  = 10
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	db        *gorm.DB
	uploads   *services.UploadService
	validator *validation.Validator
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(db *gorm.DB, uploads *services.UploadService) *ProjectHandler {
	return &ProjectHandler{
		db:        db,
		uploads:   uploads,
		validator: validation.NewValidator(),
	}
}

// ProjectRequest represents the create/update payload for a project
type ProjectRequest struct {
	Title            string `json:"title" form:"title" validate:"required,max=255"`
	ShortDescription string `json:"short_description" form:"short_description" validate:"required"`
	Description      string `json:"description" form:"description"`
	Category         string `json:"category" form:"category" validate:"required,max=50"`
	TechStack        string `json:"tech_stack" form:"tech_stack"`
	Tags             string `json:"tags" form:"tags"`
	GithubLink       string `json:"github_link" form:"github_link" validate:"omitempty,url"`
	LiveLink         string `json:"live_link" form:"live_link" validate:"omitempty,url"`
	IsFeatured       bool   `json:"is_featured" form:"is_featured"`
	OrderIndex       int    `json:"order_index" form:"order_index"`
}

// List handles GET /api/v1/projects with optional category filter
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	category := c.Query("category", "all")

	query := h.db.Model(&model.Project{})
	if category != "all" && category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count projects")
	}

	pagination := response.CalculatePagination(page, PublicPageSize, total)
	offset := (pagination.CurrentPage - 1) * PublicPageSize

	var projects []model.Project
	if err := query.Order("order_index DESC, created_at DESC").
		Limit(PublicPageSize).
		Offset(offset).
		Find(&projects).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch projects")
	}

	// Distinct categories for filter navigation
	var categories []string
	if err := h.db.Model(&model.Project{}).Distinct("category").Pluck("category", &categories).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch categories")
	}

	return response.Paginated(c, fiber.Map{
		"projects":         projects,
		"categories":       categories,
		"current_category": category,
	}, pagination)
}

// Get handles GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	var project model.Project
	if err := h.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to fetch project")
	}

	return response.Success(c, project)
}

// AdminList handles GET /api/v1/admin/projects
func (h *ProjectHandler) AdminList(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	var total int64
	if err := h.db.Model(&model.Project{}).Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count projects")
	}

	pagination := response.CalculatePagination(page, AdminPageSize, total)
	offset := (pagination.CurrentPage - 1) * AdminPageSize

	var projects []model.Project
	if err := h.db.Order("order_index DESC, created_at DESC").
		Limit(AdminPageSize).
		Offset(offset).
		Find(&projects).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch projects")
	}

	return response.Paginated(c, projects, pagination)
}

// Create handles POST /api/v1/admin/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	project := model.Project{
		Title:            validation.SanitizeString(req.Title),
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         validation.SanitizeString(req.Category),
		TechStack:        req.TechStack,
		Tags:             req.Tags,
		GithubLink:       req.GithubLink,
		LiveLink:         req.LiveLink,
		IsFeatured:       req.IsFeatured,
		OrderIndex:       req.OrderIndex,
	}

	if path, err := h.saveImage(c); err != nil {
		return response.BadRequest(c, err.Error())
	} else if path != "" {
		project.ImagePath = path
	}

	if err := h.db.Create(&project).Error; err != nil {
		return response.InternalServerError(c, "Failed to create project")
	}

	return response.Created(c, project)
}

// Update handles PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var project model.Project
	if err := h.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to fetch project")
	}

	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	project.Title = validation.SanitizeString(req.Title)
	project.ShortDescription = req.ShortDescription
	project.Description = req.Description
	project.Category = validation.SanitizeString(req.Category)
	project.TechStack = req.TechStack
	project.Tags = req.Tags
	project.GithubLink = req.GithubLink
	project.LiveLink = req.LiveLink
	project.IsFeatured = req.IsFeatured
	project.OrderIndex = req.OrderIndex

	if path, err := h.saveImage(c); err != nil {
		return response.BadRequest(c, err.Error())
	} else if path != "" {
		project.ImagePath = path
	}

	if err := h.db.Save(&project).Error; err != nil {
		return response.InternalServerError(c, "Failed to update project")
	}

	return response.SuccessWithMessage(c, "Project updated successfully", project)
}

// Delete handles DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var project model.Project
	if err := h.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to fetch project")
	}

	if err := h.db.Delete(&project).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete project")
	}

	return response.SuccessWithMessage(c, "Project deleted successfully", fiber.Map{"id": project.ID})
}

// saveImage stores an optional uploaded image and returns its relative path,
// or "" when the form carried no image
func (h *ProjectHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return h.uploads.SaveImage(file, "projects",
		services.ProjectImageMaxWidth, services.ProjectImageMaxHeight)
}
