package site

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/handlers/skill"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"gorm.io/gorm"
)

// FeaturedProjectLimit caps the home page featured project list
const FeaturedProjectLimit = 3

// SiteHandler serves the public home and about page data
type SiteHandler struct {
	db       *gorm.DB
	settings *services.SettingsService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(db *gorm.DB, settings *services.SettingsService) *SiteHandler {
	return &SiteHandler{
		db:       db,
		settings: settings,
	}
}

// Home handles GET /api/v1/home
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	var featured []model.Project
	err := h.db.Where("is_featured = ?", true).
		Order("order_index").
		Limit(FeaturedProjectLimit).
		Find(&featured).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch featured projects")
	}

	skillsByCategory, err := skill.GroupedByCategory(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch skills")
	}

	return response.Success(c, fiber.Map{
		"hero_title":         h.settings.Get("hero_title", "Hi, welcome to my portfolio"),
		"hero_subtitle":      h.settings.Get("hero_subtitle", "I build things for the web."),
		"featured_projects":  featured,
		"skills_by_category": skillsByCategory,
	})
}

// About handles GET /api/v1/about
func (h *SiteHandler) About(c *fiber.Ctx) error {
	var experiences []model.Experience
	if err := h.db.Order("order_index DESC").Find(&experiences).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch experience entries")
	}

	var certificates []model.Certificate
	if err := h.db.Order("order_index DESC, issue_date DESC").Find(&certificates).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch certificates")
	}

	var testimonials []model.Testimonial
	if err := h.db.Order("order_index DESC, created_at DESC").Find(&testimonials).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch testimonials")
	}

	return response.Success(c, fiber.Map{
		"about_text":   h.settings.Get("about_text", ""),
		"experiences":  experiences,
		"certificates": certificates,
		"testimonials": testimonials,
	})
}
