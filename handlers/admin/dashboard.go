package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/response"
	"gorm.io/gorm"
)

// RecentMessageLimit caps the dashboard's recent message list
const RecentMessageLimit = 5

// Dashboard handles GET /api/v1/admin/dashboard with content statistics
func Dashboard(c *fiber.Ctx, db *gorm.DB) error {
	var stats struct {
		Projects       int64 `json:"projects"`
		BlogPosts      int64 `json:"blog_posts"`
		UnreadMessages int64 `json:"messages"`
		Skills         int64 `json:"skills"`
	}

	if err := db.Model(&model.Project{}).Count(&stats.Projects).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}
	if err := db.Model(&model.BlogPost{}).Count(&stats.BlogPosts).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}
	if err := db.Model(&model.ContactMessage{}).Where("is_read = ?", false).Count(&stats.UnreadMessages).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}
	if err := db.Model(&model.Skill{}).Count(&stats.Skills).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch statistics")
	}

	var recentMessages []model.ContactMessage
	if err := db.Order("created_at DESC").Limit(RecentMessageLimit).Find(&recentMessages).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch recent messages")
	}

	return response.Success(c, fiber.Map{
		"stats":           stats,
		"recent_messages": recentMessages,
	})
}
