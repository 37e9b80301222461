package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/response"
)

// SettingKeys are the site settings editable through the admin panel
var SettingKeys = []string{
	"site_title",
	"site_description",
	"hero_title",
	"hero_subtitle",
	"about_text",
	"contact_email",
	"github_url",
	"linkedin_url",
	"twitter_url",
}

// GetSettings handles GET /api/v1/admin/settings
func GetSettings(c *fiber.Ctx, settings *services.SettingsService) error {
	stored, err := settings.GetAll()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch settings")
	}

	// Unset keys still appear in the payload with empty values
	values := make(map[string]string, len(SettingKeys))
	for _, key := range SettingKeys {
		values[key] = stored[key]
	}

	return response.Success(c, values)
}

// UpdateSettings handles PUT /api/v1/admin/settings, upserting every known
// key present in the payload
func UpdateSettings(c *fiber.Ctx, settings *services.SettingsService) error {
	var req map[string]string
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	for _, key := range SettingKeys {
		value, ok := req[key]
		if !ok {
			continue
		}
		if err := settings.Set(key, value); err != nil {
			return response.InternalServerError(c, "Failed to update settings")
		}
	}

	return response.SuccessWithMessage(c, "Settings updated successfully", nil)
}
