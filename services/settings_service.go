package services

import (
	"errors"

	"github.com/shawaizdev/portfolio-api/model"
	"gorm.io/gorm"
)

// SettingsService is the typed accessor over the site_settings key-value store
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new settings service
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the stored value for key, or defaultValue if the key is absent
func (s *SettingsService) Get(key, defaultValue string) string {
	var setting model.SiteSetting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultValue
		}
		return defaultValue
	}
	return setting.Value
}

// Set upserts the value for key. Concurrent writes to the same key are
// last-write-wins.
func (s *SettingsService) Set(key, value string) error {
	var setting model.SiteSetting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&model.SiteSetting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&setting).Update("value", value).Error
}

// GetAll returns all settings as a key to value map
func (s *SettingsService) GetAll() (map[string]string, error) {
	var settings []model.SiteSetting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}
