package database

import (
	"fmt"
	"log"

	"github.com/shawaizdev/portfolio-api/config"
	"github.com/shawaizdev/portfolio-api/model"
	"github.com/shawaizdev/portfolio-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedSiteSettings(); err != nil {
		return fmt.Errorf("failed to seed site settings: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin account on first run. Credentials
// come from the environment, never from source.
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return nil
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	if getEnv.ADMIN_USERNAME == "" || getEnv.ADMIN_EMAIL == "" || getEnv.ADMIN_PASSWORD == "" {
		log.Println("ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(getEnv.ADMIN_PASSWORD)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.AdminUser{
		Username:     getEnv.ADMIN_USERNAME,
		Email:        getEnv.ADMIN_EMAIL,
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Created default admin user: %s\n", admin.Username)
	return nil
}

// SeedSiteSettings inserts default values for site settings that are absent
func (s *Seeder) SeedSiteSettings() error {
	defaults := map[string]string{
		"site_title":       "Portfolio",
		"site_description": "",
		"hero_title":       "Hi, welcome to my portfolio",
		"hero_subtitle":    "I build things for the web.",
		"about_text":       "",
		"contact_email":    "",
		"github_url":       "",
		"linkedin_url":     "",
		"twitter_url":      "",
	}

	for key, value := range defaults {
		var count int64
		if err := s.db.Model(&model.SiteSetting{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&model.SiteSetting{Key: key, Value: value}).Error; err != nil {
			return err
		}
	}

	return nil
}
