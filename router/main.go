package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shawaizdev/portfolio-api/config"
	"github.com/shawaizdev/portfolio-api/database"
	"github.com/shawaizdev/portfolio-api/handlers"
	admin_handlers "github.com/shawaizdev/portfolio-api/handlers/admin"
	auth_handlers "github.com/shawaizdev/portfolio-api/handlers/auth"
	blog_handlers "github.com/shawaizdev/portfolio-api/handlers/blog"
	certificate_handlers "github.com/shawaizdev/portfolio-api/handlers/certificate"
	contact_handlers "github.com/shawaizdev/portfolio-api/handlers/contact"
	experience_handlers "github.com/shawaizdev/portfolio-api/handlers/experience"
	project_handlers "github.com/shawaizdev/portfolio-api/handlers/project"
	site_handlers "github.com/shawaizdev/portfolio-api/handlers/site"
	skill_handlers "github.com/shawaizdev/portfolio-api/handlers/skill"
	testimonial_handlers "github.com/shawaizdev/portfolio-api/handlers/testimonial"
	"github.com/shawaizdev/portfolio-api/services"
	"github.com/shawaizdev/portfolio-api/utils/auth"
	"github.com/shawaizdev/portfolio-api/utils/cache"
	"github.com/shawaizdev/portfolio-api/utils/middleware"
	"github.com/shawaizdev/portfolio-api/utils/validation"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, getEnv *config.EnviornmentVariable, redisCache *cache.RedisCache) {
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "portfolio-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: 24 * time.Hour, // Admin session expires in 24 hours
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Optional login brute-force protection, enabled only when Redis is
	// connected
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	blacklistService := auth.NewBlacklistService(db)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, blacklistService, db)

	// Services
	settingsService := services.NewSettingsService(db)
	emailService := services.NewEmailService(getEnv)
	uploadService := services.NewUploadService(getEnv.UPLOAD_DIR)
	validator := validation.NewValidator()

	// Handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, blacklistService, bruteForceProtection)
	siteHandler := site_handlers.NewSiteHandler(db, settingsService)
	projectHandler := project_handlers.NewProjectHandler(db, uploadService)
	skillHandler := skill_handlers.NewSkillHandler(db)
	experienceHandler := experience_handlers.NewExperienceHandler(db)
	certificateHandler := certificate_handlers.NewCertificateHandler(db, uploadService)
	blogHandler := blog_handlers.NewBlogHandler(db, uploadService)
	testimonialHandler := testimonial_handlers.NewTestimonialHandler(db)
	contactHandler := contact_handlers.NewContactHandler(db, settingsService, emailService)

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error { return handlers.HandleCheckHealth(c, store) })

	// API v1 group
	api := app.Group("/api/v1")

	// Public site routes
	api.Get("/home", siteHandler.Home)
	api.Get("/about", siteHandler.About)
	api.Get("/projects", projectHandler.List)
	api.Get("/projects/:id", projectHandler.Get)
	api.Get("/skills", skillHandler.List)
	api.Get("/blog", blogHandler.List)
	api.Get("/blog/:slug", blogHandler.GetBySlug)
	api.Post("/contact", contactHandler.Submit)

	// Admin login (public, optionally behind lockout checks)
	login := api.Group("/admin")
	if bruteForceProtection != nil {
		login.Post("/login", bruteForceProtection.CheckAttempt(), authHandler.Login)
	} else {
		login.Post("/login", authHandler.Login)
	}

	// Admin panel (authenticated)
	admin := api.Group("/admin", authMiddleware.Required())
	admin.Get("/logout", authHandler.Logout)
	admin.Get("/me", authHandler.Me)
	admin.Get("/dashboard", func(c *fiber.Ctx) error { return admin_handlers.Dashboard(c, db) })

	// Project management
	admin.Get("/projects", projectHandler.AdminList)
	admin.Post("/projects", projectHandler.Create)
	admin.Put("/projects/:id", projectHandler.Update)
	admin.Delete("/projects/:id", projectHandler.Delete)

	// Blog management
	admin.Get("/blog", blogHandler.AdminList)
	admin.Post("/blog", blogHandler.Create)
	admin.Put("/blog/:id", blogHandler.Update)
	admin.Delete("/blog/:id", blogHandler.Delete)

	// Skill management
	admin.Get("/skills", skillHandler.AdminList)
	admin.Post("/skills", skillHandler.Create)
	admin.Put("/skills/:id", skillHandler.Update)
	admin.Delete("/skills/:id", skillHandler.Delete)

	// Experience management
	admin.Get("/experience", experienceHandler.List)
	admin.Post("/experience", experienceHandler.Create)
	admin.Put("/experience/:id", experienceHandler.Update)
	admin.Delete("/experience/:id", experienceHandler.Delete)

	// Certificate management
	admin.Get("/certificates", certificateHandler.List)
	admin.Post("/certificates", certificateHandler.Create)
	admin.Put("/certificates/:id", certificateHandler.Update)
	admin.Delete("/certificates/:id", certificateHandler.Delete)

	// Testimonial management
	admin.Get("/testimonials", testimonialHandler.List)
	admin.Post("/testimonials", testimonialHandler.Create)
	admin.Put("/testimonials/:id", testimonialHandler.Update)
	admin.Delete("/testimonials/:id", testimonialHandler.Delete)

	// Message inbox
	admin.Get("/messages", contactHandler.AdminList)
	admin.Post("/messages/:id/read", contactHandler.MarkRead)
	admin.Delete("/messages/:id", contactHandler.Delete)

	// Admin account management
	admin.Get("/admins", func(c *fiber.Ctx) error { return admin_handlers.ListAdmins(c, db) })
	admin.Post("/admins", func(c *fiber.Ctx) error { return admin_handlers.CreateAdmin(c, db, validator) })
	admin.Delete("/admins/:id", func(c *fiber.Ctx) error { return admin_handlers.DeleteAdmin(c, db) })

	// Site settings
	admin.Get("/settings", func(c *fiber.Ctx) error { return admin_handlers.GetSettings(c, settingsService) })
	admin.Put("/settings", func(c *fiber.Ctx) error { return admin_handlers.UpdateSettings(c, settingsService) })
}
