package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shawaizdev/portfolio-api/api"
	"github.com/shawaizdev/portfolio-api/config"
	"github.com/shawaizdev/portfolio-api/database"
	"github.com/shawaizdev/portfolio-api/router"
	"github.com/shawaizdev/portfolio-api/utils/cache"
	"github.com/shawaizdev/portfolio-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Failed to connect to the database\n")
		print("If DB_NAME is set, check whether Postgres is running\n")
		print("Otherwise the SQLite file at SQLITE_PATH must be writable\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		print("Error running migrations:\n")
		return err
	}

	// Seed default admin account and site settings on first run
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("unexpected database handle type")
	}
	if err := database.NewSeeder(db).SeedAll(); err != nil {
		print("Warning: Failed to seed initial data\n")
		print("Error: ", err.Error(), "\n")
		// Don't fail the app, just log the warning
	}

	// Defer Closing DB
	defer store.Close()

	// Optional Redis connection for login brute-force protection
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Login lockouts will be disabled.", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})

	// Serve uploaded images
	app.Static("/uploads", getEnv.UPLOAD_DIR)

	// Setup Routes
	router.SetupRoutes(app, store, getEnv, redisCache)

	// Get the PORT & Start the Server
	return server.Run()

}
