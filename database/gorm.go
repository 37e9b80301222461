package database

import (
	"fmt"
	"log"
	"time"

	"github.com/shawaizdev/portfolio-api/config"
	"github.com/shawaizdev/portfolio-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the persistence interface handed to the router and handlers
type Storage interface {
	Init() error
	Close() error
	HealthCheck() error
	GetDB() interface{}
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM opens the database connection. PostgreSQL is used when DB_NAME is
// configured, otherwise the file-backed SQLite store at SQLITE_PATH.
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	gormConfig := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: false,
		PrepareStmt:            true, // Prepare statements for better performance
	}

	var db *gorm.DB
	if getEnv.DB_NAME != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			getEnv.DB_HOST,
			getEnv.DB_USER_NAME,
			getEnv.DB_PASSWORD,
			getEnv.DB_NAME,
			getEnv.DB_PORT,
			getEnv.DB_SSL_MODE,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	} else {
		log.Println("DB_NAME not set, falling back to SQLite at", getEnv.SQLITE_PATH)
		db, err = gorm.Open(sqlite.Open(getEnv.SQLITE_PATH), gormConfig)
	}
	if err != nil {
		log.Println("Unable to connect to database with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings, recycle connections every 5 minutes
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// Liveness check before use
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to database with GORM.")

	return &GORMStore{db: db}, nil
}

// NewGORMStore wraps an existing connection, used by tests
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	err := s.db.AutoMigrate(
		// Admin identity and session revocation
		&model.AdminUser{},
		&model.RevokedToken{},

		// Content entities
		&model.Project{},
		&model.Skill{},
		&model.Experience{},
		&model.Certificate{},
		&model.BlogPost{},
		&model.Testimonial{},

		// Public submissions
		&model.ContactMessage{},

		// Site settings key-value store
		&model.SiteSetting{},
	)

	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing database connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
