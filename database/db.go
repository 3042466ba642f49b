// Package database opens the postgres connection and owns the schema.
package database

import (
	"context"
	"fmt"
	"time"

	"exlibris/internal/microservices/http-api/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Genre{},
		&models.Author{},
		&models.Book{},
		&models.Audiobook{},
		&models.ReadingChallenge{},
		&models.UserProfile{},
		&models.UserBookStatus{},
		&models.ForumGroup{},
		&models.ForumPost{},
		&models.RecommendationQuiz{},
		&models.QuizOption{},
		&models.MarqueeMessage{},
	}
}

// Open connects to postgres and verifies the connection.
func Open(ctx context.Context, dsn string, debug bool) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		// close the handle if ping fails to avoid leaking the pool
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Msg("Connected to the database successfully")
	return db, nil
}

// Migrate brings the schema up to date with the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info().Msg("Database migrations applied successfully")
	return nil
}

// Health pings the database with a short timeout.
func Health(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx)
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
