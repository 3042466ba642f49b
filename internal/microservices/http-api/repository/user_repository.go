package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository mirrors externally issued identities into the users table.
type UserRepository interface {
	Ensure(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Ensure inserts the user or refreshes username and role when the id is
// already known.
func (r *userRepository) Ensure(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "role", "updated_at"}),
		}).
		Create(user).Error; err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}
