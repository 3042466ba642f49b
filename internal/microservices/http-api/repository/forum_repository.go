package repository

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ForumRepository interface {
	CountPosts(ctx context.Context) (int64, error)
	ListPosts(ctx context.Context, limit, offset int) ([]models.ForumPost, error)
	Pinned(ctx context.Context, limit int) ([]models.ForumPost, error)
	GetPost(ctx context.Context, id int64) (*models.ForumPost, error)
	IncrementViews(ctx context.Context, id int64) error
	CreatePost(ctx context.Context, p *models.ForumPost) error
	Groups(ctx context.Context, limit int) ([]models.ForumGroup, error)
	GroupExists(ctx context.Context, id int64) (bool, error)
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

// pinned posts first, then newest
const forumPostOrder = "is_pinned DESC, created_at DESC, id DESC"

func (r *forumRepository) CountPosts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ForumPost{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count forum posts: %w", err)
	}
	return total, nil
}

func (r *forumRepository) ListPosts(ctx context.Context, limit, offset int) ([]models.ForumPost, error) {
	var list []models.ForumPost
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ForumGroup").
		Order(forumPostOrder).
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list forum posts: %w", err)
	}
	return list, nil
}

func (r *forumRepository) Pinned(ctx context.Context, limit int) ([]models.ForumPost, error) {
	var list []models.ForumPost
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_pinned = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("pinned forum posts: %w", err)
	}
	return list, nil
}

func (r *forumRepository) GetPost(ctx context.Context, id int64) (*models.ForumPost, error) {
	var p models.ForumPost
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ForumGroup").
		First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// IncrementViews bumps the counter in the store so concurrent views never
// overwrite each other.
func (r *forumRepository) IncrementViews(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.ForumPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *forumRepository) CreatePost(ctx context.Context, p *models.ForumPost) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if missingReference(err) {
			return ErrNotFound
		}
		return fmt.Errorf("create forum post: %w", err)
	}
	return nil
}

// Groups lists groups by display order; limit <= 0 means all of them.
func (r *forumRepository) Groups(ctx context.Context, limit int) ([]models.ForumGroup, error) {
	var list []models.ForumGroup
	db := r.db.WithContext(ctx).Order("display_order asc, id asc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list forum groups: %w", err)
	}
	return list, nil
}

func (r *forumRepository) GroupExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ForumGroup{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check forum group: %w", err)
	}
	return count > 0, nil
}
