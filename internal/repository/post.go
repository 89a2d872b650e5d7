// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"arcana/internal/cache"
	"arcana/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListPage(ctx context.Context, category string, page, pageSize int) (*models.PostPage, error)
	IncrementViewCount(ctx context.Context, id string) error
	DeleteCascade(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidatePostLists(ctx, post.Category)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViewCount bumps view_count atomically. It runs outside any
// transaction: the caller dispatches it best-effort after a read and its
// failure or loss is acceptable.
func (r *postRepository) IncrementViewCount(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err == nil {
		cache.Invalidate(ctx, cache.PostKey(id))
	}
	return err
}

// DeleteCascade removes the post and every child comment in one transaction.
// Partial deletion is never observable: either the post and all its comments
// are gone, or nothing changed.
func (r *postRepository) DeleteCascade(ctx context.Context, id string) error {
	var category string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "category").First(&post, "id = ?", id).Error; err != nil {
			return err
		}
		category = post.Category
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id, category)
	return nil
}

// touchUpdatedAt is shared by comment mutations that bump the parent post.
func touchUpdatedAt(cols map[string]interface{}) map[string]interface{} {
	cols["updated_at"] = time.Now()
	return cols
}
