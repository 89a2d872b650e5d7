package repository

import (
	"context"
	"time"

	"arcana/internal/cache"
	"arcana/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
// Creates and deletes adjust the parent post's comment_count inside the same
// transaction, so the counter can never drift from the live comment count.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	GetByID(ctx context.Context, postID, commentID string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, postID, commentID, content string) error
	Delete(ctx context.Context, postID, commentID string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByPost returns a post's comments ordered oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		First(&comment, "id = ? AND post_id = ?", commentID, postID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts the comment and increments the parent's comment_count by
// exactly one in a single transaction. The parent's existence is verified
// inside the transaction; a missing parent surfaces as gorm.ErrRecordNotFound.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.Post
		if err := tx.Select("id").First(&parent, "id = ?", comment.PostID).Error; err != nil {
			return err
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumns(touchUpdatedAt(map[string]interface{}{
				"comment_count": gorm.Expr("comment_count + ?", 1),
			}))
		if res.Error != nil {
			return res.Error
		}
		// The parent can vanish between the existence check and this update
		// when a cascade delete commits in between. A zero-row update means
		// the parent is gone; roll the insert back so the comment cannot
		// outlive its post.
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	return nil
}

// Update replaces the comment content in place and bumps updated_at. The
// counter is untouched.
func (r *commentRepository) Update(ctx context.Context, postID, commentID, content string) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND post_id = ?", commentID, postID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		}).Error
}

// Delete removes the comment and decrements the parent's comment_count by
// exactly one in a single transaction.
func (r *commentRepository) Delete(ctx context.Context, postID, commentID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Comment{}, "id = ? AND post_id = ?", commentID, postID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).Error
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(postID))
	return nil
}
