package repository

import (
	"context"

	"arcana/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxReadingsPerList caps every readings listing regardless of the caller's
// requested size.
const maxReadingsPerList = 50

// ReadingRepository defines the interface for saved-reading data operations.
type ReadingRepository interface {
	Create(ctx context.Context, reading *models.SavedReading) error
	GetByID(ctx context.Context, id string) (*models.SavedReading, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.SavedReading, error)
	Delete(ctx context.Context, id string) error
}

type readingRepository struct {
	db *gorm.DB
}

// NewReadingRepository creates a new saved-reading repository.
func NewReadingRepository(db *gorm.DB) ReadingRepository {
	return &readingRepository{db: db}
}

func (r *readingRepository) Create(ctx context.Context, reading *models.SavedReading) error {
	if reading.ID == "" {
		reading.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *readingRepository) GetByID(ctx context.Context, id string) (*models.SavedReading, error) {
	var reading models.SavedReading
	if err := r.db.WithContext(ctx).First(&reading, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reading, nil
}

// ListByUser returns the user's readings newest first, capped at 50.
func (r *readingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.SavedReading, error) {
	if limit <= 0 || limit > maxReadingsPerList {
		limit = maxReadingsPerList
	}
	var readings []*models.SavedReading
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *readingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.SavedReading{}, "id = ?", id).Error
}
