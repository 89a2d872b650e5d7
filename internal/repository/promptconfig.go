package repository

import (
	"context"
	"time"

	"arcana/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromptConfigRepository defines the interface for prompt configuration rows.
type PromptConfigRepository interface {
	GetByTask(ctx context.Context, taskName string) (*models.PromptConfig, error)
	Upsert(ctx context.Context, config *models.PromptConfig) error
}

type promptConfigRepository struct {
	db *gorm.DB
}

// NewPromptConfigRepository creates a new prompt config repository.
func NewPromptConfigRepository(db *gorm.DB) PromptConfigRepository {
	return &promptConfigRepository{db: db}
}

func (r *promptConfigRepository) GetByTask(ctx context.Context, taskName string) (*models.PromptConfig, error) {
	var config models.PromptConfig
	if err := r.db.WithContext(ctx).First(&config, "task_name = ?", taskName).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert writes the operator override for a task, keeping at most one live
// row per task name.
func (r *promptConfigRepository) Upsert(ctx context.Context, config *models.PromptConfig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PromptConfig
		err := tx.First(&existing, "task_name = ?", config.TaskName).Error
		switch {
		case err == nil:
			return tx.Model(&existing).Updates(map[string]interface{}{
				"template":        config.Template,
				"model":           config.Model,
				"safety_settings": config.SafetySettings,
				"updated_at":      time.Now(),
			}).Error
		case err == gorm.ErrRecordNotFound:
			if config.ID == "" {
				config.ID = uuid.NewString()
			}
			return tx.Create(config).Error
		default:
			return err
		}
	})
}
