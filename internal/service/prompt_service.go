package service

import (
	"context"
	"errors"

	"arcana/internal/models"
	"arcana/internal/observability"
	"arcana/internal/repository"

	"gorm.io/gorm"
)

// PromptService exposes operator management of per-task prompt overrides.
// Reads for generation itself go through prompt.Resolver, not this service.
type PromptService struct {
	configs repository.PromptConfigRepository
	logger  *observability.RepoLogger
}

// UpsertPromptConfigInput carries an operator override for one task. Blank
// Template or Model fields are stored as-is; resolution falls back to
// defaults for whatever is blank.
type UpsertPromptConfigInput struct {
	TaskName       string
	Template       string
	Model          string
	SafetySettings []models.SafetySetting
}

func NewPromptService(configs repository.PromptConfigRepository) *PromptService {
	return &PromptService{
		configs: configs,
		logger:  observability.NewRepoLogger("prompt_configs"),
	}
}

// GetPromptConfig returns the stored override for a task, or NOT_FOUND when
// none has been written yet.
func (s *PromptService) GetPromptConfig(ctx context.Context, taskName string) (*models.PromptConfig, error) {
	if taskName != models.TaskTarot && taskName != models.TaskDream {
		return nil, models.NewValidationError("알 수 없는 작업입니다.")
	}
	config, err := s.configs.GetByTask(ctx, taskName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("프롬프트 설정을 찾을 수 없습니다.")
		}
		return nil, models.NewStoreUnavailableError(err)
	}
	return config, nil
}

// UpsertPromptConfig writes the override, keeping one row per task.
func (s *PromptService) UpsertPromptConfig(ctx context.Context, in UpsertPromptConfigInput) (*models.PromptConfig, error) {
	if in.TaskName != models.TaskTarot && in.TaskName != models.TaskDream {
		return nil, models.NewValidationError("알 수 없는 작업입니다.")
	}

	config := &models.PromptConfig{
		TaskName:       in.TaskName,
		Template:       in.Template,
		Model:          in.Model,
		SafetySettings: in.SafetySettings,
	}
	if err := s.configs.Upsert(ctx, config); err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "upsert")
	return config, nil
}
