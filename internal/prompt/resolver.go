package prompt

import (
	"context"
	"log/slog"
	"strings"

	"arcana/internal/models"
	"arcana/internal/observability"
	"arcana/internal/repository"
)

// Resolved is the effective configuration for one generation task.
type Resolved struct {
	Template       string
	Model          string
	SafetySettings models.SafetySettings
}

// Resolver turns a task name into a usable template plus provider
// configuration. Resolution is total: operator misconfiguration (missing row,
// blank template, malformed thresholds) degrades to compiled-in defaults
// rather than failing, so generation is never blocked by bad config.
type Resolver struct {
	configs      repository.PromptConfigRepository
	defaultModel string
	logger       *observability.Logger
}

// NewResolver creates a Resolver backed by the given config repository.
// defaultModel is the deployment-wide model used when a task has no stored
// override; blank falls back to the compiled-in default.
func NewResolver(configs repository.PromptConfigRepository, defaultModel string) *Resolver {
	if strings.TrimSpace(defaultModel) == "" {
		defaultModel = DefaultModel
	}
	return &Resolver{
		configs:      configs,
		defaultModel: defaultModel,
		logger:       observability.GlobalLogger,
	}
}

// Resolve returns the effective template and provider settings for taskName.
// It never returns an error and never returns an empty template.
func (r *Resolver) Resolve(ctx context.Context, taskName string) Resolved {
	resolved := Resolved{
		Template:       DefaultTemplate(taskName),
		Model:          r.defaultModel,
		SafetySettings: DefaultSafetySettings(),
	}

	config, err := r.configs.GetByTask(ctx, taskName)
	if err != nil {
		// Missing row and infra failure degrade identically to defaults.
		return resolved
	}

	if strings.TrimSpace(config.Template) != "" {
		resolved.Template = config.Template
	} else {
		r.logger.Warn("stored prompt template is blank, using default",
			slog.String("task", taskName))
	}

	if strings.TrimSpace(config.Model) != "" {
		resolved.Model = config.Model
	}

	if valid := validSettings(config.SafetySettings); len(valid) > 0 {
		resolved.SafetySettings = valid
	}

	return resolved
}

// validSettings keeps well-formed threshold entries and drops the rest.
func validSettings(settings models.SafetySettings) models.SafetySettings {
	var valid models.SafetySettings
	for _, s := range settings {
		if strings.TrimSpace(s.Category) == "" || strings.TrimSpace(s.Threshold) == "" {
			continue
		}
		valid = append(valid, s)
	}
	return valid
}
