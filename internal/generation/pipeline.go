package generation

import (
	"context"
	"log/slog"
	"strings"

	"arcana/internal/observability"
	"arcana/internal/prompt"
)

// Result is what the pipeline hands back to its caller. Provider failures are
// absorbed: Interpretation carries a user-safe explanatory string instead, so
// a failed generation never surfaces as a hard error to the end user.
type Result struct {
	Interpretation string `json:"interpretation"`
}

// Pipeline resolves a task's template, renders it against typed input, and
// invokes the provider.
type Pipeline struct {
	resolver *prompt.Resolver
	provider Provider
	logger   *observability.Logger
}

// NewPipeline creates a generation pipeline.
func NewPipeline(resolver *prompt.Resolver, provider Provider) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		provider: provider,
		logger:   observability.GlobalLogger,
	}
}

// Generate runs the full pipeline for taskName. Guest callers get the
// short-form template branch; the switch happens at render time, before the
// provider call, never by truncating provider output. Generate never returns
// an error: every failure path degrades to readable text.
func (p *Pipeline) Generate(ctx context.Context, taskName string, bindings prompt.Bindings, isGuestCaller bool) Result {
	resolved := p.resolver.Resolve(ctx, taskName)

	merged := prompt.Bindings{"isGuestUser": isGuestCaller}
	for k, v := range bindings {
		merged[k] = v
	}
	rendered := prompt.Render(resolved.Template, merged)

	resp, err := p.provider.Generate(ctx, Request{
		Prompt:         rendered,
		Model:          resolved.Model,
		SafetySettings: resolved.SafetySettings,
	})
	if err != nil {
		kind := Classify(err)
		p.logger.Warn("generation provider error",
			slog.String("task", taskName),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		observability.GenerationRequests.WithLabelValues(taskName, string(kind)).Inc()
		return Result{Interpretation: Message(kind)}
	}

	if kind := classifyFinishReason(resp.FinishReason); kind != KindOK {
		observability.GenerationRequests.WithLabelValues(taskName, string(kind)).Inc()
		return Result{Interpretation: Message(kind)}
	}

	if strings.TrimSpace(resp.Text) == "" {
		observability.GenerationRequests.WithLabelValues(taskName, string(KindEmpty)).Inc()
		return Result{Interpretation: Message(KindEmpty)}
	}

	observability.GenerationRequests.WithLabelValues(taskName, string(KindOK)).Inc()
	return Result{Interpretation: resp.Text}
}
