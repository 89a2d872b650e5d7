// Package generation renders prompts, invokes the text-generation provider,
// and absorbs provider failures into user-safe text.
package generation

import (
	"context"

	"arcana/internal/models"
	"arcana/internal/prompt"
)

// Request is a fully rendered generation request.
type Request struct {
	Prompt         string
	Model          string
	SafetySettings models.SafetySettings
}

// Response is the provider's raw output.
type Response struct {
	Text         string
	FinishReason string
}

// Provider is the outbound text-generation service. Implementations return
// provider errors as-is; classification happens in the pipeline.
type Provider interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// ClarificationQA is one answered follow-up question in a dream request.
type ClarificationQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TarotInput is the structured input for the tarot interpretation task.
type TarotInput struct {
	Question            string `json:"question"`
	CardSpread          string `json:"card_spread"`
	CardInterpretations string `json:"card_interpretations"`
}

// Bindings converts the input into template bindings.
func (in TarotInput) Bindings() prompt.Bindings {
	return prompt.Bindings{
		"question":            in.Question,
		"cardSpread":          in.CardSpread,
		"cardInterpretations": in.CardInterpretations,
	}
}

// DreamInput is the structured input for the dream interpretation task.
type DreamInput struct {
	DreamDescription string            `json:"dream_description"`
	Clarifications   []ClarificationQA `json:"clarifications,omitempty"`
	AdditionalInfo   string            `json:"additional_info,omitempty"`
	SajuInfo         string            `json:"saju_info,omitempty"`
}

// Bindings converts the input into template bindings.
func (in DreamInput) Bindings() prompt.Bindings {
	qas := make([]map[string]string, 0, len(in.Clarifications))
	for _, qa := range in.Clarifications {
		qas = append(qas, map[string]string{"question": qa.Question, "answer": qa.Answer})
	}
	return prompt.Bindings{
		"dreamDescription": in.DreamDescription,
		"clarifications":   qas,
		"additionalInfo":   in.AdditionalInfo,
		"sajuInfo":         in.SajuInfo,
	}
}
