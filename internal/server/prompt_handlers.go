package server

import (
	"arcana/internal/models"
	"arcana/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPromptConfig handles GET /api/admin/prompts/:task
func (s *Server) GetPromptConfig(c *fiber.Ctx) error {
	config, err := s.promptService.GetPromptConfig(c.UserContext(), c.Params("task"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(config)
}

// UpsertPromptConfig handles PUT /api/admin/prompts/:task
func (s *Server) UpsertPromptConfig(c *fiber.Ctx) error {
	var req struct {
		Template       string                 `json:"template"`
		Model          string                 `json:"model"`
		SafetySettings []models.SafetySetting `json:"safety_settings"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}

	config, err := s.promptService.UpsertPromptConfig(c.UserContext(), service.UpsertPromptConfigInput{
		TaskName:       c.Params("task"),
		Template:       req.Template,
		Model:          req.Model,
		SafetySettings: req.SafetySettings,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return ok(c, config.ID)
}
