package server

import (
	"arcana/internal/generation"
	"arcana/internal/middleware"
	"arcana/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GenerateTarot handles POST /api/generate/tarot. Guests are allowed; they
// get the short-form interpretation branch.
func (s *Server) GenerateTarot(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	var req generation.TarotInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}
	if req.Question == "" {
		return models.RespondWithError(c,
			models.NewFieldValidationError(map[string]string{
				"question": "질문을 입력해주세요.",
			}))
	}

	result := s.pipeline.Generate(c.UserContext(), models.TaskTarot, req.Bindings(), caller.ID == "")
	return c.JSON(result)
}

// GenerateDream handles POST /api/generate/dream.
func (s *Server) GenerateDream(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	var req generation.DreamInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}
	if req.DreamDescription == "" {
		return models.RespondWithError(c,
			models.NewFieldValidationError(map[string]string{
				"dream_description": "꿈 내용을 입력해주세요.",
			}))
	}

	result := s.pipeline.Generate(c.UserContext(), models.TaskDream, req.Bindings(), caller.ID == "")
	return c.JSON(result)
}
