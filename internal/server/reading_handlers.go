package server

import (
	"arcana/internal/middleware"
	"arcana/internal/models"
	"arcana/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyReadings handles GET /api/readings?limit=
func (s *Server) GetMyReadings(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)
	limit := c.QueryInt("limit", 0)

	readings, err := s.readingService.ListReadings(c.UserContext(), caller.ID, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(readings)
}

// SaveReading handles POST /api/readings
func (s *Server) SaveReading(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	var req struct {
		Question       string             `json:"question"`
		SpreadName     string             `json:"spread_name"`
		SpreadNumCards int                `json:"spread_num_cards"`
		DrawnCards     []models.DrawnCard `json:"drawn_cards"`
		Interpretation string             `json:"interpretation_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}

	reading, err := s.readingService.SaveReading(c.UserContext(), service.SaveReadingInput{
		UserID:         caller.ID,
		Question:       req.Question,
		SpreadName:     req.SpreadName,
		SpreadNumCards: req.SpreadNumCards,
		DrawnCards:     req.DrawnCards,
		Interpretation: req.Interpretation,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return created(c, reading.ID)
}

// DeleteReading handles DELETE /api/readings/:id
func (s *Server) DeleteReading(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)
	if err := s.readingService.DeleteReading(c.UserContext(), c.Params("id"), caller.ID); err != nil {
		return models.RespondWithError(c, err)
	}
	return ok(c, c.Params("id"))
}
