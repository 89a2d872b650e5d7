package server

import (
	"arcana/internal/middleware"
	"arcana/internal/models"
	"arcana/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), service.AddCommentInput{
		Caller:  caller,
		PostID:  c.Params("id"),
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return created(c, comment.ID)
}

// UpdateComment handles PUT /api/posts/:id/comments/:commentId
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}

	err := s.commentService.UpdateComment(c.UserContext(),
		c.Params("id"), c.Params("commentId"), req.Content, caller.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return ok(c, c.Params("commentId"))
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	err := s.commentService.DeleteComment(c.UserContext(),
		c.Params("id"), c.Params("commentId"), caller.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return ok(c, c.Params("commentId"))
}
