package server

import (
	"arcana/internal/middleware"
	"arcana/internal/models"
	"arcana/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?category=&page=&pageSize=
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c)

	result, err := s.postService.ListPosts(ctx, c.Query("category"), page.Page, page.PageSize)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(result)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)

	var req struct {
		Title           string `json:"title"`
		Content         string `json:"content"`
		Category        string `json:"category"`
		ReadingQuestion string `json:"reading_question,omitempty"`
		CardsInfo       string `json:"cards_info,omitempty"`
		ImageURL        string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("요청 본문이 올바르지 않습니다."))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		Caller:          caller,
		Title:           req.Title,
		Content:         req.Content,
		Category:        req.Category,
		ReadingQuestion: req.ReadingQuestion,
		CardsInfo:       req.CardsInfo,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return created(c, post.ID)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	caller := middleware.CallerFromLocals(c)
	if err := s.postService.DeletePost(c.UserContext(), c.Params("id"), caller.ID); err != nil {
		return models.RespondWithError(c, err)
	}
	return ok(c, c.Params("id"))
}
