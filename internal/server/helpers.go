package server

import (
	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type pageParams struct {
	Page     int
	PageSize int
}

// parsePagination reads ?page= and ?pageSize= with sane bounds. Page numbers
// are 1-based; anything unparsable falls back to the defaults.
func parsePagination(c *fiber.Ctx) pageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size := c.QueryInt("pageSize", defaultPageSize)
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return pageParams{Page: page, PageSize: size}
}

// successResponse is the standard mutation response body.
type successResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

func ok(c *fiber.Ctx, id string) error {
	return c.JSON(successResponse{Success: true, ID: id})
}

func created(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(successResponse{Success: true, ID: id})
}
