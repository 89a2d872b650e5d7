// Package middleware provides authentication and request-context middleware.
package middleware

import (
	"strings"

	"arcana/internal/config"
	"arcana/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// CallerKey is the fiber locals key holding the authenticated models.Caller.
const CallerKey = "caller"

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

func callerFromToken(tokenString string) (models.Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.Caller{}, models.NewUnauthenticatedError("인증 토큰이 유효하지 않습니다.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Caller{}, models.NewUnauthenticatedError("인증 토큰이 유효하지 않습니다.")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Caller{}, models.NewUnauthenticatedError("인증 토큰이 유효하지 않습니다.")
	}

	caller := models.Caller{ID: sub}
	if name, ok := claims["name"].(string); ok {
		caller.DisplayName = name
	}
	if picture, ok := claims["picture"].(string); ok {
		caller.PhotoURL = picture
	}
	return caller, nil
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired enforces a valid bearer token and stores the caller in locals.
func AuthRequired(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return models.RespondWithError(c, models.NewUnauthenticatedError("로그인이 필요합니다."))
	}
	caller, err := callerFromToken(token)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	c.Locals(CallerKey, caller)
	return c.Next()
}

// AuthOptional resolves the caller when a valid token is present and falls
// back to an anonymous caller otherwise. A malformed token is still rejected
// rather than silently downgraded to guest.
func AuthOptional(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		c.Locals(CallerKey, models.Caller{})
		return c.Next()
	}
	caller, err := callerFromToken(token)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	c.Locals(CallerKey, caller)
	return c.Next()
}

// CallerFromLocals returns the caller stored by AuthRequired/AuthOptional.
// The zero Caller means an unauthenticated (guest) request.
func CallerFromLocals(c *fiber.Ctx) models.Caller {
	if caller, ok := c.Locals(CallerKey).(models.Caller); ok {
		return caller
	}
	return models.Caller{}
}
