package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/evaluacion-docente/internal/api/dto"
	"github.com/spec-kit/evaluacion-docente/internal/service"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// AuthHandler serves the login endpoint for every role.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	profile, token, exp, err := h.service.Login(c.UserContext(), req.Role, req.Identifier(), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User:        dto.NewUserProfile(profile),
	}})
}
