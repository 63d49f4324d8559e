package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/evaluacion-docente/internal/api/dto"
	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/service"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// SurveyHandler exposes the evaluation period, the question catalog and submission.
type SurveyHandler struct {
	periods     *service.PeriodService
	submissions *service.SubmissionService
}

// NewSurveyHandler constructs handler.
func NewSurveyHandler(periods *service.PeriodService, submissions *service.SubmissionService) *SurveyHandler {
	return &SurveyHandler{periods: periods, submissions: submissions}
}

// GetPeriod GET /api/period.
func (h *SurveyHandler) GetPeriod(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.periods.Get()})
}

// SetPeriod POST /api/period.
func (h *SurveyHandler) SetPeriod(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.PeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	period, err := h.periods.Set(c.UserContext(), req.Period(), principal.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": period})
}

// Questions GET /api/questions.
func (h *SurveyHandler) Questions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": domain.Questions})
}

// Submit POST /api/submit.
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	student, ok := principal.Student()
	if !ok {
		return apperrors.NewForbidden("only students can submit surveys")
	}

	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ack, err := h.submissions.Submit(c.UserContext(), student.Code, req.CourseID, req.Answers)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ack})
}
