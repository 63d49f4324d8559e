package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/evaluacion-docente/internal/api/dto"
	"github.com/spec-kit/evaluacion-docente/internal/service"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// AdminHandler manages per-course survey switches.
type AdminHandler struct {
	courses *service.CourseService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(courses *service.CourseService) *AdminHandler {
	return &AdminHandler{courses: courses}
}

// ListCourses GET /admin/courses.
func (h *AdminHandler) ListCourses(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.courses.List()})
}

// SetCourseStatus POST /admin/course-status.
func (h *AdminHandler) SetCourseStatus(c *fiber.Ctx) error {
	var req dto.CourseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	course, err := h.courses.Toggle(c.UserContext(), req.CourseID, *req.IsSurveyActive)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": course})
}
