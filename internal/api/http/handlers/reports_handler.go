package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/service"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// ReportsHandler serves aggregate survey statistics.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Global GET /api/reports.
func (h *ReportsHandler) Global(c *fiber.Ctx) error {
	reports, err := h.service.GlobalReport(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reports})
}

// Teacher GET /api/reports/professors/:dni. Professors may only read their own.
func (h *ReportsHandler) Teacher(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	dni := c.Params("dni")
	if principal.Role == domain.RoleProfessor && principal.Identifier != dni {
		return apperrors.NewForbidden("professors can only read their own report")
	}

	reports, err := h.service.TeacherReport(c.UserContext(), dni)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reports})
}
