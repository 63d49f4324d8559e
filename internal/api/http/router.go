package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/evaluacion-docente/internal/api/http/handlers"
	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Survey         *handlers.SurveyHandler
	Reports        *handlers.ReportsHandler
	Admin          *handlers.AdminHandler
	Metrics        *observability.Metrics
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)
	api.Get("/period", cfg.Survey.GetPeriod)
	api.Get("/questions", cfg.Survey.Questions)

	authed := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	authed.Post("/period", cfg.Survey.SetPeriod)
	authed.Post("/submit", auth.RequireRole(domain.RoleStudent), cfg.Survey.Submit)
	authed.Get("/reports", auth.RequireRole(domain.RoleAdmin), cfg.Reports.Global)
	authed.Get("/reports/professors/:dni", auth.RequireRole(domain.RoleProfessor, domain.RoleAdmin), cfg.Reports.Teacher)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/courses", cfg.Admin.ListCourses)
	admin.Post("/course-status", cfg.Admin.SetCourseStatus)
}
