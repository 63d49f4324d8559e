package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

func newGuardedApp(directory repository.DirectoryRepository, tokens *TokenManager, roles ...domain.Role) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	mw := NewAuthMiddleware(tokens, directory)
	app.Get("/me", mw.Handle, RequireRole(roles...), func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("no principal")
		}
		return c.SendString(string(p.Role) + ":" + p.Identifier + ":" + p.Account.DisplayName())
	})
	return app
}

func TestAuthMiddlewareResolvesPrincipal(t *testing.T) {
	directory := repository.NewDirectoryRepository()
	directory.Replace(
		[]domain.Student{{Code: "A01", Name: "Ana"}},
		nil,
		[]domain.Admin{{DNI: "999", Name: "Root"}},
	)
	tokens := NewTokenManager("secret", 5)
	app := newGuardedApp(directory, tokens, domain.RoleStudent)

	studentToken, _, err := tokens.GenerateToken(domain.RoleStudent, "A01")
	require.NoError(t, err)
	adminToken, _, err := tokens.GenerateToken(domain.RoleAdmin, "999")
	require.NoError(t, err)
	ghostToken, _, err := tokens.GenerateToken(domain.RoleStudent, "ZZZ")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"student", "Bearer " + studentToken, fiber.StatusOK, "student:A01:Ana"},
		{"lowercase scheme", "bearer " + studentToken, fiber.StatusOK, "student:A01:Ana"},
		{"wrong role", "Bearer " + adminToken, fiber.StatusForbidden, apperrors.CodeForbidden},
		{"account removed", "Bearer " + ghostToken, fiber.StatusUnauthorized, apperrors.CodeUnauthorized},
		{"missing header", "", fiber.StatusUnauthorized, apperrors.CodeUnauthorized},
		{"basic scheme", "Basic abc", fiber.StatusUnauthorized, apperrors.CodeUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.body, string(body))
		})
	}
}
