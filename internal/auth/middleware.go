package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Role       domain.Role
	Identifier string
	Account    domain.Account
}

// Student returns the student account, if the principal is one.
func (p *Principal) Student() (*domain.Student, bool) {
	s, ok := p.Account.(*domain.Student)
	return s, ok
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens    *TokenManager
	directory repository.DirectoryRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, directory repository.DirectoryRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, directory: directory}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	// The directory can be reloaded, so every call re-resolves the account.
	var account domain.Account
	switch claims.Role {
	case domain.RoleStudent:
		if s, ok := m.directory.StudentByCode(claims.Identifier); ok {
			account = s
		}
	case domain.RoleProfessor:
		if p, ok := m.directory.ProfessorByDNI(claims.Identifier); ok {
			account = p
		}
	case domain.RoleAdmin:
		if a, ok := m.directory.AdminByDNI(claims.Identifier); ok {
			account = a
		}
	}
	if account == nil {
		return apperrors.NewUnauthorized("account not found")
	}

	c.Locals(principalKey, &Principal{Role: claims.Role, Identifier: claims.Identifier, Account: account})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
