package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/config"
	"github.com/spec-kit/evaluacion-docente/internal/domain"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

func newAuthService(f *fixture) *AuthService {
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5}}
	return NewAuthService(cfg, AuthDependencies{DirectoryRepo: f.directory, SurveyRepo: f.surveys})
}

func TestAuthenticateProfessorErrors(t *testing.T) {
	svc := newAuthService(newFixture(march5))
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, domain.RoleProfessor, "12345678", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnauthorized, apperrors.CodeOf(err))

	_, err = svc.Authenticate(ctx, domain.RoleProfessor, "00000000", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestAuthenticateUnsupportedRole(t *testing.T) {
	svc := newAuthService(newFixture(march5))

	_, err := svc.Authenticate(context.Background(), domain.Role("janitor"), "x", "y")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUnsupportedRole, apperrors.CodeOf(err))
}

func TestAuthenticateStudentMarksResponded(t *testing.T) {
	f := newFixture(march5)
	seedResponse(t, f, "A01", "C2", 4, 4, 4, 4, "")
	svc := newAuthService(f)

	profile, err := svc.Authenticate(context.Background(), "", "A01", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, profile.Role)
	assert.Equal(t, "A01", profile.Code)
	require.Len(t, profile.StudentCourses, 2)
	assert.False(t, profile.StudentCourses[0].Responded)
	assert.True(t, profile.StudentCourses[1].Responded)
}

func TestAuthenticateStaffProfiles(t *testing.T) {
	svc := newAuthService(newFixture(march5))
	ctx := context.Background()

	prof, err := svc.Authenticate(ctx, domain.RoleProfessor, "87654321", "profpass")
	require.NoError(t, err)
	assert.Equal(t, "Rosa Diaz", prof.Name)
	assert.Len(t, prof.ProfessorCourses, 2)

	admin, err := svc.Authenticate(ctx, domain.RoleAdmin, "999", "root")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Nil(t, admin.Courses())
}

func TestAuthenticateAcceptsBcryptCredentials(t *testing.T) {
	f := newFixture(march5)
	hashed, err := auth.HashPassword("hunter2", 4)
	require.NoError(t, err)
	f.directory.Replace(nil, nil, []domain.Admin{{DNI: "1", Password: hashed, Name: "Root"}})
	svc := newAuthService(f)

	_, err = svc.Authenticate(context.Background(), domain.RoleAdmin, "1", "hunter2")
	assert.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), domain.RoleAdmin, "1", hashed)
	assert.Equal(t, apperrors.CodeUnauthorized, apperrors.CodeOf(err))
}

func TestLoginIssuesTokenForIdentifier(t *testing.T) {
	svc := newAuthService(newFixture(march5))

	profile, token, exp, err := svc.Login(context.Background(), domain.RoleProfessor, "12345678", "profpass")
	require.NoError(t, err)
	assert.Equal(t, "12345678", profile.DNI)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleProfessor, claims.Role)
	assert.Equal(t, "12345678", claims.Identifier)
}
