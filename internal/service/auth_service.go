package service

import (
	"context"
	"time"

	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/config"
	"github.com/spec-kit/evaluacion-docente/internal/domain"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	apperrors "github.com/spec-kit/evaluacion-docente/pkg/util"
)

// AuthService validates credentials against the directory and issues session tokens.
type AuthService struct {
	directory repository.DirectoryRepository
	surveys   repository.SurveyRepository
	tokenMgr  *auth.TokenManager
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	DirectoryRepo repository.DirectoryRepository
	SurveyRepo    repository.SurveyRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		directory: deps.DirectoryRepo,
		surveys:   deps.SurveyRepo,
		tokenMgr:  auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Authenticate resolves the account of the given role and checks its credential.
// An empty role means student.
func (s *AuthService) Authenticate(_ context.Context, role domain.Role, identifier, credential string) (domain.PublicProfile, error) {
	if role == "" {
		role = domain.RoleStudent
	}

	account, err := s.lookup(role, identifier)
	if err != nil {
		return domain.PublicProfile{}, err
	}
	if !auth.VerifyCredential(account.Credential(), credential) {
		return domain.PublicProfile{}, apperrors.NewUnauthorized(invalidCredentialMessage(role))
	}
	return s.profile(account), nil
}

// Login authenticates and mints a token for the account.
func (s *AuthService) Login(ctx context.Context, role domain.Role, identifier, credential string) (domain.PublicProfile, string, time.Time, error) {
	profile, err := s.Authenticate(ctx, role, identifier, credential)
	if err != nil {
		return domain.PublicProfile{}, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(profile.Role, identifierOf(profile))
	if err != nil {
		return domain.PublicProfile{}, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return profile, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) lookup(role domain.Role, identifier string) (domain.Account, error) {
	switch role {
	case domain.RoleStudent:
		if st, ok := s.directory.StudentByCode(identifier); ok {
			return st, nil
		}
		return nil, apperrors.NewNotFound("student", nil)
	case domain.RoleProfessor:
		if p, ok := s.directory.ProfessorByDNI(identifier); ok {
			return p, nil
		}
		return nil, apperrors.NewNotFound("professor", nil)
	case domain.RoleAdmin:
		if a, ok := s.directory.AdminByDNI(identifier); ok {
			return a, nil
		}
		return nil, apperrors.NewNotFound("admin", nil)
	default:
		return nil, apperrors.NewUnsupportedRole(string(role))
	}
}

func (s *AuthService) profile(account domain.Account) domain.PublicProfile {
	switch a := account.(type) {
	case *domain.Student:
		courses := make([]domain.StudentCourse, 0, len(a.Courses))
		for _, c := range a.Courses {
			courses = append(courses, domain.StudentCourse{
				CourseEnrollment: c,
				Responded:        s.surveys.Exists(a.Code, c.ID),
			})
		}
		return domain.PublicProfile{Role: domain.RoleStudent, Code: a.Code, Name: a.Name, StudentCourses: courses}
	case *domain.Professor:
		courses := append([]domain.CourseAssignment{}, a.Courses...)
		return domain.PublicProfile{Role: domain.RoleProfessor, DNI: a.DNI, Name: a.Name, ProfessorCourses: courses}
	case *domain.Admin:
		return domain.PublicProfile{Role: domain.RoleAdmin, DNI: a.DNI, Name: a.Name}
	}
	return domain.PublicProfile{}
}

func identifierOf(p domain.PublicProfile) string {
	if p.Role == domain.RoleStudent {
		return p.Code
	}
	return p.DNI
}

func invalidCredentialMessage(role domain.Role) string {
	if role == domain.RoleStudent {
		return "invalid code or password"
	}
	return "invalid DNI or password"
}
