package dto

import (
	"time"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

// LoginRequest payload. Students log in with code, staff with dni.
type LoginRequest struct {
	Role     domain.Role `json:"role"`
	Code     string      `json:"code"`
	DNI      string      `json:"dni"`
	Password string      `json:"password" validate:"required"`
}

// Identifier returns the field that identifies the account for the requested role.
func (r LoginRequest) Identifier() string {
	if r.Role == "" || r.Role == domain.RoleStudent {
		return r.Code
	}
	return r.DNI
}

// LoginResponse carries the session token and the public profile.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserProfile `json:"user"`
}

// UserProfile is the credential-free view of an account.
type UserProfile struct {
	Role    domain.Role `json:"role"`
	Code    string      `json:"code,omitempty"`
	DNI     string      `json:"dni,omitempty"`
	Name    string      `json:"name"`
	Courses any         `json:"courses,omitempty"`
}

// NewUserProfile maps a domain profile.
func NewUserProfile(p domain.PublicProfile) UserProfile {
	return UserProfile{
		Role:    p.Role,
		Code:    p.Code,
		DNI:     p.DNI,
		Name:    p.Name,
		Courses: p.Courses(),
	}
}
