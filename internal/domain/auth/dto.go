package auth

import (
	"context"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Name     string `json:"name"` // case-insensitive
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   int64             `json:"expires_at"`
	User        user.UserResponse `json:"user"`
}

// AuthService is the pluggable credential check: given a name and password it
// either yields a session or ErrInvalidCredentials. Credentials are stored as
// bcrypt hashes, never plaintext.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
