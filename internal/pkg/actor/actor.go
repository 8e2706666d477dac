package actor

import (
	"context"
	"errors"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
)

// Actor is the identity every attendance and transaction call runs as. When
// an admin views the portal as an employee, the impersonation is resolved
// once per request into an explicit value here - it is never ambient state.
type Actor struct {
	UserID string
	Name   string
	Role   user.Role

	// ImpersonatedBy holds the admin's user id when this actor is an
	// admin acting as an employee.
	ImpersonatedBy string
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type contextKey struct{}

var ErrNoActor = errors.New("no actor in context")

func WithContext(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

func FromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(contextKey{}).(Actor)
	if !ok {
		return Actor{}, ErrNoActor
	}
	return a, nil
}
