package middleware

import (
	"net/http"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/auth"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/go-chi/jwtauth/v5"
)

// ActAsHeader lets an admin drive the portal as one of their employees. The
// resolved identity is pinned into the request context once, here, so every
// downstream service sees one consistent actor for the whole request.
const ActAsHeader = "X-Act-As"

func ResolveActor(userRepo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, _ := claims["user_id"].(string)
			name, _ := claims["name"].(string)
			role, _ := claims["role"].(string)
			if userID == "" || role == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			act := actor.Actor{
				UserID: userID,
				Name:   name,
				Role:   user.Role(role),
			}

			if target := r.Header.Get(ActAsHeader); target != "" && target != userID {
				if !act.IsAdmin() {
					response.HandleError(w, user.ErrAdminPrivilegeRequired)
					return
				}
				impersonated, err := userRepo.GetByID(r.Context(), target)
				if err != nil {
					response.HandleError(w, err)
					return
				}
				act = actor.Actor{
					UserID:         impersonated.ID,
					Name:           impersonated.Name,
					Role:           impersonated.Role,
					ImpersonatedBy: userID,
				}
			}

			ctx := actor.WithContext(r.Context(), act)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
