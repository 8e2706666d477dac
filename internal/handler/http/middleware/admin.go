package middleware

import (
	"net/http"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/response"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
)

// AdminOnly gates a route on the resolved actor, so an admin acting as an
// employee is denied admin routes for the duration of the impersonation.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		act, err := actor.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !act.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
