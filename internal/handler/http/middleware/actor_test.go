package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/jwt"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
)

const actorTestSecret = "test-secret-key-for-jwt"

type actorTestEnv struct {
	store   *memory.Store
	jwtSvc  jwt.Service
	handler http.Handler

	// resolved is set by the terminal handler when the chain lets the
	// request through.
	resolved *actor.Actor
}

func newActorTestEnv(t *testing.T) *actorTestEnv {
	t.Helper()

	env := &actorTestEnv{
		store:  memory.NewStore(decimal.Zero),
		jwtSvc: jwt.NewJWTService(actorTestSecret, "1h"),
	}

	ja := env.jwtSvc.JWTAuth()
	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		act, err := actor.FromContext(r.Context())
		require.NoError(t, err)
		env.resolved = &act
		w.WriteHeader(http.StatusOK)
	})
	env.handler = jwtauth.Verifier(ja)(AuthRequired(ja)(ResolveActor(env.store.Users())(terminal)))
	return env
}

func (env *actorTestEnv) createUser(t *testing.T, name string, role user.Role) (user.User, string) {
	t.Helper()
	u, err := env.store.Users().Create(context.Background(), user.User{
		Name:         name,
		PasswordHash: "x",
		Role:         role,
	})
	require.NoError(t, err)
	token, _, err := env.jwtSvc.GenerateAccessToken(u.ID, u.Name, u.Role)
	require.NoError(t, err)
	return u, token
}

func (env *actorTestEnv) do(token, actAs string) *httptest.ResponseRecorder {
	env.resolved = nil
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if actAs != "" {
		req.Header.Set(ActAsHeader, actAs)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func TestResolveActor_Self(t *testing.T) {
	env := newActorTestEnv(t)
	emp, token := env.createUser(t, "jahed", user.RoleEmployee)

	rec := env.do(token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.resolved)
	assert.Equal(t, emp.ID, env.resolved.UserID)
	assert.Equal(t, "jahed", env.resolved.Name)
	assert.Equal(t, user.RoleEmployee, env.resolved.Role)
	assert.Empty(t, env.resolved.ImpersonatedBy)
}

func TestResolveActor_AdminActsAsEmployee(t *testing.T) {
	env := newActorTestEnv(t)
	admin, adminToken := env.createUser(t, "Admin", user.RoleAdmin)
	emp, _ := env.createUser(t, "jahed", user.RoleEmployee)

	rec := env.do(adminToken, emp.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.resolved)
	assert.Equal(t, emp.ID, env.resolved.UserID)
	assert.Equal(t, emp.Name, env.resolved.Name)
	assert.Equal(t, user.RoleEmployee, env.resolved.Role)
	assert.Equal(t, admin.ID, env.resolved.ImpersonatedBy)
}

func TestResolveActor_ActAsSelfIsNoop(t *testing.T) {
	env := newActorTestEnv(t)
	admin, adminToken := env.createUser(t, "Admin", user.RoleAdmin)

	rec := env.do(adminToken, admin.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.resolved)
	assert.Equal(t, admin.ID, env.resolved.UserID)
	assert.Empty(t, env.resolved.ImpersonatedBy)
}

func TestResolveActor_NonAdminRejected(t *testing.T) {
	env := newActorTestEnv(t)
	admin, _ := env.createUser(t, "Admin", user.RoleAdmin)
	_, empToken := env.createUser(t, "jahed", user.RoleEmployee)

	rec := env.do(empToken, admin.ID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, env.resolved)
}

func TestResolveActor_UnknownTarget(t *testing.T) {
	env := newActorTestEnv(t)
	_, adminToken := env.createUser(t, "Admin", user.RoleAdmin)

	rec := env.do(adminToken, "u999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, env.resolved)
}

func TestResolveActor_MissingToken(t *testing.T) {
	env := newActorTestEnv(t)

	rec := env.do("", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, env.resolved)
}

func TestAdminOnly_DeniedWhileActingAsEmployee(t *testing.T) {
	env := newActorTestEnv(t)
	_, adminToken := env.createUser(t, "Admin", user.RoleAdmin)
	emp, _ := env.createUser(t, "jahed", user.RoleEmployee)

	ja := env.jwtSvc.JWTAuth()
	var reached bool
	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	handler := jwtauth.Verifier(ja)(AuthRequired(ja)(ResolveActor(env.store.Users())(AdminOnly(terminal))))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	req.Header.Set(ActAsHeader, emp.ID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}
