package auth

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/auth"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/jwt"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService(t *testing.T) (auth.AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore(decimal.Zero)
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(store.Users(), jwtService), store
}

func createUser(t *testing.T, store *memory.Store, name, password string, role user.Role) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := store.Users().Create(context.Background(), user.User{
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, store := newTestService(t)
	created := createUser(t, store, "jahed", "jahed123", user.RoleEmployee)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Name: "jahed", Password: "jahed123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, created.ID, resp.User.ID)
	assert.Equal(t, string(user.RoleEmployee), resp.User.Role)
}

func TestAuthService_Login_NameIsCaseInsensitive(t *testing.T) {
	svc, store := newTestService(t)
	createUser(t, store, "Admin", "admin1", user.RoleAdmin)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Name: "admin", Password: "admin1"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.User.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, store := newTestService(t)
	createUser(t, store, "jahed", "jahed123", user.RoleEmployee)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Name: "jahed", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Name: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}
