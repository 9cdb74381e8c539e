package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/acss-labs/acss-backend-go/internal/domain/auth"
	"github.com/acss-labs/acss-backend-go/internal/domain/user"
	"github.com/acss-labs/acss-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.seq++
	u.ID = fmt.Sprintf("u%d", f.seq)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) seed(t *testing.T, name, email, password string, role user.Role) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := f.Create(context.Background(), user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func newTestService() (auth.AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(repo, jwtService), repo
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ayu@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ayu Lestari", resp.User.Name)
	assert.Equal(t, "admin", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ayu@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "staff", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)

	stored, err := repo.GetByEmail(context.Background(), "budi@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleStaff)

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Name:     "Another Ayu",
		Email:    "ayu@example.com",
		Password: "password456",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)

	login, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ayu@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The presented token is revoked once a new pair is issued.
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)

	login, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ayu@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "15m", "168h"))

	// Same signing key, but the refresh token lifetime is already over.
	expiredIssuer := jwt.NewJWTService("test-secret", "15m", "-5m")
	token, _, err := expiredIssuer.GenerateRefreshToken(seeded.ID)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)

	login, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ayu@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestMe(t *testing.T) {
	svc, repo := newTestService()
	seeded := repo.seed(t, "Ayu Lestari", "ayu@example.com", "password123", user.RoleAdmin)

	me, err := svc.Me(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", me.Name)
	assert.Equal(t, "ayu@example.com", me.Email)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
