package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetridj/event-ops/internal/config"
	"github.com/vetridj/event-ops/internal/repository"
	"github.com/vetridj/event-ops/internal/utils"
)

func TestLoginEmail(t *testing.T) {
	cases := map[string]string{
		"admin":     "admin@vetri.event",
		"  Admin  ": "admin@vetri.event",
		"crew":      "crew@vetri.event",
		"CREW":      "crew@vetri.event",
		"ravi":      "ravi@vetri.event",
		" Ravi ":    "ravi@vetri.event",
	}
	for username, want := range cases {
		assert.Equal(t, want, loginEmail(username), "username=%q", username)
	}
}

type loginUserRepoMock struct {
	getByEmailFn func(ctx context.Context, email string) (*repository.User, error)
}

func (m *loginUserRepoMock) Create(_ context.Context, _, _, _ string, _ int) (string, error) {
	panic("not used")
}
func (m *loginUserRepoMock) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	return m.getByEmailFn(ctx, email)
}

func loginConfig() config.Config {
	return config.Config{JWTSecret: "test-secret", AccessTTLMin: 15}
}

func performLogin(t *testing.T, users repository.UserRepository, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(loginConfig(), users)
	require.NoError(t, h.Login(c))
	return rec
}

func TestLoginSuccess(t *testing.T) {
	hash, err := utils.HashPassword("secret123", 4)
	require.NoError(t, err)

	var queried string
	users := &loginUserRepoMock{
		getByEmailFn: func(_ context.Context, email string) (*repository.User, error) {
			queried = email
			return &repository.User{ID: "u-1", Email: email, PasswordHash: hash, Role: "ADMIN"}, nil
		},
	}

	rec := performLogin(t, users, `{"username":"admin","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@vetri.event", queried)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"ADMIN"`)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123", 4)
	require.NoError(t, err)

	users := &loginUserRepoMock{
		getByEmailFn: func(_ context.Context, email string) (*repository.User, error) {
			return &repository.User{ID: "u-1", Email: email, PasswordHash: hash, Role: "CREW"}, nil
		},
	}

	rec := performLogin(t, users, `{"username":"crew","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	users := &loginUserRepoMock{
		getByEmailFn: func(_ context.Context, _ string) (*repository.User, error) {
			return nil, repository.ErrNotFound
		},
	}

	rec := performLogin(t, users, `{"username":"ghost","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	users := &loginUserRepoMock{
		getByEmailFn: func(_ context.Context, _ string) (*repository.User, error) {
			t.Fatal("repository must not be queried without credentials")
			return nil, nil
		},
	}

	rec := performLogin(t, users, `{"username":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
