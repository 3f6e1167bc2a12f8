package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/current-cruiser/internal/config"
	mw "github.com/iliyamo/current-cruiser/internal/middleware"
	"github.com/iliyamo/current-cruiser/internal/queue"
	"github.com/iliyamo/current-cruiser/internal/utils"
	"github.com/iliyamo/current-cruiser/internal/validator"
)

func newAuthServer(t *testing.T, users *fakeUserStore) (*echo.Echo, *AuthHandler) {
	t.Helper()
	h := NewAuthHandler(config.Config{JWTSecret: jwtTestSecret}, users)
	e := echo.New()
	e.HTTPErrorHandler = mw.ErrorPipeline(jwtTestSecret, nil)
	e.POST("/api/auth/register", h.Register, mw.ValidateBody[validator.RegisterInput]())
	e.POST("/api/auth/login", h.Login, mw.ValidateBody[validator.LoginInput]())
	return e, h
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	users := &fakeUserStore{}
	e, _ := newAuthServer(t, users)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"Ada@Example.com","password":"secret1"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "User registered!", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)

	// The password hash must never appear in the response body.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret1")

	require.Len(t, users.users, 1)
	assert.NotEqual(t, "secret1", users.users[0].Password)
	assert.True(t, utils.VerifyPassword(users.users[0].Password, "secret1"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &fakeUserStore{}
	e, _ := newAuthServer(t, users)

	first := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"other","email":"ADA@example.com","password":"secret2"}`, "")
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "User already exists")
	assert.Equal(t, 1, users.createCalls)
}

func TestRegister_ValidationRunsBeforePersistence(t *testing.T) {
	users := &fakeUserStore{}
	e, _ := newAuthServer(t, users)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"ada","password":"secret1"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
	assert.Zero(t, users.createCalls)
}

func TestRegister_ShortPassword(t *testing.T) {
	users := &fakeUserStore{}
	e, _ := newAuthServer(t, users)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"abc"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
	assert.Zero(t, users.createCalls)
}

func TestRegister_PublishesSignupEvent(t *testing.T) {
	users := &fakeUserStore{}
	e, h := newAuthServer(t, users)

	events := make(chan queue.SignupCompletedEvent, 1)
	h.Publish = func(_ context.Context, ev queue.SignupCompletedEvent) error {
		events <- ev
		return nil
	}

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	select {
	case ev := <-events:
		assert.Equal(t, "ada", ev.Username)
		assert.Equal(t, "ada@example.com", ev.Email)
		assert.NotEmpty(t, ev.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("signup event was never published")
	}
}

func TestLogin_Success(t *testing.T) {
	users := &fakeUserStore{}
	_, err := users.Create(context.Background(), "ada", "ada@example.com", "secret1", "user")
	require.NoError(t, err)
	e, _ := newAuthServer(t, users)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"secret1"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User logged in correctly!")
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	userID, role, err := utils.VerifyIdentityToken(jwtTestSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, users.users[0].ID.Hex(), userID)
	assert.Equal(t, "user", role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &fakeUserStore{}
	_, err := users.Create(context.Background(), "ada", "ada@example.com", "secret1", "user")
	require.NoError(t, err)
	e, _ := newAuthServer(t, users)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	e, _ := newAuthServer(t, &fakeUserStore{})

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret1"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}
