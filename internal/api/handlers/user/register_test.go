package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// mockUserService implements users.Service for handler tests
type mockUserService struct {
	registerFunc func(ctx context.Context, req users.RegisterRequest) (*users.User, error)
	loginFunc    func(ctx context.Context, req users.LoginRequest) (*users.User, error)
	getByIDFunc  func(ctx context.Context, id string) (*users.User, error)
}

func (m *mockUserService) Register(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req users.LoginRequest) (*users.User, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockUserService) GetByID(ctx context.Context, id string) (*users.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID string, req users.UpdateProfileRequest) (*users.User, error) {
	return nil, nil
}

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	return auth.NewTokenService([]byte("test-secret"), time.Hour)
}

func TestHandleRegister(t *testing.T) {
	service := &mockUserService{
		registerFunc: func(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
			return &users.User{ID: "u1", Username: req.Username, Email: req.Email}, nil
		},
	}
	tokens := testTokens(t)
	handler := NewRegisterHandler(service, tokens)

	body := strings.NewReader(`{"username":"alice","email":"a@b.com","password":"longenough"}`)
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, httptest.NewRequest(http.MethodPost, "/users/register", body))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		User  users.User `json:"user"`
		Token string     `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "alice", response.User.Username)
	require.NotEmpty(t, response.Token)

	// The issued token must verify back to the new user
	userID, err := tokens.Verify(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestHandleRegisterConflict(t *testing.T) {
	service := &mockUserService{
		registerFunc: func(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
			return nil, users.ErrUserExists
		},
	}
	handler := NewRegisterHandler(service, testTokens(t))

	body := strings.NewReader(`{"username":"alice","email":"a@b.com","password":"longenough"}`)
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, httptest.NewRequest(http.MethodPost, "/users/register", body))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "User already exists with that email or username", response["message"])
}

func TestHandleLoginErrors(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		service := &mockUserService{
			loginFunc: func(ctx context.Context, req users.LoginRequest) (*users.User, error) {
				return nil, users.ErrUserNotFound
			},
		}
		handler := NewLoginHandler(service, testTokens(t))

		body := strings.NewReader(`{"email":"nobody@b.com","password":"x"}`)
		rec := httptest.NewRecorder()
		handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/users/login", body))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		service := &mockUserService{
			loginFunc: func(ctx context.Context, req users.LoginRequest) (*users.User, error) {
				return nil, users.ErrInvalidCredentials
			},
		}
		handler := NewLoginHandler(service, testTokens(t))

		body := strings.NewReader(`{"email":"a@b.com","password":"wrong"}`)
		rec := httptest.NewRecorder()
		handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/users/login", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
