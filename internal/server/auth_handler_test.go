package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// setupTestAuthHandler creates an AuthHandler over an in-memory DBClient.
func setupTestAuthHandler(_ *testing.T) (*AuthHandler, *fakeDBClient) {
	fake := newFakeDBClient()
	passwordConfig := &config.PasswordConfig{
		BcryptCost: 10, // Lower cost for faster tests
	}
	jwtConfig := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	}

	userSvc := NewUserService(fake, passwordConfig)
	jwtSvc := NewJWTService(jwtConfig)
	return NewAuthHandler(userSvc, jwtSvc), fake
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	w := postJSON(t, handler.Register, "/auth/register", map[string]string{
		"name":       "Asha Patel",
		"email":      "asha@example.edu",
		"password":   "password123",
		"department": "CSE",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Asha Patel", resp.User.Name)
	assert.Equal(t, types.RoleStudent, resp.User.Role)
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{"missing name", map[string]string{"email": "test@example.com", "password": "password123"}},
		{"invalid email", map[string]string{"name": "Test User", "email": "invalid-email", "password": "password123"}},
		{"password too short", map[string]string{"name": "Test User", "email": "test@example.com", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)

			w := postJSON(t, handler.Register, "/auth/register", tt.reqBody)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	body := map[string]string{"name": "Asha Patel", "email": "asha@example.edu", "password": "password123"}

	w := postJSON(t, handler.Register, "/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler.Register, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	register := map[string]string{"name": "Asha Patel", "email": "asha@example.edu", "password": "password123"}
	require.Equal(t, http.StatusCreated, postJSON(t, handler.Register, "/auth/register", register).Code)

	w := postJSON(t, handler.Login, "/auth/login", map[string]string{
		"email":    "asha@example.edu",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	register := map[string]string{"name": "Asha Patel", "email": "asha@example.edu", "password": "password123"}
	require.Equal(t, http.StatusCreated, postJSON(t, handler.Register, "/auth/register", register).Code)

	w := postJSON(t, handler.Login, "/auth/login", map[string]string{
		"email":    "asha@example.edu",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, fake := setupTestAuthHandler(t)
	register := map[string]string{"name": "Asha Patel", "email": "asha@example.edu", "password": "password123"}
	require.Equal(t, http.StatusCreated, postJSON(t, handler.Register, "/auth/register", register).Code)

	userID := fake.byEmail["asha@example.edu"]

	body, _ := json.Marshal(map[string]string{
		"current_password": "password123",
		"new_password":     "newpassword456",
	})
	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(w, req, userID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// New password works now.
	login := postJSON(t, handler.Login, "/auth/login", map[string]string{
		"email":    "asha@example.edu",
		"password": "newpassword456",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestAuthHandler_UpdatePassword_WrongCurrent(t *testing.T) {
	handler, fake := setupTestAuthHandler(t)
	register := map[string]string{"name": "Asha Patel", "email": "asha@example.edu", "password": "password123"}
	require.Equal(t, http.StatusCreated, postJSON(t, handler.Register, "/auth/register", register).Code)

	body, _ := json.Marshal(map[string]string{
		"current_password": "wrong-password",
		"new_password":     "newpassword456",
	})
	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(w, req, fake.byEmail["asha@example.edu"])
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
