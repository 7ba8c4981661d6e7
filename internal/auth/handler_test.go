package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/wise/expenses-tracker/internal/user"
)

func newHandlerFixture(t *testing.T) (*Handler, Service) {
	t.Helper()
	manager := newTestManager(t, 10*time.Hour)
	svc := NewAuthService(NewMockUserService(), manager, bcrypt.MinCost)
	return NewHandler(svc), svc
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleRegister_Created(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", map[string]string{
		"username": "john",
		"password": "password123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestHandleRegister_Conflict(t *testing.T) {
	handler, svc := newHandlerFixture(t)
	_, err := svc.Register("john", "password123")
	require.NoError(t, err)

	rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", map[string]string{
		"username": "john",
		"password": "password123",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleRegister_ValidationErrors(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "password123"},
		{"short password", "john", "short"},
		{"empty username", "", "password123"},
		{"empty password", "john", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", map[string]string{
				"username": tt.username,
				"password": tt.password,
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleRegister_InvalidBody(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAuthenticate_Success(t *testing.T) {
	handler, svc := newHandlerFixture(t)
	_, err := svc.Register("john", "password123")
	require.NoError(t, err)

	rec := postJSON(t, handler.HandleAuthenticate, "/api/v1/auth/authenticate", map[string]string{
		"username": "john",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestHandleAuthenticate_InvalidCredentials(t *testing.T) {
	handler, svc := newHandlerFixture(t)
	_, err := svc.Register("john", "password123")
	require.NoError(t, err)

	rec := postJSON(t, handler.HandleAuthenticate, "/api/v1/auth/authenticate", map[string]string{
		"username": "john",
		"password": "wrongpassword",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestHandleGetProfile(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	req = req.WithContext(WithPrincipal(req.Context(), &Principal{
		User:      &user.User{ID: "user-1", Username: "john", Role: user.RoleUser},
		Authority: user.RoleUser,
	}))
	rec := httptest.NewRecorder()
	handler.HandleGetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "john", data["username"])
	assert.Equal(t, user.RoleUser, data["role"])
}

func TestHandleGetProfile_Unauthenticated(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
