package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/wise/expenses-tracker/internal/user"
)

func newFilterFixture(t *testing.T) (*service, *MockUserService, *JWTManager) {
	t.Helper()
	manager := newTestManager(t, 10*time.Hour)
	users := NewMockUserService()
	svc := NewAuthService(users, manager, bcrypt.MinCost).(*service)
	return svc, users, manager
}

// captureHandler records whether the chain continued and what principal it saw.
type captureHandler struct {
	called    bool
	principal *Principal
	found     bool
}

func (c *captureHandler) ServeHTTP(_ http.ResponseWriter, r *http.Request) {
	c.called = true
	c.principal, c.found = PrincipalFromContext(r.Context())
}

func TestAuthenticationFilter_NoHeaderContinuesUnauthenticated(t *testing.T) {
	svc, _, _ := newFilterFixture(t)
	capture := &captureHandler{}
	filter := svc.AuthenticationFilter()(capture)

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	filter.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, capture.called)
	assert.False(t, capture.found)
}

func TestAuthenticationFilter_PrefixIsCaseSensitive(t *testing.T) {
	svc, users, manager := newFilterFixture(t)
	_, err := users.CreateUser("john", "hash", user.RoleUser)
	require.NoError(t, err)
	token, err := manager.GenerateToken("john")
	require.NoError(t, err)

	for _, header := range []string{
		"bearer " + token,
		"BEARER " + token,
		"Bearer" + token,
		"Token " + token,
	} {
		capture := &captureHandler{}
		filter := svc.AuthenticationFilter()(capture)

		req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
		req.Header.Set("Authorization", header)
		filter.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, capture.called, header)
		assert.False(t, capture.found, header)
	}
}

func TestAuthenticationFilter_MalformedTokenContinues(t *testing.T) {
	svc, _, _ := newFilterFixture(t)
	capture := &captureHandler{}
	filter := svc.AuthenticationFilter()(capture)

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	filter.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, capture.called)
	assert.False(t, capture.found)
}

func TestAuthenticationFilter_ValidTokenInstallsPrincipal(t *testing.T) {
	svc, users, manager := newFilterFixture(t)
	created, err := users.CreateUser("john", "hash", user.RoleUser)
	require.NoError(t, err)
	token, err := manager.GenerateToken("john")
	require.NoError(t, err)

	capture := &captureHandler{}
	filter := svc.AuthenticationFilter()(capture)

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	filter.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, capture.found)
	assert.Equal(t, created.ID, capture.principal.User.ID)
	assert.Equal(t, "john", capture.principal.User.Username)
	assert.Equal(t, user.RoleUser, capture.principal.Authority)
}

func TestAuthenticationFilter_UnknownUserContinuesUnauthenticated(t *testing.T) {
	svc, _, manager := newFilterFixture(t)
	token, err := manager.GenerateToken("ghost")
	require.NoError(t, err)

	capture := &captureHandler{}
	filter := svc.AuthenticationFilter()(capture)

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	filter.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, capture.called)
	assert.False(t, capture.found)
}

func TestAuthenticationFilter_ExpiredTokenContinuesUnauthenticated(t *testing.T) {
	svc, users, manager := newFilterFixture(t)
	_, err := users.CreateUser("john", "hash", user.RoleUser)
	require.NoError(t, err)

	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }
	token, err := manager.GenerateToken("john")
	require.NoError(t, err)
	manager.now = func() time.Time { return issuedAt.Add(24 * time.Hour) }

	capture := &captureHandler{}
	filter := svc.AuthenticationFilter()(capture)

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	filter.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, capture.called)
	assert.False(t, capture.found)
}

func TestAuthenticationFilter_NeverOverridesExistingPrincipal(t *testing.T) {
	svc, users, manager := newFilterFixture(t)
	_, err := users.CreateUser("john", "hash", user.RoleUser)
	require.NoError(t, err)
	token, err := manager.GenerateToken("john")
	require.NoError(t, err)

	existing := &Principal{
		User:      &user.User{ID: "pre-installed", Username: "earlier"},
		Authority: user.RoleUser,
	}

	capture := &captureHandler{}
	filter := svc.AuthenticationFilter()(capture)

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req = req.WithContext(WithPrincipal(req.Context(), existing))
	filter.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, capture.found)
	assert.Equal(t, "pre-installed", capture.principal.User.ID)
}
