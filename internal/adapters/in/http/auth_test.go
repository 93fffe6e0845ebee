package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(ttl time.Duration) *TokenManager {
	return NewTokenManager("test-secret", ttl, "fulfillment")
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := newTestTokenManager(time.Hour)
	operatorID := kernel.NewUUID()

	token, err := manager.Generate(operatorID, "Grace Hopper", "picker")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, operatorID.String(), claims.OperatorID)
	assert.Equal(t, "Grace Hopper", claims.Name)
	assert.Equal(t, "picker", claims.Role)
	assert.Equal(t, "fulfillment", claims.Issuer)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	manager := newTestTokenManager(-time.Minute)

	token, err := manager.Generate(kernel.NewUUID(), "Grace Hopper", "picker")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	require.Error(t, err)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	manager := newTestTokenManager(time.Hour)
	other := NewTokenManager("different-secret", time.Hour, "fulfillment")

	token, err := other.Generate(kernel.NewUUID(), "Grace Hopper", "picker")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	require.Error(t, err)
}

func performRequest(t *testing.T, middleware echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}, middleware)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	manager := newTestTokenManager(time.Hour)

	rec := performRequest(t, manager.Authenticate, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	manager := newTestTokenManager(time.Hour)

	rec := performRequest(t, manager.Authenticate, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	manager := newTestTokenManager(time.Hour)

	token, err := manager.Generate(kernel.NewUUID(), "Grace Hopper", "picker")
	require.NoError(t, err)

	rec := performRequest(t, manager.Authenticate, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// performGuardedRequest routes through Authenticate into a handler gated the
// way the server methods gate themselves.
func performGuardedRequest(t *testing.T, manager *TokenManager, authHeader string, allowedRoles ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		if !roleAllowed(ctx, allowedRoles...) {
			return forbidden(ctx)
		}
		return ctx.NoContent(http.StatusOK)
	}, manager.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoleAllowed_AllowsMatchingRole(t *testing.T) {
	manager := newTestTokenManager(time.Hour)

	token, err := manager.Generate(kernel.NewUUID(), "Ada Lovelace", "admin")
	require.NoError(t, err)

	rec := performGuardedRequest(t, manager, "Bearer "+token, roleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleAllowed_RejectsOtherRole(t *testing.T) {
	manager := newTestTokenManager(time.Hour)

	token, err := manager.Generate(kernel.NewUUID(), "Grace Hopper", "picker")
	require.NoError(t, err)

	rec := performGuardedRequest(t, manager, "Bearer "+token, roleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleAllowed_AnyOfSeveralRoles(t *testing.T) {
	manager := newTestTokenManager(time.Hour)

	token, err := manager.Generate(kernel.NewUUID(), "Mary Jackson", "packer")
	require.NoError(t, err)

	rec := performGuardedRequest(t, manager, "Bearer "+token, rolePicker, rolePacker)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleAllowed_NoClaims(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.False(t, roleAllowed(ctx, roleAdmin))
}

func TestCallerOperatorID(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.Nil(t, callerOperatorID(ctx))

	operatorID := kernel.NewUUID()
	ctx.Set(claimsContextKey, &AuthClaims{OperatorID: operatorID.String(), Role: "packer"})

	got := callerOperatorID(ctx)
	require.NotNil(t, got)
	assert.True(t, got.IsEqual(operatorID))
}
