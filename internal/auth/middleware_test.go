package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func newAuthRouter(tokens *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		claims := Identity(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	r.PUT("/admin-only", RequireAuth(tokens), RequirePermission(PermUpdateRates), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	w := doRequest(r, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}

func TestRequireAuthBadToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	w := doRequest(r, http.MethodGet, "/protected", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	signed, err := tokens.Issue(7, "w@example.com", models.RoleWorker)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", signed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestRequirePermissionForbidsWorker(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	signed, err := tokens.Issue(7, "w@example.com", models.RoleWorker)
	require.NoError(t, err)

	w := doRequest(r, http.MethodPut, "/admin-only", signed)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}

func TestRequirePermissionAllowsAdmin(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	signed, err := tokens.Issue(1, "a@example.com", models.RoleAdmin)
	require.NoError(t, err)

	w := doRequest(r, http.MethodPut, "/admin-only", signed)
	assert.Equal(t, http.StatusOK, w.Code)
}
