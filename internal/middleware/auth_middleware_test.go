package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/pkg/auth"
)

func testRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placetrack.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/open", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/admin-only", authMiddleware.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService
}

func accessTokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       7,
		Username: "someone",
		Role:     role,
	})
	require.NoError(t, err)
	return access
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoleRequiredBlocksMentor(t *testing.T) {
	router, jwtService := testRouter(t)
	token := accessTokenFor(t, jwtService, models.RoleMentor)

	rec := doRequest(router, "/admin-only", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(router, "/open", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleRequiredAllowsAdmin(t *testing.T) {
	router, jwtService := testRouter(t)
	token := accessTokenFor(t, jwtService, models.RoleAdmin)

	rec := doRequest(router, "/admin-only", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejectsMissingAndRefreshTokens(t *testing.T) {
	router, jwtService := testRouter(t)

	rec := doRequest(router, "/open", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, refresh, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       7,
		Username: "someone",
		Role:     models.RoleMentor,
	})
	require.NoError(t, err)

	rec = doRequest(router, "/open", refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
