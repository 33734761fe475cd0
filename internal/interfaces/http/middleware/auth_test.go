package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swea-cms.backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(jwtService *jwt.JWTService, roles ...string) *gin.Engine {
	router := gin.New()
	group := router.Group("/", AuthMiddleware(jwtService))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(UserRoleKey)})
	})
	return router
}

func request(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	router := newAuthRouter(jwtService)

	assert.Equal(t, http.StatusUnauthorized, request(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer garbage").Code)
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "e@swea.org", "editor")
	require.NoError(t, err)

	router := newAuthRouter(jwtService)
	rec := request(router, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "editor")
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", -time.Minute, -time.Minute)
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "e@swea.org", "editor")
	require.NoError(t, err)

	router := newAuthRouter(jwtService)
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer "+pair.AccessToken).Code)
}

func TestRequireRole_EnforcesRole(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	router := newAuthRouter(jwtService, "admin")

	editorPair, err := jwtService.GenerateTokenPair(uuid.New(), "e@swea.org", "editor")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(router, "Bearer "+editorPair.AccessToken).Code)

	adminPair, err := jwtService.GenerateTokenPair(uuid.New(), "a@swea.org", "admin")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(router, "Bearer "+adminPair.AccessToken).Code)
}
