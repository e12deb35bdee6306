package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/service/auth"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := auth.Claims{
		UserID:   1,
		Username: "akshara_reception",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{HandleAuth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString(constant.UsernameKey),
			"role":     c.GetString(constant.RoleKey),
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func doProtectedRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAuth_ValidToken(t *testing.T) {
	router := newProtectedRouter()
	token := signedToken(t, constant.RoleReception, time.Hour)

	w := doProtectedRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "akshara_reception")
}

func TestHandleAuth_MissingHeader(t *testing.T) {
	router := newProtectedRouter()

	w := doProtectedRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleAuth_MalformedHeader(t *testing.T) {
	router := newProtectedRouter()

	w := doProtectedRequest(router, "Token abcdef")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleAuth_WrongSecret(t *testing.T) {
	router := newProtectedRouter()

	claims := auth.Claims{Username: "akshara_reception", Role: constant.RoleReception}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := doProtectedRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleAuth_ExpiredToken(t *testing.T) {
	router := newProtectedRouter()
	token := signedToken(t, constant.RoleReception, -time.Hour)

	w := doProtectedRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	router := newProtectedRouter(constant.RoleDoctor, constant.RoleAdmin)
	token := signedToken(t, constant.RoleDoctor, time.Hour)

	w := doProtectedRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	router := newProtectedRouter(constant.RoleDoctor)
	token := signedToken(t, constant.RoleReception, time.Hour)

	w := doProtectedRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
