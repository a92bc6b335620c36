package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/YoavDdev/studio-boaz-backend/pkg/config"
)

const testSecret = "test-session-secret"

func testConfig() *config.Config {
	return &config.Config{Auth: config.AuthConfig{SessionSecret: testSecret}}
}

func mintToken(t *testing.T, userID, role string, secret string) string {
	t.Helper()
	claims := &SessionClaims{
		Email: userID + "@example.com",
		Name:  "Test User",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", AuthMiddleware(cfg), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotUserID, gotRole string
	r.GET("/protected", AuthMiddleware(testConfig()), func(c *gin.Context) {
		gotUserID = c.GetString("user_id")
		gotRole = c.GetString("user_role")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-1", "subscriber", testSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", gotUserID)
	require.Equal(t, "subscriber", gotRole)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrong secret", header: ""},
	}
	cases[3].header = "Bearer " + mintToken(t, "user-1", "subscriber", "other-secret")

	r := authEngine(testConfig())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := authEngine(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user-2", "subscriber", testSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "admin-1", "admin", testSecret))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
