package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/YoavDdev/studio-boaz-backend/pkg/config"
	"github.com/YoavDdev/studio-boaz-backend/pkg/response"
)

// SessionClaims is the payload carried by session tokens issued at login.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer session token and attaches the
// authenticated user's identity to both the gin context and the request
// context (keys: "user_id", "user_role", "user_email").
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.Auth.SessionSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("user_role", claims.Role)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)

		ctx := context.WithValue(c.Request.Context(), "user_id", claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin rejects requests whose session role is not "admin".
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				response.ErrorT[any](response.APIResponseCodeForbidden, nil))
			return
		}
		c.Next()
	}
}
