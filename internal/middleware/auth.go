package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/staterastore/statera-api/internal/config"
	"github.com/staterastore/statera-api/internal/httperr"
)

const (
	ContextClientID    = "clientID"
	ContextClientEmail = "clientEmail"
)

func abortUnauthorized(c *gin.Context, code, message string) {
	httperr.WriteError(c, httperr.ErrUnauthorized(code, message))
	c.Abort()
}

// AuthMiddleware validates the bearer token and binds the request to
// the authenticated client. Handlers must scope reads and writes by
// this id, never by a client-supplied one.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header", "Authorization header is required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header", "Authorization header must be a bearer token.")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token", "Token is invalid or expired.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims", "Token claims are malformed.")
			return
		}

		clientID, ok := claims["sub"].(float64)
		email, _ := claims["email"].(string)
		if !ok {
			abortUnauthorized(c, "invalid_token_payload", "Token subject is missing.")
			return
		}

		c.Set(ContextClientID, uint(clientID))
		c.Set(ContextClientEmail, email)

		c.Next()
	}
}
