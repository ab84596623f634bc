package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"offerLens/pkg/logger"

	jsonres "offerLens/pkg/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type AuthClaims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware guards the audit endpoints with a shared-secret JWT. It is
// only installed when a secret is configured.
func AuthMiddleware(secretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			tokenString := tokenParts[1]

			claims := &AuthClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Error("Failed to parse JWT", "error", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Status Forbidden", nil,
				))
			}

			if time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Token expired", nil,
				))
			}

			c.Set("subject", claims.Subject)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}
