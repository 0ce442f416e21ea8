package middleware // reusable HTTP middleware shared by the route groups

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the token's subject, email and role claims into the request
// context.  The provided secret must match the one used when issuing
// tokens.  Handlers behind this middleware read the authenticated identity
// via c.Get("user_id"), c.Get("email") and c.Get("role").
//
// A malformed, expired or foreign-signed token always yields the same 401
// response; the middleware never distinguishes which check failed.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with the HS256 signing method pinned; a token signed
			// with any other algorithm is rejected outright.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token"})
			}

			// Expose the identity claims to handlers.  Type assertions are
			// left to consumers (JSON numbers arrive as float64).
			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}
