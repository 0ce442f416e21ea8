package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/utils"
)

func protectedEcho(secret string) *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"email":   c.Get("email"),
			"role":    c.Get("role"),
		})
	}, JWTAuth(secret))
	return e
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	tok, err := utils.NewSessionToken("mw-secret", 7, "alice@test.com", "customer", 7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := protectedEcho("mw-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want 200, body=%s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	e := protectedEcho("mw-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", rec.Code)
	}
}

func TestJWTAuthRejectsForeignSignature(t *testing.T) {
	tok, err := utils.NewSessionToken("other-secret", 7, "alice@test.com", "customer", 7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := protectedEcho("mw-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", rec.Code)
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	// negative TTL puts the expiry in the past
	tok, err := utils.NewSessionToken("mw-secret", 7, "alice@test.com", "customer", -1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := protectedEcho("mw-secret")
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", rec.Code)
	}
}

func TestRequireRoleBlocksCustomer(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("role", "customer")
			return next(c)
		}
	}, RequireRole("admin"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status=%d want 403", rec.Code)
	}
}
