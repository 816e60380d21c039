package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, role string, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	mw := RBAC(allowed...)
	return mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
}

func TestRBAC_AllowedRole(t *testing.T) {
	if err := runRBAC(t, "admin", "admin", "staff"); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
}

func TestRBAC_DisallowedRole(t *testing.T) {
	err := runRBAC(t, "customer", "admin")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	err := runRBAC(t, "", "admin")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}
