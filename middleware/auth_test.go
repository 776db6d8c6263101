package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func callAdminGate(t *testing.T, role string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", role)

	handler := AdminOnly()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if err := handler(c); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestAdminOnlyRejectsCustomerRole(t *testing.T) {
	rec := callAdminGate(t, "customer")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Access denied") {
		t.Fatalf("expected the fixed access-denied message, got %s", rec.Body.String())
	}
}

func TestAdminOnlyRejectsMissingRole(t *testing.T) {
	rec := callAdminGate(t, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	rec := callAdminGate(t, "admin")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
