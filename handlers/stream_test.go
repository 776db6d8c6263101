package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func streamHealthContext(collection string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("collection")
	c.SetParamValues(collection)
	return c, rec
}

func TestStreamHealthRejectsUnknownCollection(t *testing.T) {
	c, rec := streamHealthContext("customers")

	if err := StreamHealth(c); err != nil {
		t.Fatalf("StreamHealth returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for non-streamable collection", rec.Code)
	}
}

func TestStreamHealthIdleBeforeFirstStream(t *testing.T) {
	c, rec := streamHealthContext("products")

	if err := StreamHealth(c); err != nil {
		t.Fatalf("StreamHealth returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"isHealthy":false`) {
		t.Fatalf("idle collection should report an unhealthy stream, got %s", body)
	}
}
