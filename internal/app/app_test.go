package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/data/repos/testutil"
)

func TestBuildServesRoutes(t *testing.T) {
	gdb := testutil.DB(t)
	cfg := Config{
		Port:           "0",
		GinMode:        gin.TestMode,
		MetricsEnabled: true,
	}
	a := build(testutil.Logger(t), cfg, gdb)
	if a.Metrics == nil {
		t.Fatalf("expected metrics when enabled")
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bakeries", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("bakeries status=%d body=%s", w.Code, w.Body.String())
	}
}
