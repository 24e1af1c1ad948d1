package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/platform/ctxutil"
)

func TestAttachTraceContextHonoursInboundIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/bakeries", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/bakeries", nil)
	req.Header.Set(headerRequestID, "req-123")
	req.Header.Set(headerTraceID, "trace-abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.RequestID != "req-123" || seen.TraceID != "trace-abc" {
		t.Fatalf("unexpected trace data: %+v", seen)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("request id header=%q", got)
	}
}

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/bakeries", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/bakeries", nil)
	req.Header.Set(headerRequestID, strings.Repeat("x", maxHeaderIDLen+1))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	reqID := rec.Header().Get(headerRequestID)
	if len(reqID) != 36 {
		t.Fatalf("expected generated uuid request id, got %q", reqID)
	}
	if rec.Header().Get(headerTraceID) == "" {
		t.Fatalf("missing trace id header")
	}
}
