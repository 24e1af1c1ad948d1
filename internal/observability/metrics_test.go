package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/bakeries/:id", "404", 20*time.Millisecond)
	m.ObserveAPI("GET", "/bakeries", "200", 3*time.Millisecond)
	m.ObserveAPI("GET", "/bakeries", "500", time.Second)
	m.APIInflightInc()

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`bakery_api_requests_total{method="GET",route="/bakeries/:id",status="404"} 1`,
		`bakery_api_request_duration_seconds_bucket{method="GET",route="/bakeries",le="0.005"} 1`,
		`bakery_api_request_duration_seconds_bucket{method="GET",route="/bakeries",le="+Inf"} 2`,
		`bakery_api_request_duration_seconds_count{method="GET",route="/bakeries"} 2`,
		"bakery_api_inflight_requests 1",
		"bakery_api_server_errors_total 1",
		"# TYPE bakery_db_pool gauge",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.APIInflightInc()
	m.APIInflightDec()
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestEscapeLabel(t *testing.T) {
	if got := labelString([]string{"route"}, []string{`a"b\c`}); got != `{route="a\"b\\c"}` {
		t.Fatalf("got=%s", got)
	}
}
