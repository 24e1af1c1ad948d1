package observability

import (
	"context"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc , broken, =x, tenant=bakery ")
	want := map[string]string{"api-key": "abc", "tenant": "bakery"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	if ParseHeaders("  ") != nil {
		t.Fatalf("expected nil for blank input")
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{Enabled: false})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestClampRatio(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v)=%v want %v", in, got, want)
		}
	}
}
