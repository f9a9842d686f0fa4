package tracing

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), Options{ServiceName: "microloan-test", SampleRatio: 1}, zap.NewNop())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	_, span := Tracer.Start(context.Background(), "test-span")
	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span")
	}
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown error = %v", err)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, sdktrace.ParentBased(sdktrace.NeverSample()).Description()},
		{-1, sdktrace.ParentBased(sdktrace.NeverSample()).Description()},
		{1, sdktrace.ParentBased(sdktrace.AlwaysSample()).Description()},
		{0.25, sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25)).Description()},
	}
	for _, tt := range tests {
		if got := sampler(tt.ratio).Description(); got != tt.want {
			t.Errorf("sampler(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}
