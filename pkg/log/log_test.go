package log_test

import (
	"context"
	"testing"

	"org-tasks-sync/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := log.TraceID(ctx); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	ctx = log.SetTraceID(ctx, "abc-123")
	if got := log.TraceID(ctx); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	}

	for _, cfg := range configs {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		ctx := log.SetTraceID(context.Background(), "trace")
		l.Infof(ctx, "hello %s", "world")
		l.Debug(ctx, "debug line")
	}

	log.NewNop().Error(context.Background(), "discarded")
}
