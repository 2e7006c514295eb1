package telemetry

import (
	"context"
	"testing"
)

func TestCountersNilSafeBeforeInit(t *testing.T) {
	// Library code counts unconditionally; before Init every helper must
	// be a no-op rather than a nil deref.
	CountLine()
	CountKeepalive()
	CountDetected()
	CountRepeat()
	CountClipboard(true)
	CountClipboard(false)
	CountAutomation(true)
	SetSeenCodes(3)
}

func TestInitIdempotent(t *testing.T) {
	Init()
	Init() // second call must not re-register (promauto panics on duplicates)
	if CodesDetected == nil || SeenCodesGauge == nil {
		t.Fatal("metrics not registered after Init")
	}
	CountDetected()
	SetSeenCodes(1)
}

func TestCorrelation(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelation(ctx); got != "" {
		t.Errorf("GetCorrelation(empty ctx) = %q, want empty", got)
	}
	ctx = WithCorrelation(ctx, "abc-123")
	if got := GetCorrelation(ctx); got != "abc-123" {
		t.Errorf("GetCorrelation = %q, want abc-123", got)
	}
	if l := LoggerWithCorr(ctx); l == nil {
		t.Fatal("LoggerWithCorr returned nil")
	}
}
