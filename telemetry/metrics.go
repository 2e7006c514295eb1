// Package telemetry provides Prometheus metrics and correlation-id aware logging helpers.
package telemetry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	LinesProcessed     prometheus.Counter
	KeepalivesAnswered prometheus.Counter
	CodesDetected      prometheus.Counter
	CodesRepeated      prometheus.Counter
	ClipboardCopies    prometheus.Counter
	ClipboardFailures  prometheus.Counter
	AutomationRuns     prometheus.Counter
	AutomationFailures prometheus.Counter

	// Gauges
	SeenCodesGauge prometheus.Gauge
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		LinesProcessed = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_lines_processed_total", Help: "Number of content lines pulled off the IRC stream"})
		KeepalivesAnswered = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_keepalives_answered_total", Help: "Number of PING probes acknowledged"})
		CodesDetected = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_codes_detected_total", Help: "Number of first-seen codes"})
		CodesRepeated = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_codes_repeated_total", Help: "Number of repeat code sightings"})
		ClipboardCopies = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_clipboard_copies_total", Help: "Number of successful clipboard writes"})
		ClipboardFailures = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_clipboard_failures_total", Help: "Number of failed clipboard writes"})
		AutomationRuns = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_automation_runs_total", Help: "Number of auto-redeem attempts"})
		AutomationFailures = promauto.NewCounter(prometheus.CounterOpts{Name: "sniper_automation_failures_total", Help: "Number of auto-redeem attempts that failed partway"})
		SeenCodesGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "sniper_seen_codes", Help: "Current size of the seen-code registry"})
	})
}

// Counting helpers are nil-safe so library code works without Init (tests).

func CountLine()      { inc(LinesProcessed) }
func CountKeepalive() { inc(KeepalivesAnswered) }
func CountDetected()  { inc(CodesDetected) }
func CountRepeat()    { inc(CodesRepeated) }

func CountClipboard(ok bool) {
	if ok {
		inc(ClipboardCopies)
	} else {
		inc(ClipboardFailures)
	}
}

func CountAutomation(failed bool) {
	inc(AutomationRuns)
	if failed {
		inc(AutomationFailures)
	}
}

// SetSeenCodes records the current registry size.
func SetSeenCodes(n int) {
	if SeenCodesGauge != nil {
		SeenCodesGauge.Set(float64(n))
	}
}

func inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

// Correlation ID helpers ----------------------------------------------------

type corrKeyType struct{}

var corrKey corrKeyType

// WithCorrelation returns a new context embedding the correlation id.
func WithCorrelation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, corrKey, id)
}

// GetCorrelation returns the correlation id or empty string.
func GetCorrelation(ctx context.Context) string {
	if s, ok := ctx.Value(corrKey).(string); ok {
		return s
	}
	return ""
}

// LoggerWithCorr returns a logger with a corr attribute if present.
func LoggerWithCorr(ctx context.Context) *slog.Logger {
	if id := GetCorrelation(ctx); id != "" {
		return slog.Default().With(slog.String("corr", id))
	}
	return slog.Default()
}
