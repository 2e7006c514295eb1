package codes

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/onnwee/code-sniper/telemetry"
)

// Notifier is the best-effort side-effect surface invoked for first-seen
// codes. Implementations must never panic or block the caller on failure;
// every operation swallows its own errors.
type Notifier interface {
	// Notify raises an audible/visual alert.
	Notify(code string)
	// CopyToClipboard writes the code to the system clipboard and reports
	// whether any backend succeeded.
	CopyToClipboard(code string) bool
	// AutoEnter tries to type the code into the target application.
	AutoEnter(code string)
}

// Detector glues the matcher, the registry and the notifier together.
// HandleMessage is the single entry point the IRC session feeds payloads to.
type Detector struct {
	Matcher  *Matcher
	Registry *Registry
	Notifier Notifier // optional; nil disables side effects
}

// HandleMessage extracts every code from payload and classifies each one,
// dispatching notifier side effects on first sighting only.
func (d *Detector) HandleMessage(ctx context.Context, payload string) {
	for _, code := range d.Matcher.Extract(payload) {
		d.handleCode(ctx, code)
	}
}

func (d *Detector) handleCode(ctx context.Context, code string) {
	ctx, span := telemetry.StartSpan(ctx, "codes", "handle_code", attribute.String("code", code))
	defer span.End()
	log := telemetry.LoggerWithCorr(ctx)

	if d.Registry.Classify(code) == Repeat {
		telemetry.CountRepeat()
		log.Info("code repeat", slog.String("code", code))
		return
	}

	telemetry.CountDetected()
	telemetry.SetSeenCodes(d.Registry.Len())

	copied := false
	if d.Notifier != nil {
		copied = d.Notifier.CopyToClipboard(code)
		telemetry.CountClipboard(copied)
	}
	log.Info("code detected", slog.String("code", code), slog.Bool("copied", copied))
	if d.Notifier != nil {
		d.Notifier.Notify(code)
		d.Notifier.AutoEnter(code)
	}
	telemetry.SetSpanSuccess(span)
}
