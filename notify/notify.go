// Package notify implements the best-effort side effects fired for each
// first-seen code: audible alert, clipboard copy, and optional automated
// entry into a target desktop application. Nothing in this package returns
// an error to the caller; every failure is logged and swallowed so a broken
// desktop integration can never take down the chat session.
package notify

import (
	"log/slog"

	"github.com/onnwee/code-sniper/telemetry"
)

// Desktop is the default notifier. Capabilities are toggled individually;
// a zero value beeps and copies but does not auto-enter.
type Desktop struct {
	DisableBeep      bool
	DisableClipboard bool

	// Redeemer enables automated entry when non-nil.
	Redeemer *Redeemer

	// Writers overrides the clipboard strategy chain; nil uses
	// DefaultWriters().
	Writers []ClipboardWriter
}

// Notify raises the audible alert unless disabled.
func (d *Desktop) Notify(code string) {
	if d.DisableBeep {
		return
	}
	beep()
}

// CopyToClipboard tries each writer in priority order and reports whether
// any succeeded.
func (d *Desktop) CopyToClipboard(code string) bool {
	if d.DisableClipboard {
		return false
	}
	writers := d.Writers
	if writers == nil {
		writers = DefaultWriters()
	}
	for _, w := range writers {
		if err := w.Write(code); err != nil {
			slog.Debug("clipboard backend failed", slog.String("backend", w.Name()), slog.Any("err", err))
			continue
		}
		return true
	}
	slog.Warn("all clipboard backends failed", slog.String("code", code))
	return false
}

// AutoEnter runs the redeem chain when enabled. Failures are logged only;
// the detected-code notification already emitted is never retracted.
func (d *Desktop) AutoEnter(code string) {
	if d.Redeemer == nil {
		return
	}
	err := d.Redeemer.Enter(code)
	telemetry.CountAutomation(err != nil)
	if err != nil {
		slog.Warn("auto redeem failed", slog.String("code", code), slog.Any("err", err))
		return
	}
	slog.Info("auto entered (best-effort)", slog.String("code", code))
}
