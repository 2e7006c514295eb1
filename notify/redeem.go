package notify

import (
	"fmt"
	"log/slog"
	"sync"
)

// DefaultProcessName is the executable the redeemer looks for when no PID
// was configured.
const DefaultProcessName = "EADesktop.exe"

// Redeemer types a code into a target application's input field. The chain
// is: resolve the process id (explicit or discovered by executable name),
// find a visible top-level window owned by it, bring it to the foreground,
// clear the field, type the code, and optionally confirm with Enter. Any
// step failing aborts the rest; nothing is retried.
type Redeemer struct {
	// PID of the target process; 0 triggers auto-discovery on first use.
	PID int
	// SendEnter appends a confirm keystroke after the code.
	SendEnter bool
	// ProcessName used for auto-discovery; defaults to DefaultProcessName.
	ProcessName string

	mu sync.Mutex
}

// Enter performs one best-effort redeem attempt.
func (r *Redeemer) Enter(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.PID == 0 {
		name := r.ProcessName
		if name == "" {
			name = DefaultProcessName
		}
		pid, err := findProcessByName(name)
		if err != nil {
			return fmt.Errorf("auto-detect %s: %w", name, err)
		}
		r.PID = pid
		slog.Info("auto-detected target process", slog.String("name", name), slog.Int("pid", pid))
	}
	return enterCode(r.PID, code, r.SendEnter)
}
