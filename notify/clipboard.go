package notify

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ClipboardWriter is one clipboard backend. Writers are tried in a fixed
// priority order; the first success wins.
type ClipboardWriter interface {
	Name() string
	Write(text string) error
}

// DefaultWriters returns the strategy chain for the current platform:
// the native backend first, then whatever external helpers the OS
// typically ships.
func DefaultWriters() []ClipboardWriter {
	ws := []ClipboardWriter{nativeWriter{}}
	switch runtime.GOOS {
	case "darwin":
		ws = append(ws, execWriter{"pbcopy", []string{"pbcopy"}})
	case "linux":
		ws = append(ws,
			execWriter{"wl-copy", []string{"wl-copy"}},
			execWriter{"xclip", []string{"xclip", "-selection", "clipboard"}},
			execWriter{"xsel", []string{"xsel", "--clipboard", "--input"}},
		)
	}
	return ws
}

type nativeWriter struct{}

func (nativeWriter) Name() string { return "native" }

func (nativeWriter) Write(text string) error {
	return clipboard.WriteAll(text)
}

// execWriter pipes the text into an external clipboard helper.
type execWriter struct {
	name string
	argv []string
}

func (w execWriter) Name() string { return w.name }

func (w execWriter) Write(text string) error {
	cmd := exec.Command(w.argv[0], w.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
