//go:build !windows

package notify

import "os"

func beep() {
	// Terminal bell; whether it is audible is up to the terminal.
	_, _ = os.Stdout.WriteString("\a")
}
