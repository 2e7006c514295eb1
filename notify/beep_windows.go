//go:build windows

package notify

var procMessageBeep = user32.NewProc("MessageBeep")

func beep() {
	// MB_OK default system sound.
	procMessageBeep.Call(0)
}
