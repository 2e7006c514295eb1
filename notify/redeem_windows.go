//go:build windows

package notify

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procSendInput                = user32.NewProc("SendInput")
)

const (
	swRestore = 9

	vkControl = 0x11
	vkBack    = 0x08
	vkReturn  = 0x0D
	vkA       = 0x41

	keyeventfKeyUp   = 0x0002
	keyeventfUnicode = 0x0004
)

// keyboardInput mirrors KEYBDINPUT.
type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors INPUT with the union padded to MOUSEINPUT's size.
type input struct {
	inputType uint32
	_         uint32
	ki        keyboardInput
	_         [8]byte
}

const inputKeyboard = 1

// findProcessByName walks a toolhelp snapshot and returns the first PID
// whose executable name matches (case-insensitive).
func findProcessByName(name string) (int, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	for err = windows.Process32First(snap, &pe); err == nil; err = windows.Process32Next(snap, &pe) {
		exe := windows.UTF16ToString(pe.ExeFile[:])
		if strings.EqualFold(exe, name) {
			return int(pe.ProcessID), nil
		}
	}
	return 0, fmt.Errorf("no process named %s", name)
}

// findWindowForPID returns the first visible top-level window owned by pid.
// Enumeration order is whatever the OS gives us; with more than one window
// this is a heuristic, not a guarantee.
func findWindowForPID(pid int) (windows.HWND, error) {
	var found windows.HWND
	cb := syscall.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		visible, _, _ := procIsWindowVisible.Call(uintptr(hwnd))
		if visible == 0 {
			return 1 // continue
		}
		var owner uint32
		procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&owner)))
		if int(owner) != pid {
			return 1
		}
		found = hwnd
		return 0 // stop enumeration
	})
	procEnumWindows.Call(cb, 0)
	if found == 0 {
		return 0, fmt.Errorf("no visible window for pid %d", pid)
	}
	return found, nil
}

func enterCode(pid int, code string, sendEnter bool) error {
	hwnd, err := findWindowForPID(pid)
	if err != nil {
		return err
	}
	procShowWindow.Call(uintptr(hwnd), swRestore)
	if ok, _, _ := procSetForegroundWindow.Call(uintptr(hwnd)); ok == 0 {
		return errors.New("could not bring target window to foreground")
	}
	// Let the window settle before keystrokes land.
	time.Sleep(250 * time.Millisecond)

	// Ctrl+A, Backspace to clear the field, then the code itself.
	var seq []input
	seq = append(seq,
		keyDown(vkControl), keyDown(vkA), keyUp(vkA), keyUp(vkControl),
		keyDown(vkBack), keyUp(vkBack),
	)
	for _, r := range code {
		seq = append(seq, charDown(r), charUp(r))
	}
	if sendEnter {
		seq = append(seq, keyDown(vkReturn), keyUp(vkReturn))
	}
	sent, _, _ := procSendInput.Call(
		uintptr(len(seq)),
		uintptr(unsafe.Pointer(&seq[0])),
		unsafe.Sizeof(seq[0]),
	)
	if int(sent) != len(seq) {
		return fmt.Errorf("sent %d of %d key events", sent, len(seq))
	}
	return nil
}

func keyDown(vk uint16) input {
	return input{inputType: inputKeyboard, ki: keyboardInput{wVk: vk}}
}

func keyUp(vk uint16) input {
	return input{inputType: inputKeyboard, ki: keyboardInput{wVk: vk, dwFlags: keyeventfKeyUp}}
}

func charDown(r rune) input {
	return input{inputType: inputKeyboard, ki: keyboardInput{wScan: uint16(r), dwFlags: keyeventfUnicode}}
}

func charUp(r rune) input {
	return input{inputType: inputKeyboard, ki: keyboardInput{wScan: uint16(r), dwFlags: keyeventfUnicode | keyeventfKeyUp}}
}
