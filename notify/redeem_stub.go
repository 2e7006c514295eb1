//go:build !windows

package notify

import "errors"

var errUnsupported = errors.New("window automation is only implemented on windows")

func findProcessByName(string) (int, error) { return 0, errUnsupported }

func enterCode(int, string, bool) error { return errUnsupported }
