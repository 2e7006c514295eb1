package irc

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ErrAuthFailed reports that the server closed the connection before
// delivering a single line after the handshake, which is how Twitch
// signals a rejected PASS token at the IRC layer.
var ErrAuthFailed = errors.New("irc: server closed connection after handshake (bad credentials?)")

// ConnectError wraps a failure to open the transport or write the handshake.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("irc: connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// isReset reports whether err is a reset-class transport error, which the
// serve loop treats the same as a clean remote close.
func isReset(err error) bool {
	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, net.ErrClosed)
}
