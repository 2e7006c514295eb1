package irc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	"github.com/onnwee/code-sniper/telemetry"
)

// DefaultAddr is the plaintext Twitch IRC endpoint.
const DefaultAddr = "irc.chat.twitch.tv:6667"

const (
	pingPrefix   = "PING"
	pongReply    = "PONG :tmi.twitch.tv"
	payloadDelim = " :"
)

// Handler receives the chat payload of each content line, in arrival order.
type Handler func(payload string)

// Session owns one IRC connection for its whole lifetime; it is not reused
// after Serve returns.
type Session struct {
	// Addr overrides DefaultAddr, mainly for tests.
	Addr string

	Nick    string
	Token   string
	Channel string

	conn net.Conn
	fr   *Framer
}

// Connect dials the endpoint and sends the PASS/NICK/JOIN handshake.
// On any failure the connection is closed and a *ConnectError returned.
func (s *Session) Connect(ctx context.Context) error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &ConnectError{Addr: addr, Err: err}
	}
	s.Attach(conn)
	for _, line := range []string{
		"PASS " + s.Token,
		"NICK " + s.Nick,
		"JOIN " + s.Channel,
	} {
		if err := s.send(line); err != nil {
			_ = s.Close()
			return &ConnectError{Addr: addr, Err: err}
		}
	}
	slog.Info("joined channel", slog.String("channel", s.Channel), slog.String("nick", s.Nick))
	return nil
}

// Attach adopts an already-open transport instead of dialing. Tests use this
// with net.Pipe; Connect uses it internally.
func (s *Session) Attach(conn net.Conn) {
	s.conn = conn
	s.fr = NewFramer(conn)
}

// Serve blocks, pulling lines until the stream ends. PING probes are
// acknowledged immediately, before any further buffered line is handled.
// Content lines have their payload (the suffix after the last " :")
// forwarded to handler; lines without the delimiter carry no payload and
// are dropped. A clean EOF or a connection reset ends the loop with a nil
// error; an EOF before any line at all is reported as ErrAuthFailed.
// The connection is released on every exit path.
func (s *Session) Serve(handler Handler) error {
	defer func() { _ = s.Close() }()
	gotLine := false
	for {
		line, err := s.fr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) || isReset(err) {
				if !gotLine {
					return ErrAuthFailed
				}
				slog.Info("disconnected", slog.String("channel", s.Channel))
				return nil
			}
			return fmt.Errorf("irc: read: %w", err)
		}
		gotLine = true
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, pingPrefix) {
			if err := s.send(pongReply); err != nil {
				if isReset(err) {
					slog.Info("disconnected during keepalive reply", slog.String("channel", s.Channel))
					return nil
				}
				return fmt.Errorf("irc: keepalive reply: %w", err)
			}
			telemetry.CountKeepalive()
			continue
		}
		telemetry.CountLine()
		if i := strings.LastIndex(line, payloadDelim); i >= 0 {
			handler(line[i+len(payloadDelim):])
		}
	}
}

// Close releases the transport. Safe to call more than once.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *Session) send(line string) error {
	_, err := s.conn.Write([]byte(line + "\r\n"))
	return err
}
