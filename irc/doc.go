// Package irc implements the minimal Twitch IRC client the watcher needs:
// a CRLF line framer over an arbitrary byte stream and a session that
// performs the PASS/NICK/JOIN handshake, answers PING probes inline, and
// forwards chat payloads to a handler.
//
// The session is deliberately small. It handles lines strictly in arrival
// order on a single goroutine (keepalive timing and payload ordering both
// depend on that), never reconnects on its own, and treats a clean EOF or a
// connection reset as normal end-of-session rather than a failure.
package irc
