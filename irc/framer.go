package irc

import (
	"bytes"
	"io"
)

var crlf = []byte("\r\n")

// Framer converts an arbitrarily chunked byte stream into complete
// CRLF-terminated lines. It owns an accumulation buffer: bytes up to and
// including each terminator are consumed per Next call, the remainder is
// retained for the following call. All lines already sitting in the buffer
// are yielded before the underlying reader is asked for more input.
type Framer struct {
	r    io.Reader
	buf  []byte
	err  error // deferred read error, surfaced once the buffer has no full line left
	tmp  [4096]byte
}

func NewFramer(r io.Reader) *Framer {
	return &Framer{r: r}
}

// Next returns the next complete line with its terminator stripped. An empty
// line (terminator directly after another) is returned as "". At end of
// stream it returns io.EOF; a trailing unterminated fragment is discarded,
// never yielded as a line. Other read errors are returned verbatim.
func (f *Framer) Next() (string, error) {
	for {
		if i := bytes.Index(f.buf, crlf); i >= 0 {
			line := string(f.buf[:i])
			f.buf = f.buf[i+len(crlf):]
			return line, nil
		}
		if f.err != nil {
			return "", f.err
		}
		n, err := f.r.Read(f.tmp[:])
		if n > 0 {
			f.buf = append(f.buf, f.tmp[:n]...)
		}
		if err != nil {
			// Drain whatever complete lines the final chunk produced
			// before reporting the error on the next iteration.
			f.err = err
		}
	}
}
