package irc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// chunkReader serves its payload in caller-chosen slices to exercise
// arbitrary transport chunk boundaries.
type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func collectLines(t *testing.T, chunks ...string) []string {
	t.Helper()
	f := NewFramer(&chunkReader{chunks: chunks})
	var lines []string
	for {
		line, err := f.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("Next() error: %v", err)
			}
			return lines
		}
		lines = append(lines, line)
	}
}

func TestFramerChunkingInvariance(t *testing.T) {
	const stream = "first line\r\nsecond\r\n\r\n:third with colon\r\n"
	want := []string{"first line", "second", "", ":third with colon"}

	// Every possible split point of the stream into two chunks, including
	// splits inside the CRLF terminator, must yield the same lines.
	for cut := 0; cut <= len(stream); cut++ {
		got := collectLines(t, stream[:cut], stream[cut:])
		if len(got) != len(want) {
			t.Fatalf("cut %d: got %d lines %q, want %q", cut, len(got), got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("cut %d: line %d = %q, want %q", cut, i, got[i], want[i])
			}
		}
	}

	// Byte-at-a-time delivery.
	var single []string
	for _, b := range stream {
		single = append(single, string(b))
	}
	got := collectLines(t, single...)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("byte-at-a-time: got %q, want %q", got, want)
	}
}

func TestFramerMultipleLinesPerChunk(t *testing.T) {
	got := collectLines(t, "a\r\nb\r\nc\r\n")
	want := []string{"a", "b", "c"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFramerEmptyLineYielded(t *testing.T) {
	got := collectLines(t, "a\r\n\r\nb\r\n")
	if len(got) != 3 || got[1] != "" {
		t.Errorf("empty line not yielded: %q", got)
	}
}

func TestFramerTrailingFragmentDiscarded(t *testing.T) {
	got := collectLines(t, "complete\r\nincompl")
	if len(got) != 1 || got[0] != "complete" {
		t.Errorf("got %q, want just [complete]", got)
	}
}

func TestFramerDrainsBufferBeforeReadError(t *testing.T) {
	// A final chunk carrying both complete lines and the EOF must still
	// yield those lines before reporting end of stream.
	r := &chunkReader{chunks: []string{"x\r\ny\r\n"}}
	f := NewFramer(r)
	for _, want := range []string{"x", "y"} {
		line, err := f.Next()
		if err != nil {
			t.Fatalf("Next() error before buffer drained: %v", err)
		}
		if line != want {
			t.Errorf("line = %q, want %q", line, want)
		}
	}
	if _, err := f.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestFramerPropagatesReadError(t *testing.T) {
	wantErr := errors.New("boom")
	f := NewFramer(io.MultiReader(strings.NewReader("ok\r\n"), &failReader{err: wantErr}))
	if line, err := f.Next(); err != nil || line != "ok" {
		t.Fatalf("Next() = %q, %v", line, err)
	}
	if _, err := f.Next(); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

type failReader struct{ err error }

func (r *failReader) Read([]byte) (int, error) { return 0, r.err }
