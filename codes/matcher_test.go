package codes

import (
	"strings"
	"testing"
)

const defaultPattern = `\b[A-Z0-9]{4}(?:-[A-Z0-9]{4}){3}\b`

func TestExtractSingleCode(t *testing.T) {
	m, err := NewMatcher(defaultPattern)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got := m.Extract("ABCD-1234-EFGH-5678 grab it")
	if len(got) != 1 || got[0] != "ABCD-1234-EFGH-5678" {
		t.Errorf("Extract = %q, want exactly [ABCD-1234-EFGH-5678]", got)
	}
}

func TestExtractNoCode(t *testing.T) {
	m, _ := NewMatcher(defaultPattern)
	if got := m.Extract("no code here"); len(got) != 0 {
		t.Errorf("Extract = %q, want none", got)
	}
}

func TestExtractDuplicateCodesYieldBoth(t *testing.T) {
	m, _ := NewMatcher(defaultPattern)
	got := m.Extract("X1X1-X1X1-X1X1-X1X1 and X1X1-X1X1-X1X1-X1X1")
	if len(got) != 2 {
		t.Fatalf("Extract = %q, want two matches", got)
	}
	for _, c := range got {
		if c != "X1X1-X1X1-X1X1-X1X1" {
			t.Errorf("match = %q, want X1X1-X1X1-X1X1-X1X1", c)
		}
	}
}

func TestExtractUppercasesPayload(t *testing.T) {
	m, _ := NewMatcher(defaultPattern)
	got := m.Extract("code abcd-1234-efgh-5678 dropped")
	if len(got) != 1 || got[0] != "ABCD-1234-EFGH-5678" {
		t.Errorf("Extract = %q, want uppercased match", got)
	}
}

func TestExtractLeftToRightOrder(t *testing.T) {
	m, _ := NewMatcher(defaultPattern)
	got := m.Extract("AAAA-AAAA-AAAA-AAAA then BBBB-BBBB-BBBB-BBBB")
	want := "AAAA-AAAA-AAAA-AAAA|BBBB-BBBB-BBBB-BBBB"
	if strings.Join(got, "|") != want {
		t.Errorf("Extract order = %q, want %q", got, want)
	}
}

func TestExtractCustomPattern(t *testing.T) {
	m, err := NewMatcher(`CODE[0-9]{3}`)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got := m.Extract("try code123 twice code456")
	if len(got) != 2 || got[0] != "CODE123" || got[1] != "CODE456" {
		t.Errorf("Extract = %q, want [CODE123 CODE456]", got)
	}
}

func TestNewMatcherRejectsInvalidPattern(t *testing.T) {
	if _, err := NewMatcher("(unclosed"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
