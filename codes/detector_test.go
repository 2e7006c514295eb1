package codes

import (
	"context"
	"sync"
	"testing"
)

// fakeNotifier records invocations; CopyToClipboard pretends to succeed.
type fakeNotifier struct {
	mu       sync.Mutex
	notified []string
	copied   []string
	entered  []string
}

func (f *fakeNotifier) Notify(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, code)
}

func (f *fakeNotifier) CopyToClipboard(code string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copied = append(f.copied, code)
	return true
}

func (f *fakeNotifier) AutoEnter(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entered = append(f.entered, code)
}

func newTestDetector(t *testing.T) (*Detector, *fakeNotifier) {
	t.Helper()
	m, err := NewMatcher(defaultPattern)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	fn := &fakeNotifier{}
	return &Detector{Matcher: m, Registry: NewRegistry(), Notifier: fn}, fn
}

func TestSelfTestPayloadEndToEnd(t *testing.T) {
	d, fn := newTestDetector(t)
	d.HandleMessage(context.Background(), "TEST-CODE-1234-ABCD")
	if len(fn.notified) != 1 || fn.notified[0] != "TEST-CODE-1234-ABCD" {
		t.Errorf("notified = %q, want exactly one TEST-CODE-1234-ABCD", fn.notified)
	}
	if len(fn.copied) != 1 || len(fn.entered) != 1 {
		t.Errorf("copied = %q entered = %q, want one of each", fn.copied, fn.entered)
	}
	if d.Registry.Len() != 1 {
		t.Errorf("registry Len = %d, want 1", d.Registry.Len())
	}
}

func TestRepeatCodeNotifiesOnce(t *testing.T) {
	d, fn := newTestDetector(t)
	ctx := context.Background()
	d.HandleMessage(ctx, "grab ABCD-1234-EFGH-5678 now")
	d.HandleMessage(ctx, "again ABCD-1234-EFGH-5678")
	if len(fn.notified) != 1 {
		t.Errorf("notified %d times, want 1", len(fn.notified))
	}
}

func TestDuplicateWithinOnePayloadNotifiesOnce(t *testing.T) {
	d, fn := newTestDetector(t)
	d.HandleMessage(context.Background(), "X1X1-X1X1-X1X1-X1X1 and X1X1-X1X1-X1X1-X1X1")
	if len(fn.notified) != 1 {
		t.Errorf("notified %d times, want 1", len(fn.notified))
	}
}

func TestNoCodeNoNotification(t *testing.T) {
	d, fn := newTestDetector(t)
	d.HandleMessage(context.Background(), "no code here")
	if len(fn.notified) != 0 || len(fn.copied) != 0 || len(fn.entered) != 0 {
		t.Errorf("unexpected notifier activity: %+v", fn)
	}
}

func TestLowercasePayloadCanonicalized(t *testing.T) {
	d, fn := newTestDetector(t)
	ctx := context.Background()
	d.HandleMessage(ctx, "abcd-1234-efgh-5678")
	d.HandleMessage(ctx, "ABCD-1234-EFGH-5678")
	if len(fn.notified) != 1 || fn.notified[0] != "ABCD-1234-EFGH-5678" {
		t.Errorf("notified = %q, want one uppercase code", fn.notified)
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	m, _ := NewMatcher(defaultPattern)
	d := &Detector{Matcher: m, Registry: NewRegistry()}
	d.HandleMessage(context.Background(), "ABCD-1234-EFGH-5678")
	if d.Registry.Len() != 1 {
		t.Errorf("registry Len = %d, want 1", d.Registry.Len())
	}
}
