package codes

import "sync"

// Classification is the outcome of a registry check-and-insert.
type Classification int

const (
	// FirstSeen means the code was absent and has now been inserted.
	FirstSeen Classification = iota
	// Repeat means the code was already present.
	Repeat
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case FirstSeen:
		return "first-seen"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Registry is the set of codes seen during this process's lifetime. It only
// grows. Check-and-insert is a single critical section so that concurrent
// detections of the same code can never both observe "absent".
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Classify returns FirstSeen exactly once per distinct code, inserting it
// atomically with the membership check.
func (r *Registry) Classify(code string) Classification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[code]; ok {
		return Repeat
	}
	r.seen[code] = struct{}{}
	return FirstSeen
}

// Len returns the number of distinct codes seen so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
