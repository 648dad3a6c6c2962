// @lixen: #dev{feature[metrics(cmd)]}
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Tally is a thread-safe set of named counters
// Registration uses mutex; increments on a cached counter are lock-free
type Tally struct {
	mu     sync.RWMutex
	counts map[string]*atomic.Int64
}

// NewTally creates an empty Tally
func NewTally() *Tally {
	return &Tally{
		counts: make(map[string]*atomic.Int64),
	}
}

// Counter returns the counter for key, creating it if absent
func (t *Tally) Counter(key string) *atomic.Int64 {
	// Fast path: RLock check
	t.mu.RLock()
	if ptr, ok := t.counts[key]; ok {
		t.mu.RUnlock()
		return ptr
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := t.counts[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	t.counts[key] = ptr
	return ptr
}

// Inc adds one to key and returns the new value
func (t *Tally) Inc(key string) int64 {
	return t.Counter(key).Add(1)
}

// Get returns the current value for key, zero if never registered
func (t *Tally) Get(key string) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if ptr, ok := t.counts[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Entry is one counter value captured by Snapshot
type Entry struct {
	Key   string
	Value int64
}

// Snapshot returns all counters in sorted key order
func (t *Tally) Snapshot() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Entry, 0, len(t.counts))
	for k, ptr := range t.counts {
		out = append(out, Entry{Key: k, Value: ptr.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of registered counters
func (t *Tally) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.counts)
}
