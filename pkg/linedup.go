// Package pkg is a package that provides utilities for lfichef.
package pkg

import (
	"crypto/sha256"
	"log/slog"
	"sync"
)

// LineDup tracks lines that were already emitted so duplicates can be
// suppressed. Lines are keyed by their SHA-256 digest so the set stays small
// even when payloads are long.
type LineDup interface {
	Add(line string) bool
	Len() int
	Reset()
}

type lineDupImpl struct {
	mu   sync.Mutex
	seen map[[sha256.Size]byte]struct{}
}

// NewLineDup creates an empty dedup set.
func NewLineDup() LineDup {
	return &lineDupImpl{
		seen: make(map[[sha256.Size]byte]struct{}),
	}
}

// Add records the line and reports whether it was seen for the first time.
func (d *lineDupImpl) Add(line string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := sha256.Sum256([]byte(line))
	if _, ok := d.seen[key]; ok {
		slog.Debug("suppressed duplicate line", "length", len(line))
		return false
	}

	d.seen[key] = struct{}{}

	return true
}

// Len returns the number of distinct lines recorded so far.
func (d *lineDupImpl) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.seen)
}

// Reset discards all recorded lines.
func (d *lineDupImpl) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seen = make(map[[sha256.Size]byte]struct{})
}
