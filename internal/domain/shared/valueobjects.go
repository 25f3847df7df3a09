// Package shared contains common domain types and errors
// that are used across all domain packages.
package shared

import (
	"strings"
	"sync"
)

// ═══════════════════════════════════════════════════════════════════════════
// ID Sequence
// ═══════════════════════════════════════════════════════════════════════════

// IDSource hands out entity identifiers.
type IDSource interface {
	Next() int
}

// Sequence is a monotonically increasing identifier generator starting at 1.
// Each entity type owns its own Sequence, so counters never interfere.
type Sequence struct {
	mu      sync.Mutex
	current int
}

// NewSequence creates a Sequence whose first Next() returns 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next advances the sequence and returns the new value.
func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current++
	return s.current
}

// Current returns the last value handed out, or 0 if none.
func (s *Sequence) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Reset rewinds the sequence so the next value is 1 again.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
}

// ═══════════════════════════════════════════════════════════════════════════
// String helpers
// ═══════════════════════════════════════════════════════════════════════════

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EqualFold compares two strings case-insensitively after trimming the probe.
func EqualFold(stored, probe string) bool {
	return strings.EqualFold(stored, strings.TrimSpace(probe))
}
