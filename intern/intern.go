/*
Package intern provides a pool of interned strings.

The selection engine never compares raw text while matching. Element names,
class names, IDs, attribute names and keyword-like tokens are interned once
and afterwards compared by handle identity. Every handle carries a
pre-computed case-folded twin, so caseless comparison is handle comparison
as well.

A Table is an explicit object; there is no process-wide pool. Handles from
different tables never compare equal, so a document universe (stylesheets,
adapter, selection context) must share one table.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intern

import (
	"sync"
)

// String is an interned string handle. Handles obtained from the same Table
// for equal text are identical pointers; clients compare them with `==`.
// The zero value is not a valid handle; use Table.Intern.
type String struct {
	data   string
	folded *String // case-folded twin; self-referential when already folded
}

// String returns the interned text.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return s.data
}

// Folded returns the handle for the ASCII-lowercased text. A handle which is
// already all lowercase is its own twin.
func (s *String) Folded() *String {
	if s == nil {
		return nil
	}
	return s.folded
}

// CaselessEq compares two handles ignoring ASCII case.
func (s *String) CaselessEq(other *String) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.folded == other.folded
}

// Table is a pool of interned strings. Interning is idempotent: interning the
// same text twice yields the same handle.
//
// A Table may be shared by concurrent selection calls; interning is the only
// mutation and is guarded internally. Everything else on a handle is
// immutable after creation.
type Table struct {
	mu sync.RWMutex
	m  map[string]*String
}

// NewTable creates an empty string pool.
func NewTable() *Table {
	return &Table{m: make(map[string]*String)}
}

// Intern returns the unique handle for s, creating it on first use.
func (t *Table) Intern(s string) *String {
	t.mu.RLock()
	h, ok := t.m[s]
	t.mu.RUnlock()
	if ok {
		return h
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.intern(s)
}

// intern must be called with the write lock held.
func (t *Table) intern(s string) *String {
	if h, ok := t.m[s]; ok {
		return h
	}
	h := &String{data: s}
	t.m[s] = h
	low := foldASCII(s)
	if low == s {
		h.folded = h
		return h
	}
	h.folded = t.intern(low)
	return h
}

// Size returns the number of distinct strings in the pool.
func (t *Table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// foldASCII lowercases A–Z only. CSS case-insensitivity is ASCII
// case-insensitivity; non-ASCII text folds to itself.
func foldASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
