// Package typemap holds the directed type-mapping dictionaries used by the
// conversion pipelines: one immutable base table per directed dialect pair,
// plus a per-dictionary custom override layer merged at lookup time.
package typemap

import "strings"

// Mapping is a single source-type to target-type rewrite entry.
// An empty To deletes the source token.
type Mapping struct {
	From string
	To   string
}

// Table is an ordered type-mapping table. Keys are unique and both sides are
// stored upper-cased. Iteration order is insertion order; the rewrite engine
// applies entries strictly in that order, so entries whose output could match
// a later key must be declared accordingly.
type Table struct {
	entries []Mapping
	index   map[string]int
}

// NewTable builds a table from the given entries, preserving their order.
// Later duplicates of a key overwrite the earlier value in place.
func NewTable(entries ...Mapping) *Table {
	t := &Table{index: make(map[string]int, len(entries))}
	for _, m := range entries {
		t.Set(m.From, m.To)
	}
	return t
}

// Set inserts or overwrites an entry. Both sides are upper-cased.
// Overwriting an existing key keeps its original position.
func (t *Table) Set(from, to string) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if i, ok := t.index[from]; ok {
		t.entries[i].To = to
		return
	}
	t.index[from] = len(t.entries)
	t.entries = append(t.entries, Mapping{From: from, To: to})
}

// Get returns the target token for an upper-cased source token.
func (t *Table) Get(from string) (string, bool) {
	i, ok := t.index[strings.ToUpper(from)]
	if !ok {
		return "", false
	}
	return t.entries[i].To, true
}

// Has reports whether the upper-cased source token is a key in the table.
func (t *Table) Has(from string) bool {
	_, ok := t.index[strings.ToUpper(from)]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in iteration order.
func (t *Table) Entries() []Mapping {
	out := make([]Mapping, len(t.entries))
	copy(out, t.entries)
	return out
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return NewTable(t.entries...)
}

// Merge returns a new table combining t with override, without mutating
// either. Override entries win on key collision and keep t's position for
// overridden keys; new override keys are appended after t's entries.
func (t *Table) Merge(override *Table) *Table {
	merged := t.Clone()
	if override != nil {
		for _, m := range override.entries {
			merged.Set(m.From, m.To)
		}
	}
	return merged
}
