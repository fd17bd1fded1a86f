// Package dialects identifies the SQL dialects supported by sqlmorph
// (PostgreSQL, MySQL, and SQLite), resolves free-form dialect names through
// an alias table, and enumerates the directed dialect pairs a conversion can
// target.
package dialects

import "strings"

// Dialect identifies a supported SQL dialect by its canonical name.
type Dialect string

// Invalid is the zero Dialect, returned when resolution fails.
const Invalid Dialect = ""

var (
	names   []string
	aliases = make(map[string]string)
)

// registerDialect registers a dialect's canonical name and its accepted
// aliases. Called from init in the per-dialect files; registration order
// (file order) defines the order of Names.
func registerDialect(canonical Dialect, aliasNames ...string) {
	names = append(names, string(canonical))
	for _, a := range aliasNames {
		aliases[a] = string(canonical)
	}
}

// Resolve canonicalizes a free-form dialect name. Input is lower-cased and
// trimmed, then mapped through the alias table. Returns Invalid when the
// result is empty or not a supported dialect.
func Resolve(raw string) Dialect {
	s := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[s]; ok {
		s = canonical
	}
	for _, n := range names {
		if n == s {
			return Dialect(s)
		}
	}
	return Invalid
}

// Names returns the canonical dialect names in registration order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Aliases returns a copy of the alias table (alias -> canonical name),
// for user-facing listing.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Pair is a directed (source, target) dialect combination. Each valid pair
// selects one conversion pipeline.
type Pair struct {
	Source Dialect
	Target Dialect
}

// Valid reports whether both dialects are supported and distinct.
// A pair with equal source and target is degenerate: conversion is a no-op.
func (p Pair) Valid() bool {
	return p.Source != Invalid && p.Target != Invalid && p.Source != p.Target
}

// String returns the pair identifier, e.g. "mysql-to-postgres".
func (p Pair) String() string {
	return string(p.Source) + "-to-" + string(p.Target)
}

// Pairs returns the six valid directed dialect pairs.
func Pairs() []Pair {
	pairs := make([]Pair, 0, len(names)*(len(names)-1))
	for _, src := range names {
		for _, dst := range names {
			if src == dst {
				continue
			}
			pairs = append(pairs, Pair{Source: Dialect(src), Target: Dialect(dst)})
		}
	}
	return pairs
}
