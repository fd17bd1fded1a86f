package typemap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/sqlmorph/internal/dialects"
)

// Errors returned by Dictionary.AddCustomMapping.
var (
	// ErrUnknownPair is returned when the pair is not one of the six
	// supported directed dialect pairs.
	ErrUnknownPair = errors.New("unknown dialect pair")
	// ErrEmptyTypeName is returned when the source or target type is empty.
	ErrEmptyTypeName = errors.New("type name must not be empty")
)

// Dictionary resolves type-mapping tables for directed dialect pairs.
// The shared base tables are immutable; custom mappings live in a
// per-dictionary override layer and win over base entries at lookup time.
//
// A Dictionary is not safe for concurrent mutation. Conversions running in
// parallel should each use their own Dictionary (or share one that is no
// longer being mutated).
type Dictionary struct {
	overrides map[dialects.Pair]*Table
}

// NewDictionary creates a dictionary with an empty override layer.
func NewDictionary() *Dictionary {
	return &Dictionary{overrides: make(map[dialects.Pair]*Table)}
}

// Lookup returns the mapping table for pair: the base table merged with any
// custom overrides for that pair. Neither the base table nor the override
// layer is mutated; the returned table is safe for the caller to modify.
// Unknown pairs yield an empty table.
func (d *Dictionary) Lookup(pair dialects.Pair) *Table {
	base, ok := baseTables[pair]
	if !ok {
		return NewTable()
	}
	return base.Merge(d.overrides[pair])
}

// AddCustomMapping inserts or overwrites a custom type mapping for pair.
// Both type names are upper-cased before insertion. Returns ErrUnknownPair
// for a pair without a base table and ErrEmptyTypeName when either type name
// is empty or whitespace.
func (d *Dictionary) AddCustomMapping(pair dialects.Pair, sourceType, targetType string) error {
	if _, ok := baseTables[pair]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPair, pair.String())
	}
	if strings.TrimSpace(sourceType) == "" || strings.TrimSpace(targetType) == "" {
		return ErrEmptyTypeName
	}

	ov := d.overrides[pair]
	if ov == nil {
		ov = NewTable()
		d.overrides[pair] = ov
	}
	ov.Set(strings.TrimSpace(sourceType), strings.TrimSpace(targetType))
	return nil
}
