// Package sqlmorph converts SQL schema text between MySQL, PostgreSQL, and
// SQLite dialects by applying ordered, whole-token text rewrites plus
// per-dialect-pair type-mapping tables. It never parses SQL into a syntax
// tree: input is treated as opaque text and transformed syntactically, which
// keeps the engine small and predictable but means dialect features with no
// textual analogue are passed through untouched.
package sqlmorph

import (
	"github.com/coregx/sqlmorph/internal/core"
	"github.com/coregx/sqlmorph/internal/dialects"
	"github.com/coregx/sqlmorph/internal/typemap"
)

type (
	// Session is a single conversion request; see NewSession.
	Session = core.Session
	// SessionOption configures a Session.
	SessionOption = core.SessionOption
	// ConversionError carries the error messages of a failed conversion.
	ConversionError = core.ConversionError

	// Dialect identifies a supported SQL dialect by canonical name.
	Dialect = dialects.Dialect
	// Pair is a directed (source, target) dialect combination.
	Pair = dialects.Pair

	// Dictionary resolves type-mapping tables and holds custom overrides.
	Dictionary = typemap.Dictionary
	// Table is an ordered type-mapping table.
	Table = typemap.Table
	// Mapping is a single source-type to target-type entry.
	Mapping = typemap.Mapping
)

// Supported dialects.
const (
	MySQL    = dialects.MySQL
	Postgres = dialects.Postgres
	SQLite   = dialects.SQLite
	// Invalid is returned by ResolveDialect when resolution fails.
	Invalid = dialects.Invalid
)

// MaxInputSize is the maximum accepted SQL input size in bytes.
const MaxInputSize = core.MaxInputSize

// Re-export core functions.
var (
	// NewSession creates a conversion session for one convert call.
	NewSession = core.NewSession
	// WithLogger sets the session logger.
	WithLogger = core.WithLogger
	// WithTracer sets the session tracer.
	WithTracer = core.WithTracer
	// WithDictionary sets the type dictionary carrying custom mappings.
	WithDictionary = core.WithDictionary
	// WithContext sets the context used for the conversion span.
	WithContext = core.WithContext

	// NewDictionary creates a dictionary with an empty override layer.
	NewDictionary = typemap.NewDictionary
	// TypeExists reports whether a type name is known to the base tables.
	TypeExists = typemap.TypeExists

	// ResolveDialect canonicalizes a free-form dialect name.
	ResolveDialect = dialects.Resolve
	// SupportedDialects lists the canonical dialect names.
	SupportedDialects = dialects.Names
	// DialectAliases lists the accepted aliases by canonical name.
	DialectAliases = dialects.Aliases
	// SupportedPairs lists the six valid directed dialect pairs.
	SupportedPairs = dialects.Pairs
)

// Convert is a convenience wrapper: it converts sql from the source to the
// target dialect in one call, returning the output together with any
// warnings. Use a Session directly when custom mappings, logging, or tracing
// are needed.
func Convert(sql, sourceDialect, targetDialect string) (output string, warnings []string, err error) {
	s := NewSession(sql, sourceDialect, targetDialect)
	out, err := s.ConvertOrFail()
	if err != nil {
		return "", nil, err
	}
	return out, s.Warnings(), nil
}
