// Package rewrite implements the text-substitution primitive behind the
// conversion pipelines: case-insensitive, whole-token, literal replacements
// applied over a working buffer. The engine never parses SQL; input is opaque
// text and tokens are matched at word boundaries only.
package rewrite

import (
	"regexp"

	"github.com/coregx/sqlmorph/internal/typemap"
)

// ReplaceToken replaces every case-insensitive whole-token occurrence of
// token in buf with replacement. The token is treated as a literal string,
// never as a pattern; word boundaries prevent matches inside longer
// identifiers (INT does not match PRINT or INTX). A boundary is only
// asserted on a token edge that is itself a word character: a token like
// TINYINT(1) ends in ")" and a \b there would invert the check, rejecting
// the token before a comma while accepting it glued to an identifier. An
// empty replacement deletes the token together with any whitespace directly
// before it, so deletions do not leave doubled spaces behind.
func ReplaceToken(buf, token, replacement string) string {
	if token == "" {
		return buf
	}
	pattern := regexp.QuoteMeta(token)
	if isWordByte(token[0]) {
		pattern = `\b` + pattern
	}
	if isWordByte(token[len(token)-1]) {
		pattern += `\b`
	}
	if replacement == "" {
		pattern = `\s*` + pattern
	}
	return regexp.MustCompile(`(?i)` + pattern).ReplaceAllLiteralString(buf, replacement)
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ApplyTable applies a type-mapping table to buf, one entry at a time, in the
// table's iteration order. Each replacement sees the output of the previous
// one, so table order decides the result whenever one entry's output could
// match a later entry's key.
func ApplyTable(buf string, table *typemap.Table) string {
	for _, m := range table.Entries() {
		buf = ReplaceToken(buf, m.From, m.To)
	}
	return buf
}
