package rewrite

import (
	"testing"

	"github.com/coregx/sqlmorph/internal/typemap"
	"github.com/stretchr/testify/assert"
)

func TestReplaceToken_WholeTokenOnly(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want string
	}{
		{"Plain token", "id INT NOT NULL", "id INTEGER NOT NULL"},
		{"Token at start", "INT id", "INTEGER id"},
		{"Token at end", "id INT", "id INTEGER"},
		{"No match inside identifier", "PRINT INTX TINYINT", "PRINT INTX TINYINT"},
		{"Adjacent punctuation", "a INT, b INT)", "a INTEGER, b INTEGER)"},
		{"Multiple occurrences", "INT INT INT", "INTEGER INTEGER INTEGER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceToken(tt.buf, "INT", "INTEGER"))
		})
	}
}

func TestReplaceToken_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "id INTEGER", ReplaceToken("id int", "INT", "INTEGER"))
	assert.Equal(t, "id INTEGER", ReplaceToken("id Int", "INT", "INTEGER"))
	assert.Equal(t, "id INTEGER", ReplaceToken("id INT", "int", "INTEGER"))
}

func TestReplaceToken_MultiWordToken(t *testing.T) {
	got := ReplaceToken("v DOUBLE PRECISION NOT NULL", "DOUBLE PRECISION", "DOUBLE")
	assert.Equal(t, "v DOUBLE NOT NULL", got)
}

func TestReplaceToken_EmptyReplacementConsumesSpace(t *testing.T) {
	got := ReplaceToken("id INT UNSIGNED NOT NULL", "UNSIGNED", "")
	assert.Equal(t, "id INT NOT NULL", got)

	got = ReplaceToken("UNSIGNED first", "UNSIGNED", "")
	assert.Equal(t, " first", got)
}

func TestReplaceToken_LiteralNotPattern(t *testing.T) {
	// Regex metacharacters in the token must not be interpreted.
	got := ReplaceToken("a B.R c", "B.R", "X")
	assert.Equal(t, "a X c", got)
	got = ReplaceToken("a BAR c", "B.R", "X")
	assert.Equal(t, "a BAR c", got)
}

func TestReplaceToken_PunctuatedToken(t *testing.T) {
	// A token ending in a non-word character carries no trailing word
	// boundary; it must still match before a comma or closing parenthesis.
	got := ReplaceToken("flag TINYINT(1) NOT NULL,", "TINYINT(1)", "BOOLEAN")
	assert.Equal(t, "flag BOOLEAN NOT NULL,", got)

	got = ReplaceToken("a TINYINT(1), b TINYINT(1))", "TINYINT(1)", "BOOLEAN")
	assert.Equal(t, "a BOOLEAN, b BOOLEAN)", got)

	// The word-character edge still anchors: TINYINT(1) must not match the
	// TINYINT(1 prefix of TINYINT(10), and XTINYINT(1) stays whole.
	got = ReplaceToken("a TINYINT(10)", "TINYINT(1)", "BOOLEAN")
	assert.Equal(t, "a TINYINT(10)", got)
	got = ReplaceToken("a XTINYINT(1)", "TINYINT(1)", "BOOLEAN")
	assert.Equal(t, "a XTINYINT(1)", got)
}

func TestReplaceToken_ReplacementIsLiteral(t *testing.T) {
	// $ in the replacement must not be expanded as a capture reference.
	got := ReplaceToken("price MONEY", "MONEY", "NUMERIC -- $1")
	assert.Equal(t, "price NUMERIC -- $1", got)
}

func TestReplaceToken_EmptyToken(t *testing.T) {
	assert.Equal(t, "unchanged", ReplaceToken("unchanged", "", "X"))
}

func TestApplyTable_SequentialOrder(t *testing.T) {
	// The first entry's output is visible to the second entry: A -> B, then
	// B -> C turns every A into C. Table order is the contract.
	tbl := typemap.NewTable(
		typemap.Mapping{From: "A", To: "B"},
		typemap.Mapping{From: "B", To: "C"},
	)
	assert.Equal(t, "C C", ApplyTable("A B", tbl))

	// Reversed order leaves the intermediate value in place.
	rev := typemap.NewTable(
		typemap.Mapping{From: "B", To: "C"},
		typemap.Mapping{From: "A", To: "B"},
	)
	assert.Equal(t, "B C", ApplyTable("A B", rev))
}

func TestApplyTable_Idempotent(t *testing.T) {
	// Re-running a base-style table over its own output changes nothing when
	// no entry re-introduces another entry's key.
	tbl := typemap.NewTable(
		typemap.Mapping{From: "TINYINT", To: "SMALLINT"},
		typemap.Mapping{From: "INT", To: "INTEGER"},
		typemap.Mapping{From: "DATETIME", To: "TIMESTAMP"},
	)
	in := "a TINYINT, b INT, c DATETIME"
	once := ApplyTable(in, tbl)
	assert.Equal(t, once, ApplyTable(once, tbl))
}

func TestApplyTable_EmptyTable(t *testing.T) {
	assert.Equal(t, "as is", ApplyTable("as is", typemap.NewTable()))
}
