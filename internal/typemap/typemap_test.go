package typemap

import (
	"testing"

	"github.com/coregx/sqlmorph/internal/dialects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetAndGet(t *testing.T) {
	tbl := NewTable()
	tbl.Set("tinyint", "smallint")

	got, ok := tbl.Get("TINYINT")
	assert.True(t, ok)
	assert.Equal(t, "SMALLINT", got, "both sides are stored upper-cased")

	got, ok = tbl.Get("TinyInt")
	assert.True(t, ok, "lookups are case-insensitive")
	assert.Equal(t, "SMALLINT", got)

	_, ok = tbl.Get("VARCHAR")
	assert.False(t, ok)
}

func TestTable_OrderPreserved(t *testing.T) {
	tbl := NewTable(
		Mapping{"B", "1"},
		Mapping{"A", "2"},
		Mapping{"C", "3"},
	)

	entries := tbl.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "B", entries[0].From)
	assert.Equal(t, "A", entries[1].From)
	assert.Equal(t, "C", entries[2].From)
}

func TestTable_OverwriteKeepsPosition(t *testing.T) {
	tbl := NewTable(
		Mapping{"A", "1"},
		Mapping{"B", "2"},
	)
	tbl.Set("a", "changed")

	entries := tbl.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Mapping{From: "A", To: "CHANGED"}, entries[0])
	assert.Equal(t, Mapping{From: "B", To: "2"}, entries[1])
}

func TestTable_Merge(t *testing.T) {
	base := NewTable(
		Mapping{"A", "1"},
		Mapping{"B", "2"},
	)
	override := NewTable(
		Mapping{"B", "overridden"},
		Mapping{"C", "3"},
	)

	merged := base.Merge(override)

	entries := merged.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Mapping{From: "A", To: "1"}, entries[0])
	assert.Equal(t, Mapping{From: "B", To: "OVERRIDDEN"}, entries[1], "override wins, position kept")
	assert.Equal(t, Mapping{From: "C", To: "3"}, entries[2], "new keys appended")

	// Neither source is mutated.
	got, _ := base.Get("B")
	assert.Equal(t, "2", got)
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 2, override.Len())
}

func TestTable_MergeNil(t *testing.T) {
	base := NewTable(Mapping{"A", "1"})
	merged := base.Merge(nil)
	assert.Equal(t, base.Entries(), merged.Entries())

	// Mutating the merge result must not touch the base.
	merged.Set("A", "2")
	got, _ := base.Get("A")
	assert.Equal(t, "1", got)
}

func TestBaseTables_AllPairsPresent(t *testing.T) {
	assert.Len(t, baseTables, 6)
	for _, pair := range dialects.Pairs() {
		_, ok := baseTables[pair]
		assert.True(t, ok, "missing base table for %s", pair)
	}
}

func TestBaseTables_Content(t *testing.T) {
	tests := []struct {
		pair dialects.Pair
		from string
		want string
	}{
		{dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}, "TINYINT", "SMALLINT"},
		{dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}, "DOUBLE", "DOUBLE PRECISION"},
		{dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}, "LONGBLOB", "BYTEA"},
		{dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}, "UNSIGNED", ""},
		{dialects.Pair{Source: dialects.Postgres, Target: dialects.MySQL}, "UUID", "CHAR(36)"},
		{dialects.Pair{Source: dialects.Postgres, Target: dialects.MySQL}, "BOOLEAN", "TINYINT(1)"},
		{dialects.Pair{Source: dialects.Postgres, Target: dialects.MySQL}, "MONEY", "DECIMAL(19,2)"},
		{dialects.Pair{Source: dialects.Postgres, Target: dialects.MySQL}, "TEXT", "LONGTEXT"},
		{dialects.Pair{Source: dialects.SQLite, Target: dialects.MySQL}, "REAL", "DOUBLE"},
		{dialects.Pair{Source: dialects.SQLite, Target: dialects.Postgres}, "BLOB", "BYTEA"},
		{dialects.Pair{Source: dialects.MySQL, Target: dialects.SQLite}, "DATETIME", "TEXT"},
		{dialects.Pair{Source: dialects.MySQL, Target: dialects.SQLite}, "YEAR", "INTEGER"},
		{dialects.Pair{Source: dialects.Postgres, Target: dialects.SQLite}, "MACADDR", "TEXT"},
		{dialects.Pair{Source: dialects.Postgres, Target: dialects.SQLite}, "MONEY", "REAL"},
	}

	for _, tt := range tests {
		t.Run(tt.pair.String()+"/"+tt.from, func(t *testing.T) {
			got, ok := baseTables[tt.pair].Get(tt.from)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeExists(t *testing.T) {
	assert.True(t, TypeExists("TINYINT"))
	assert.True(t, TypeExists("tinyint"), "case-insensitive")
	assert.True(t, TypeExists("BYTEA"))
	assert.True(t, TypeExists("uuid"))
	assert.False(t, TypeExists("GEOMETRY"))
	assert.False(t, TypeExists(""))
}

func TestDictionary_Lookup_NoOverrides(t *testing.T) {
	d := NewDictionary()
	pair := dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}

	tbl := d.Lookup(pair)
	got, ok := tbl.Get("TINYINT")
	require.True(t, ok)
	assert.Equal(t, "SMALLINT", got)

	// The caller may mutate the returned table without touching the base.
	tbl.Set("TINYINT", "MUTATED")
	got, _ = d.Lookup(pair).Get("TINYINT")
	assert.Equal(t, "SMALLINT", got)
}

func TestDictionary_Lookup_UnknownPair(t *testing.T) {
	d := NewDictionary()
	tbl := d.Lookup(dialects.Pair{Source: dialects.MySQL, Target: dialects.MySQL})
	assert.Equal(t, 0, tbl.Len())
}

func TestDictionary_AddCustomMapping(t *testing.T) {
	d := NewDictionary()
	pair := dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}
	other := dialects.Pair{Source: dialects.Postgres, Target: dialects.MySQL}

	require.NoError(t, d.AddCustomMapping(pair, "tinyint", "boolean"))

	got, ok := d.Lookup(pair).Get("TINYINT")
	require.True(t, ok)
	assert.Equal(t, "BOOLEAN", got, "override wins over the base entry")

	got, ok = d.Lookup(other).Get("TEXT")
	require.True(t, ok)
	assert.Equal(t, "LONGTEXT", got, "other pairs are unaffected")

	// The shared base table is untouched.
	base, _ := baseTables[pair].Get("TINYINT")
	assert.Equal(t, "SMALLINT", base)
}

func TestDictionary_AddCustomMapping_NewKey(t *testing.T) {
	d := NewDictionary()
	pair := dialects.Pair{Source: dialects.SQLite, Target: dialects.Postgres}

	require.NoError(t, d.AddCustomMapping(pair, "CLOB", "TEXT"))
	got, ok := d.Lookup(pair).Get("CLOB")
	require.True(t, ok)
	assert.Equal(t, "TEXT", got)
}

func TestDictionary_AddCustomMapping_Errors(t *testing.T) {
	d := NewDictionary()
	valid := dialects.Pair{Source: dialects.MySQL, Target: dialects.Postgres}

	err := d.AddCustomMapping(dialects.Pair{Source: dialects.MySQL, Target: dialects.MySQL}, "A", "B")
	assert.ErrorIs(t, err, ErrUnknownPair)

	err = d.AddCustomMapping(dialects.Pair{Source: "oracle", Target: dialects.MySQL}, "A", "B")
	assert.ErrorIs(t, err, ErrUnknownPair)

	assert.ErrorIs(t, d.AddCustomMapping(valid, "", "B"), ErrEmptyTypeName)
	assert.ErrorIs(t, d.AddCustomMapping(valid, "A", "   "), ErrEmptyTypeName)
}
