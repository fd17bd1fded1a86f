package typemap

import "github.com/coregx/sqlmorph/internal/dialects"

// Base tables for the six directed dialect pairs. Entry order is load-bearing
// (the rewrite engine applies entries sequentially); compound tokens such as
// DOUBLE PRECISION are listed ahead of their shorter relatives.

var baseMySQLToPostgres = NewTable(
	Mapping{"TINYINT", "SMALLINT"},
	Mapping{"MEDIUMINT", "INTEGER"},
	Mapping{"INT", "INTEGER"},
	Mapping{"BIGINT", "BIGINT"},
	Mapping{"FLOAT", "REAL"},
	Mapping{"DOUBLE", "DOUBLE PRECISION"},
	Mapping{"DECIMAL", "NUMERIC"},
	Mapping{"DATETIME", "TIMESTAMP"},
	Mapping{"TINYTEXT", "TEXT"},
	Mapping{"MEDIUMTEXT", "TEXT"},
	Mapping{"LONGTEXT", "TEXT"},
	Mapping{"TINYBLOB", "BYTEA"},
	Mapping{"MEDIUMBLOB", "BYTEA"},
	Mapping{"LONGBLOB", "BYTEA"},
	Mapping{"BLOB", "BYTEA"},
	Mapping{"VARBINARY", "BYTEA"},
	Mapping{"BINARY", "BYTEA"},
	Mapping{"BIT", "BIT"},
	Mapping{"UNSIGNED", ""},
	Mapping{"ZEROFILL", ""},
)

var basePostgresToMySQL = NewTable(
	Mapping{"SMALLINT", "SMALLINT"},
	Mapping{"INTEGER", "INT"},
	Mapping{"BIGINT", "BIGINT"},
	Mapping{"REAL", "FLOAT"},
	Mapping{"DOUBLE PRECISION", "DOUBLE"},
	Mapping{"NUMERIC", "DECIMAL"},
	Mapping{"TIMESTAMPTZ", "DATETIME"},
	Mapping{"TIMESTAMP", "DATETIME"},
	Mapping{"BYTEA", "BLOB"},
	Mapping{"UUID", "CHAR(36)"},
	Mapping{"JSONB", "JSON"},
	Mapping{"JSON", "JSON"},
	Mapping{"BOOLEAN", "TINYINT(1)"},
	Mapping{"BOOL", "TINYINT(1)"},
	Mapping{"INET", "VARCHAR(45)"},
	Mapping{"CIDR", "VARCHAR(45)"},
	Mapping{"MACADDR", "VARCHAR(17)"},
	Mapping{"MONEY", "DECIMAL(19,2)"},
	Mapping{"INTERVAL", "VARCHAR(255)"},
	Mapping{"TEXT", "LONGTEXT"},
)

var baseSQLiteToMySQL = NewTable(
	Mapping{"REAL", "DOUBLE"},
	Mapping{"NUMERIC", "DECIMAL"},
	Mapping{"BLOB", "BLOB"},
	Mapping{"TEXT", "TEXT"},
)

var baseSQLiteToPostgres = NewTable(
	Mapping{"REAL", "DOUBLE PRECISION"},
	Mapping{"NUMERIC", "NUMERIC"},
	Mapping{"BLOB", "BYTEA"},
	Mapping{"TEXT", "TEXT"},
)

var baseMySQLToSQLite = NewTable(
	Mapping{"TINYINT", "INTEGER"},
	Mapping{"SMALLINT", "INTEGER"},
	Mapping{"MEDIUMINT", "INTEGER"},
	Mapping{"BIGINT", "INTEGER"},
	Mapping{"INT", "INTEGER"},
	Mapping{"FLOAT", "REAL"},
	Mapping{"DOUBLE", "REAL"},
	Mapping{"DECIMAL", "NUMERIC"},
	Mapping{"DATETIME", "TEXT"},
	Mapping{"TIMESTAMP", "TEXT"},
	Mapping{"DATE", "TEXT"},
	Mapping{"TIME", "TEXT"},
	Mapping{"YEAR", "INTEGER"},
	Mapping{"TINYTEXT", "TEXT"},
	Mapping{"MEDIUMTEXT", "TEXT"},
	Mapping{"LONGTEXT", "TEXT"},
	Mapping{"TINYBLOB", "BLOB"},
	Mapping{"MEDIUMBLOB", "BLOB"},
	Mapping{"LONGBLOB", "BLOB"},
	Mapping{"JSON", "TEXT"},
	Mapping{"BOOLEAN", "INTEGER"},
	Mapping{"BOOL", "INTEGER"},
)

var basePostgresToSQLite = NewTable(
	Mapping{"SMALLINT", "INTEGER"},
	Mapping{"INTEGER", "INTEGER"},
	Mapping{"BIGINT", "INTEGER"},
	Mapping{"DOUBLE PRECISION", "REAL"},
	Mapping{"REAL", "REAL"},
	Mapping{"NUMERIC", "NUMERIC"},
	Mapping{"BOOLEAN", "INTEGER"},
	Mapping{"BOOL", "INTEGER"},
	Mapping{"TIMESTAMPTZ", "TEXT"},
	Mapping{"TIMESTAMP", "TEXT"},
	Mapping{"DATE", "TEXT"},
	Mapping{"TIMETZ", "TEXT"},
	Mapping{"TIME", "TEXT"},
	Mapping{"INTERVAL", "TEXT"},
	Mapping{"UUID", "TEXT"},
	Mapping{"JSONB", "TEXT"},
	Mapping{"JSON", "TEXT"},
	Mapping{"INET", "TEXT"},
	Mapping{"CIDR", "TEXT"},
	Mapping{"MACADDR", "TEXT"},
	Mapping{"BYTEA", "BLOB"},
	Mapping{"MONEY", "REAL"},
)

// baseTables maps each directed pair to its immutable base table. The tables
// are never mutated after init; lookups that need to combine them with custom
// overrides merge into a fresh table instead.
var baseTables = map[dialects.Pair]*Table{
	{Source: dialects.MySQL, Target: dialects.Postgres}:  baseMySQLToPostgres,
	{Source: dialects.Postgres, Target: dialects.MySQL}:  basePostgresToMySQL,
	{Source: dialects.SQLite, Target: dialects.MySQL}:    baseSQLiteToMySQL,
	{Source: dialects.SQLite, Target: dialects.Postgres}: baseSQLiteToPostgres,
	{Source: dialects.MySQL, Target: dialects.SQLite}:    baseMySQLToSQLite,
	{Source: dialects.Postgres, Target: dialects.SQLite}: basePostgresToSQLite,
}

// primaryTables are the tables consulted by TypeExists. They cover the
// MySQL<->Postgres pairs plus the SQLite->MySQL and MySQL->SQLite pairs, which
// between them name every commonly written source type.
var primaryTables = []*Table{
	baseMySQLToPostgres,
	basePostgresToMySQL,
	baseSQLiteToMySQL,
	baseMySQLToSQLite,
}

// TypeExists reports whether name is a known source type in any of the
// primary base tables. Used for discoverability (help listings), not for
// conversion itself.
func TypeExists(name string) bool {
	for _, t := range primaryTables {
		if t.Has(name) {
			return true
		}
	}
	return false
}
