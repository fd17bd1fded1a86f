package core

import "github.com/coregx/sqlmorph/internal/dialects"

// pipelines maps each supported directed dialect pair to its ordered pass
// sequence. Pass order is load-bearing: the auto-increment/serial idiom
// passes must run before the generic type-mapping pass, and identifier
// quoting runs after type mapping so the lookahead keyword heuristic sees
// target-dialect type tokens. A pair missing from this map (including any
// degenerate source == target pair) is the "not implemented" branch: the
// session warns and returns the input unchanged.
var pipelines = map[dialects.Pair][]Pass{
	{Source: dialects.MySQL, Target: dialects.Postgres}: {
		textPass("auto-increment-to-serial", autoIncrementToSerial),
		typeMappingPass,
		textPass("backticks-to-double-quotes", backticksToDoubleQuotes),
		textPass("strip-engine-clause", stripEngineClause),
		textPass("strip-charset-clauses", stripCharsetClauses),
		textPass("mysql-functions-to-postgres", mysqlFunctionsToPostgres),
	},
	{Source: dialects.Postgres, Target: dialects.MySQL}: {
		textPass("serial-to-auto-increment", serialToAutoIncrement),
		typeMappingPass,
		textPass("double-quotes-to-backticks", doubleQuotesToBackticks),
		textPass("postgres-functions-to-mysql", postgresFunctionsToMySQL),
	},
	{Source: dialects.SQLite, Target: dialects.MySQL}: {
		textPass("sqlite-autoinc-to-auto-increment", sqliteAutoincToMySQL),
		typeMappingPass,
	},
	{Source: dialects.SQLite, Target: dialects.Postgres}: {
		textPass("sqlite-autoinc-to-serial", sqliteAutoincToSerial),
		typeMappingPass,
	},
	{Source: dialects.MySQL, Target: dialects.SQLite}: {
		textPass("auto-increment-to-sqlite-autoinc", autoIncrementToSQLite),
		typeMappingPass,
		textPass("backticks-to-double-quotes", backticksToDoubleQuotes),
		textPass("strip-engine-clause", stripEngineClause),
		textPass("strip-charset-clauses", stripCharsetClauses),
		textPass("strip-mysql-table-options", stripMySQLTableOptions),
	},
	{Source: dialects.Postgres, Target: dialects.SQLite}: {
		textPass("serial-to-sqlite-autoinc", serialToSQLiteAutoinc),
		typeMappingPass,
		textPass("strip-postgres-storage-clauses", stripPostgresStorageClauses),
	},
}

// pipelineFor returns the ordered pass sequence for a directed pair.
func pipelineFor(pair dialects.Pair) ([]Pass, bool) {
	passes, ok := pipelines[pair]
	return passes, ok
}
