package core

import (
	"regexp"

	"github.com/coregx/sqlmorph/internal/rewrite"
	"github.com/coregx/sqlmorph/internal/typemap"
)

// Pass is one ordered text-rewrite step within a conversion pipeline.
// Apply receives the accumulated buffer and the merged type-mapping table for
// the session's dialect pair; passes that do not map types ignore the table.
type Pass struct {
	Name  string
	Apply func(buf string, table *typemap.Table) string
}

// textPass wraps a plain text transform as a Pass.
func textPass(name string, fn func(string) string) Pass {
	return Pass{Name: name, Apply: func(buf string, _ *typemap.Table) string { return fn(buf) }}
}

// typeMappingPass applies the session's merged type-mapping table.
var typeMappingPass = Pass{Name: "type-mapping", Apply: rewrite.ApplyTable}

// MySQL AUTO_INCREMENT idioms. These must be rewritten before the generic
// type-mapping pass runs: the mapping would otherwise rewrite the leading
// integer type token and the idiom patterns would no longer match.
var (
	mysqlBigintAutoIncPK = regexp.MustCompile(`(?i)\bBIGINT\s+AUTO_INCREMENT\s+PRIMARY\s+KEY\b`)
	mysqlBigintPKAutoInc = regexp.MustCompile(`(?i)\bBIGINT\s+PRIMARY\s+KEY\s+AUTO_INCREMENT\b`)
	mysqlIntAutoIncPK    = regexp.MustCompile(`(?i)\b(?:INT|INTEGER)\s+AUTO_INCREMENT\s+PRIMARY\s+KEY\b`)
	mysqlIntPKAutoInc    = regexp.MustCompile(`(?i)\b(?:INT|INTEGER)\s+PRIMARY\s+KEY\s+AUTO_INCREMENT\b`)
	mysqlBigintAutoInc   = regexp.MustCompile(`(?i)\bBIGINT\s+AUTO_INCREMENT\b`)
	mysqlSmallAutoInc    = regexp.MustCompile(`(?i)\bSMALLINT\s+AUTO_INCREMENT\b`)
	mysqlIntAutoInc      = regexp.MustCompile(`(?i)\b(?:INT|INTEGER)\s+AUTO_INCREMENT\b`)
)

// autoIncrementToSerial rewrites MySQL AUTO_INCREMENT column idioms to
// PostgreSQL SERIAL idioms. PRIMARY KEY forms are handled first so the bare
// forms cannot partially consume them.
func autoIncrementToSerial(buf string) string {
	buf = mysqlBigintAutoIncPK.ReplaceAllString(buf, "BIGSERIAL PRIMARY KEY")
	buf = mysqlBigintPKAutoInc.ReplaceAllString(buf, "BIGSERIAL PRIMARY KEY")
	buf = mysqlIntAutoIncPK.ReplaceAllString(buf, "SERIAL PRIMARY KEY")
	buf = mysqlIntPKAutoInc.ReplaceAllString(buf, "SERIAL PRIMARY KEY")
	buf = mysqlBigintAutoInc.ReplaceAllString(buf, "BIGSERIAL")
	buf = mysqlSmallAutoInc.ReplaceAllString(buf, "SMALLSERIAL")
	buf = mysqlIntAutoInc.ReplaceAllString(buf, "SERIAL")
	return buf
}

// PostgreSQL SERIAL idioms.
var (
	pgBigserialPK   = regexp.MustCompile(`(?i)\bBIGSERIAL\s+PRIMARY\s+KEY\b`)
	pgSmallserialPK = regexp.MustCompile(`(?i)\bSMALLSERIAL\s+PRIMARY\s+KEY\b`)
	pgSerialPK      = regexp.MustCompile(`(?i)\bSERIAL\s+PRIMARY\s+KEY\b`)
	pgBigserial     = regexp.MustCompile(`(?i)\bBIGSERIAL\b`)
	pgSmallserial   = regexp.MustCompile(`(?i)\bSMALLSERIAL\b`)
	pgSerial        = regexp.MustCompile(`(?i)\bSERIAL\b`)
)

// serialToAutoIncrement rewrites PostgreSQL SERIAL idioms to MySQL
// AUTO_INCREMENT idioms.
func serialToAutoIncrement(buf string) string {
	buf = pgBigserialPK.ReplaceAllString(buf, "BIGINT PRIMARY KEY AUTO_INCREMENT")
	buf = pgSmallserialPK.ReplaceAllString(buf, "SMALLINT PRIMARY KEY AUTO_INCREMENT")
	buf = pgSerialPK.ReplaceAllString(buf, "INT PRIMARY KEY AUTO_INCREMENT")
	buf = pgBigserial.ReplaceAllString(buf, "BIGINT AUTO_INCREMENT")
	buf = pgSmallserial.ReplaceAllString(buf, "SMALLINT AUTO_INCREMENT")
	buf = pgSerial.ReplaceAllString(buf, "INT AUTO_INCREMENT")
	return buf
}

// serialToSQLiteAutoinc rewrites PostgreSQL SERIAL idioms to the SQLite
// INTEGER PRIMARY KEY AUTOINCREMENT idiom.
var (
	pgAnySerialPK = regexp.MustCompile(`(?i)\b(?:SERIAL|BIGSERIAL)\s+PRIMARY\s+KEY\b`)
	pgAnySerial   = regexp.MustCompile(`(?i)\b(?:SERIAL|BIGSERIAL)\b`)
)

func serialToSQLiteAutoinc(buf string) string {
	buf = pgAnySerialPK.ReplaceAllString(buf, "INTEGER PRIMARY KEY AUTOINCREMENT")
	buf = pgAnySerial.ReplaceAllString(buf, "INTEGER AUTOINCREMENT")
	return buf
}

// SQLite AUTOINCREMENT idiom.
var sqliteIntPKAutoinc = regexp.MustCompile(`(?i)\bINTEGER\s+PRIMARY\s+KEY\s+AUTOINCREMENT\b`)

// sqliteAutoincToMySQL rewrites the SQLite autoincrement idiom to MySQL.
func sqliteAutoincToMySQL(buf string) string {
	return sqliteIntPKAutoinc.ReplaceAllString(buf, "INT PRIMARY KEY AUTO_INCREMENT")
}

// sqliteAutoincToSerial rewrites the SQLite autoincrement idiom to PostgreSQL.
func sqliteAutoincToSerial(buf string) string {
	return sqliteIntPKAutoinc.ReplaceAllString(buf, "SERIAL PRIMARY KEY")
}

// MySQL AUTO_INCREMENT idioms rewritten for SQLite. SQLite spells the idiom
// with INTEGER and without the underscore.
var (
	mysqlIntAutoIncPKSQLite = regexp.MustCompile(`(?i)\bINT\s+AUTO_INCREMENT\s+PRIMARY\s+KEY\b`)
	mysqlIntPKAutoIncSQLite = regexp.MustCompile(`(?i)\bINT\s+PRIMARY\s+KEY\s+AUTO_INCREMENT\b`)
	mysqlIntAutoIncSQLite   = regexp.MustCompile(`(?i)\bINT\s+AUTO_INCREMENT\b`)
)

func autoIncrementToSQLite(buf string) string {
	buf = mysqlIntAutoIncPKSQLite.ReplaceAllString(buf, "INTEGER PRIMARY KEY AUTOINCREMENT")
	buf = mysqlIntPKAutoIncSQLite.ReplaceAllString(buf, "INTEGER PRIMARY KEY AUTOINCREMENT")
	buf = mysqlIntAutoIncSQLite.ReplaceAllString(buf, "INTEGER AUTOINCREMENT")
	return buf
}

// Identifier quoting.
var backtickIdent = regexp.MustCompile("`([^`]*)`")

// backticksToDoubleQuotes rewrites backtick-delimited identifiers to the
// standard double-quoted form.
func backticksToDoubleQuotes(buf string) string {
	return backtickIdent.ReplaceAllString(buf, `"$1"`)
}

// doubleQuotedIdent matches a double-quoted span that looks like an
// identifier rather than a string literal: one followed (after optional
// whitespace) by a comma, a closing parenthesis, end of text, or a recognized
// column-definition keyword. This fixed lookahead list is a heuristic, not a
// lexer; a string literal that happens to sit directly before a comma or
// closing parenthesis is knowingly misclassified.
var doubleQuotedIdent = regexp.MustCompile(`(?i)"([^"]*)"(\s*)(,|\)|$|(?:INT|VARCHAR|TEXT|INTEGER|SERIAL|PRIMARY|NOT|NULL|DEFAULT|UNIQUE|CHECK|REFERENCES|CONSTRAINT)\b)`)

// doubleQuotesToBackticks rewrites double-quoted identifiers to backticks,
// leaving double-quoted spans that do not match the identifier heuristic
// untouched.
func doubleQuotesToBackticks(buf string) string {
	return doubleQuotedIdent.ReplaceAllString(buf, "`$1`$2$3")
}

// MySQL table options with no PostgreSQL or SQLite equivalent.
var (
	engineClause   = regexp.MustCompile(`(?i)\s*\bENGINE\s*=\s*\w+`)
	defaultCharset = regexp.MustCompile(`(?i)\s*\bDEFAULT\s+CHARSET\s*=\s*\w+`)
	characterSet   = regexp.MustCompile(`(?i)\s*\bCHARACTER\s+SET\s+\w+`)
	collateClause  = regexp.MustCompile(`(?i)\s*\bCOLLATE\s*=?\s*\w+`)
	autoIncAssign  = regexp.MustCompile(`(?i)\s*\bAUTO_INCREMENT\s*=\s*\d+`)
	rowFormat      = regexp.MustCompile(`(?i)\s*\bROW_FORMAT\s*=\s*\w+`)
	commentAssign  = regexp.MustCompile(`(?i)\s*\bCOMMENT\s*=\s*'[^']*'`)
)

// stripEngineClause removes ENGINE=... table options.
func stripEngineClause(buf string) string {
	return engineClause.ReplaceAllString(buf, "")
}

// stripCharsetClauses removes DEFAULT CHARSET=..., CHARACTER SET ... and
// COLLATE[=]... clauses.
func stripCharsetClauses(buf string) string {
	buf = defaultCharset.ReplaceAllString(buf, "")
	buf = characterSet.ReplaceAllString(buf, "")
	buf = collateClause.ReplaceAllString(buf, "")
	return buf
}

// stripMySQLTableOptions removes table options and column attributes SQLite
// does not understand: AUTO_INCREMENT=n, ROW_FORMAT=..., COMMENT='...', and
// bare UNSIGNED/ZEROFILL.
func stripMySQLTableOptions(buf string) string {
	buf = autoIncAssign.ReplaceAllString(buf, "")
	buf = rowFormat.ReplaceAllString(buf, "")
	buf = commentAssign.ReplaceAllString(buf, "")
	buf = rewrite.ReplaceToken(buf, "UNSIGNED", "")
	buf = rewrite.ReplaceToken(buf, "ZEROFILL", "")
	return buf
}

// PostgreSQL storage clauses SQLite does not understand.
var (
	withStorageParams = regexp.MustCompile(`(?i)\s*\bWITH\s*\([^)]*\)`)
	tablespaceClause  = regexp.MustCompile(`(?i)\s*\bTABLESPACE\s+\w+`)
)

// stripPostgresStorageClauses removes WITH (...) storage parameters and
// TABLESPACE clauses.
func stripPostgresStorageClauses(buf string) string {
	buf = withStorageParams.ReplaceAllString(buf, "")
	buf = tablespaceClause.ReplaceAllString(buf, "")
	return buf
}

// Function translations.
var (
	ifnullCall      = regexp.MustCompile(`(?i)\bIFNULL\s*\(`)
	coalesceCall    = regexp.MustCompile(`(?i)\bCOALESCE\s*\(`)
	mysqlLimitComma = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)\s*,\s*(\d+)`)
)

// mysqlFunctionsToPostgres translates IFNULL( to COALESCE( and the MySQL
// comma form of LIMIT to LIMIT/OFFSET. MySQL's LIMIT a, b means "skip a,
// take b", so the operands swap: LIMIT b OFFSET a.
func mysqlFunctionsToPostgres(buf string) string {
	buf = ifnullCall.ReplaceAllString(buf, "COALESCE(")
	buf = mysqlLimitComma.ReplaceAllString(buf, "LIMIT $2 OFFSET $1")
	return buf
}

// postgresFunctionsToMySQL translates COALESCE( to IFNULL(. The rewrite is
// lossy for COALESCE calls with more than two arguments; IFNULL takes exactly
// two and MySQL will reject the extra ones. Documented limitation.
func postgresFunctionsToMySQL(buf string) string {
	return coalesceCall.ReplaceAllString(buf, "IFNULL(")
}
