package dialects

// SQLite is the canonical SQLite dialect.
const SQLite Dialect = "sqlite"

func init() {
	registerDialect(SQLite, "sqlite3")
}
