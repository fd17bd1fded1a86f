package dialects

// Postgres is the canonical PostgreSQL dialect.
const Postgres Dialect = "postgres"

func init() {
	registerDialect(Postgres, "postgresql", "pg", "pgsql")
}
