package dialects

// MySQL is the canonical MySQL dialect. MariaDB schemas are close enough to
// MySQL for text-level conversion and resolve to the same dialect.
const MySQL Dialect = "mysql"

func init() {
	registerDialect(MySQL, "mariadb")
}
