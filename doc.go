// Package sqlbuild renders configuration values describing relational
// operations into textual SQL statements for MySQL-family databases.
//
// The library is a typed, composable alternative to hand-concatenated SQL
// strings. It is not an ORM: there is no schema mapping, no struct scanning,
// and the builders never touch a database. Each builder consumes one
// configuration value and returns one statement string.
//
// # Packages
//
// The repository is split the following way:
//
//   - sqlbuild: error taxonomy shared by the builders.
//   - sqlbuild/dialect: dialect constants and the Driver/Tx interfaces.
//   - sqlbuild/dialect/sql: statement builders, clause rendering, and a thin
//     database/sql wrapper for callers that want to execute the output.
//
// # Building statements
//
//	import "github.com/syssam/sqlbuild/dialect/sql"
//
//	stmt, err := sql.BuildSelect(sql.SelectConfig{
//	    Table:   "users",
//	    Columns: sql.ColumnList{"id", "name"},
//	    Where:   "age > 30",
//	})
//	// SELECT id, name FROM users WHERE age > 30
//
// The produced string is handed verbatim to an execution layer owned by the
// caller. Values embedded in statements are serialized as JSON-style literals;
// no further escaping or validation is performed.
package sqlbuild
