// Package dialect defines the database dialect abstraction used by sqlbuild.
//
// The statement builders in dialect/sql produce plain MySQL-syntax strings and
// never execute them. The interfaces here exist for callers that want to hand
// the produced statements to a database through the thin wrapper in
// dialect/sql.
//
// # Driver Interface
//
// The Driver interface wraps the basic database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// # Debug Logging
//
// Any Driver can be wrapped with a debug driver that logs every operation
// through log/slog:
//
//	drv, err := sql.Open(dialect.MySQL, dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := dialect.Debug(drv)
package dialect
