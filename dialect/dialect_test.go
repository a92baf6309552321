package dialect_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbuild/dialect"
)

// recordingDriver implements dialect.Driver for testing wrappers.
type recordingDriver struct {
	execs   []string
	queries []string
}

func (d *recordingDriver) Exec(_ context.Context, query string, _, _ any) error {
	d.execs = append(d.execs, query)
	return nil
}

func (d *recordingDriver) Query(_ context.Context, query string, _, _ any) error {
	d.queries = append(d.queries, query)
	return nil
}

func (d *recordingDriver) Tx(context.Context) (dialect.Tx, error) { return &recordingTx{d}, nil }
func (d *recordingDriver) Close() error                           { return nil }
func (d *recordingDriver) Dialect() string                        { return dialect.MySQL }

type recordingTx struct{ d *recordingDriver }

func (t *recordingTx) Exec(ctx context.Context, query string, args, v any) error {
	return t.d.Exec(ctx, query, args, v)
}

func (t *recordingTx) Query(ctx context.Context, query string, args, v any) error {
	return t.d.Query(ctx, query, args, v)
}

func (t *recordingTx) Commit() error   { return nil }
func (t *recordingTx) Rollback() error { return nil }

func TestDebugDriver(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := &recordingDriver{}
	drv := dialect.DebugWithLogger(rec, logger)

	require.NoError(t, drv.Exec(context.Background(), "INSERT INTO t (a) VALUES (1)", []any{}, nil))
	require.NoError(t, drv.Query(context.Background(), "SELECT * FROM t", []any{}, nil))

	assert.Equal(t, []string{"INSERT INTO t (a) VALUES (1)"}, rec.execs)
	assert.Equal(t, []string{"SELECT * FROM t"}, rec.queries)
	assert.Contains(t, buf.String(), "driver.Exec")
	assert.Contains(t, buf.String(), "driver.Query")

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "UPDATE t SET a = 2 WHERE id = 1", []any{}, nil))
	require.NoError(t, tx.Commit())
	assert.Contains(t, buf.String(), "tx.Commit")
}
