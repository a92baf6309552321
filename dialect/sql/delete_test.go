package sql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbuild"
	"github.com/syssam/sqlbuild/dialect/sql"
)

func TestBuildDelete(t *testing.T) {
	t.Parallel()

	t.Run("Basic", func(t *testing.T) {
		got, err := sql.BuildDelete(sql.DeleteConfig{Table: "users", Where: "age > 30"})
		require.NoError(t, err)
		assert.Equal(t, "DELETE users FROM users WHERE age > 30", got)
	})

	t.Run("Joins", func(t *testing.T) {
		got, err := sql.BuildDelete(sql.DeleteConfig{
			Table: "orders",
			Joins: []sql.Join{sql.JoinColumns{Pairs: []sql.TableColumn{
				{Table: "orders", Column: "customer_id"},
				{Table: "customers", Column: "id"},
			}}},
			Where: "customers.blocked = 1",
		})
		require.NoError(t, err)
		assert.Equal(t,
			"DELETE orders FROM orders JOIN customers ON orders.customer_id = customers.id WHERE customers.blocked = 1",
			got,
		)
	})

	t.Run("SortAndLimit", func(t *testing.T) {
		got, err := sql.BuildDelete(sql.DeleteConfig{
			Table: "logs",
			Where: "level = 'debug'",
			Sort:  sql.SortFields{{Column: "created_at", Direction: sql.Ascending}},
			Limit: 100,
		})
		require.NoError(t, err)
		assert.Equal(t,
			"DELETE logs FROM logs WHERE level = 'debug' ORDER BY created_at ASC LIMIT 100",
			got,
		)
	})

	t.Run("MissingTable", func(t *testing.T) {
		_, err := sql.BuildDelete(sql.DeleteConfig{Where: "id = 1"})
		require.Error(t, err)
		assert.True(t, sqlbuild.IsMissingField(err))
		assert.Contains(t, err.Error(), `"table"`)
	})

	t.Run("MissingWhere", func(t *testing.T) {
		_, err := sql.BuildDelete(sql.DeleteConfig{Table: "users"})
		require.Error(t, err)
		assert.True(t, sqlbuild.IsMissingField(err))
		assert.Contains(t, err.Error(), `"where"`)
	})

	t.Run("MalformedJoin", func(t *testing.T) {
		got, err := sql.BuildDelete(sql.DeleteConfig{
			Table: "a",
			Where: "1 = 1",
			Joins: []sql.Join{sql.JoinColumns{Pairs: []sql.TableColumn{{Table: "a", Column: "x"}}}},
		})
		require.Error(t, err)
		assert.True(t, sqlbuild.IsJoinError(err))
		assert.Empty(t, got)
	})
}
