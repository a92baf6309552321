package sql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbuild"
	"github.com/syssam/sqlbuild/dialect/sql"
)

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	t.Run("Literals", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table: "users",
			Data:  map[string]any{"age": 31, "name": " Ann "},
			Where: "id = 1",
		})
		require.NoError(t, err)
		assert.Equal(t, `UPDATE users SET age = 31, name = "Ann" WHERE id = 1`, got)
	})

	t.Run("CaseExpression", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table: "employees",
			Data: map[string]any{"salary": sql.Case{
				When:    []sql.When{{Condition: "position = 'Manager'", Then: 100000}},
				Default: 50000,
			}},
			Where: "id = 1",
		})
		require.NoError(t, err)
		assert.Contains(t, got, "CASE WHEN position = 'Manager' THEN 100000 ELSE 50000 END")
		assert.Equal(t,
			"UPDATE employees SET salary = CASE WHEN position = 'Manager' THEN 100000 ELSE 50000 END WHERE id = 1",
			got,
		)
	})

	t.Run("MultiBranchCase", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table: "employees",
			Data: map[string]any{"grade": sql.Case{
				When: []sql.When{
					{Condition: "score >= 90", Then: "A"},
					{Condition: "score >= 80", Then: "B"},
				},
				Default: "C",
			}},
			Where: "1 = 1",
		})
		require.NoError(t, err)
		assert.Contains(t, got, `CASE WHEN score >= 90 THEN "A" WHEN score >= 80 THEN "B" ELSE "C" END`)
	})

	t.Run("AssignmentGroups", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table:           "products",
			Data:            map[string]any{"name": "widget"},
			SetCalculations: map[string]string{"price": "price * 1.1"},
			FromSubQuery:    map[string]string{"stock": "(SELECT SUM(qty) FROM inventory WHERE sku = products.sku)"},
			NullColumns:     []string{"discount"},
			DefaultColumns:  []string{"updated_at"},
			Where:           "sku = 'w-1'",
		})
		require.NoError(t, err)
		assert.Equal(t,
			`UPDATE products SET name = "widget", price = price * 1.1, stock = (SELECT SUM(qty) FROM inventory WHERE sku = products.sku), discount = NULL, updated_at = DEFAULT WHERE sku = 'w-1'`,
			got,
		)
	})

	t.Run("OnlyNullColumns", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table:       "users",
			NullColumns: []string{"token", "session"},
			Where:       "id = 9",
		})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE users SET token = NULL, session = NULL WHERE id = 9", got)
	})

	t.Run("SortAndLimit", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table: "jobs",
			Data:  map[string]any{"state": "done"},
			Where: "state = 'pending'",
			Sort:  sql.SortFields{{Column: "created_at", Direction: sql.Ascending}},
			Limit: 5,
		})
		require.NoError(t, err)
		assert.Equal(t,
			`UPDATE jobs SET state = "done" WHERE state = 'pending' ORDER BY created_at ASC LIMIT 5`,
			got,
		)
	})

	t.Run("Joins", func(t *testing.T) {
		got, err := sql.BuildUpdate(sql.UpdateConfig{
			Table: "orders",
			Joins: []sql.Join{sql.JoinOn{Table: "customers", On: "orders.customer_id = customers.id"}},
			Data:  map[string]any{"flagged": true},
			Where: "customers.blocked = 1",
		})
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE JOIN customers ON orders.customer_id = customers.id orders SET flagged = true WHERE customers.blocked = 1",
			got,
		)
	})

	t.Run("MissingTable", func(t *testing.T) {
		_, err := sql.BuildUpdate(sql.UpdateConfig{Where: "id = 1"})
		require.Error(t, err)
		assert.True(t, sqlbuild.IsMissingField(err))
		assert.Contains(t, err.Error(), `"table"`)
	})

	t.Run("MissingWhere", func(t *testing.T) {
		_, err := sql.BuildUpdate(sql.UpdateConfig{Table: "users"})
		require.Error(t, err)
		assert.True(t, sqlbuild.IsMissingField(err))
		assert.Contains(t, err.Error(), `"where"`)
	})

	t.Run("Idempotent", func(t *testing.T) {
		cfg := sql.UpdateConfig{
			Table: "t",
			Data:  map[string]any{"b": 2, "a": 1, "z": 26},
			Where: "id = 1",
		}
		first, err := sql.BuildUpdate(cfg)
		require.NoError(t, err)
		second, err := sql.BuildUpdate(cfg)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, "UPDATE t SET a = 1, b = 2, z = 26 WHERE id = 1", first)
	})
}
