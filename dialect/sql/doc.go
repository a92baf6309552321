// Package sql renders statement configurations into MySQL-syntax SQL text.
//
// Each of the four statement kinds has one configuration struct and one
// builder function:
//
//   - BuildSelect(SelectConfig)
//   - BuildInsert(InsertConfig)
//   - BuildUpdate(UpdateConfig)
//   - BuildDelete(DeleteConfig)
//
// Builders are pure: no call retains state, and identical input yields
// byte-identical output. The only value not fixed at build time is the
// CURRENT_TIMESTAMP token emitted for insert date fields, which the database
// evaluates.
//
// # Specification variants
//
// Inputs that accept several shapes are closed variant types chosen when the
// configuration is built: a column list is a RawColumns string, a ColumnList,
// or a ColumnMap; a sort specification is a RawSort string, SortFields, or
// per-table TableSortFields; a join is a JoinOn condition or a JoinColumns
// equality. Clause rendering matches exhaustively over these shapes.
//
//	stmt, err := sql.BuildSelect(sql.SelectConfig{
//	    Table: "orders",
//	    Joins: []sql.Join{sql.JoinColumns{Pairs: []sql.TableColumn{
//	        {Table: "customers", Column: "customer_id"},
//	        {Table: "orders", Column: "customer_id"},
//	    }}},
//	    Where: "orders.total > 100",
//	})
//
// # Documents
//
// Configurations may also arrive as loosely shaped YAML or JSON documents;
// UnmarshalSelect and friends convert the flexible string/sequence/mapping
// shapes into the variants at that boundary.
//
// # Execution
//
// The builders never execute anything. For callers that want to run the
// produced statements, the package ships a thin database/sql wrapper:
//
//	drv, err := sql.Open(dialect.MySQL, "user:pass@tcp(localhost:3306)/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//	err = drv.Exec(ctx, stmt, []any{}, nil)
package sql
