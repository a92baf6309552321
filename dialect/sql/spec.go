package sql

// Direction is a sort direction code. The value 1 sorts ascending; any other
// value sorts descending.
type Direction int

// Sort direction codes.
const (
	Ascending  Direction = 1
	Descending Direction = -1
)

func (d Direction) keyword() string {
	if d == Ascending {
		return "ASC"
	}
	return "DESC"
}

// ColumnsSpec is the closed set of shapes a column (or group-by) specification
// can take. The shape is chosen by the caller when the configuration is built:
//
//   - RawColumns: a string used verbatim.
//   - ColumnList: column names joined by comma.
//   - ColumnMap: columns qualified by their table, with an optional Extra
//     escape whose entries are emitted verbatim.
type ColumnsSpec interface {
	columnsSpec()
}

// RawColumns is a freeform column list used verbatim.
type RawColumns string

// ColumnList is an ordered sequence of column names.
type ColumnList []string

// ColumnMap qualifies columns by table, rendering each entry as table.column
// in the given order. Extra entries are appended verbatim and never treated as
// table names.
type ColumnMap struct {
	Tables []TableColumns
	Extra  []string
}

// TableColumns is one table entry of a ColumnMap.
type TableColumns struct {
	Table   string
	Columns []string
}

func (RawColumns) columnsSpec() {}
func (ColumnList) columnsSpec() {}
func (ColumnMap) columnsSpec()  {}

// SortSpec is the closed set of shapes a sort specification can take.
type SortSpec interface {
	sortSpec()
}

// RawSort is a freeform ORDER BY body used verbatim.
type RawSort string

// SortFields is an ordered sequence of column/direction entries.
type SortFields []SortField

// SortField is one column with its direction code.
type SortField struct {
	Column    string
	Direction Direction
}

// TableSortFields qualifies sort columns by table, rendering each entry as
// table.column followed by its direction keyword.
type TableSortFields []TableSort

// TableSort is one table entry of a TableSortFields specification.
type TableSort struct {
	Table  string
	Fields []SortField
}

func (RawSort) sortSpec()         {}
func (SortFields) sortSpec()      {}
func (TableSortFields) sortSpec() {}

// Join is one join descriptor. It is either a JoinOn carrying a freeform ON
// condition, or a JoinColumns deriving an equality condition from exactly two
// table-column pairs. An empty Type means a plain JOIN (shorthand form).
type Join interface {
	joinSpec()
}

// JoinOn joins a table with a freeform ON condition.
type JoinOn struct {
	Type  string // JOIN, LEFT JOIN, INNER JOIN, ... Empty means JOIN.
	Table string
	On    string
}

// JoinColumns joins on an equality condition derived from table-column pairs.
// Rendering fails unless exactly two pairs are present.
type JoinColumns struct {
	Type     string // Empty means JOIN.
	Pairs    []TableColumn
	Operator string // Empty means "=".
}

// TableColumn is one table-column pair of a JoinColumns descriptor.
type TableColumn struct {
	Table  string
	Column string
}

func (JoinOn) joinSpec()      {}
func (JoinColumns) joinSpec() {}

// Aggregate function names recognized by the default-alias table.
const (
	Min   = "MIN"
	Max   = "MAX"
	Sum   = "SUM"
	Count = "COUNT"
	Avg   = "AVG"
)

// aggregateAlias maps an aggregate function name to the alias used when the
// descriptor does not carry one. Unrecognized function names alias to
// themselves.
var aggregateAlias = map[string]string{
	Min:   "minimum",
	Max:   "maximum",
	Sum:   "summation",
	Count: "count",
	Avg:   "average",
}

// Aggregate is one aggregate select-list entry, rendered as Fn(Expr) AS alias.
type Aggregate struct {
	Fn    string // Aggregate function name (MIN, MAX, SUM, COUNT, AVG, ...).
	Expr  string // Column expression the function is applied to.
	Alias string // Optional alias. Defaults per function name.
}

// SubQuery is one subquery select-list entry, rendered as (Query) AS As, or
// (Query) when no alias is given.
type SubQuery struct {
	Query string
	As    string
}

// LimitSkip carries the LIMIT and OFFSET values. Zero means the clause is
// omitted.
type LimitSkip struct {
	Limit int
	Skip  int
}

// RecursiveCTE describes a WITH RECURSIVE common table expression. Alias is
// substituted as the relation queried by FROM.
type RecursiveCTE struct {
	BaseCase      string
	RecursiveCase string
	Alias         string
}

// Row is one row of insert data, mapping column names to values. Columns
// render in sorted key order so that identical input yields identical output.
type Row map[string]any

// Case is a conditional update value, rendered as a CASE WHEN expression.
type Case struct {
	When    []When
	Default any
}

// When is one branch of a Case value.
type When struct {
	Condition string
	Then      any
}
