package sql

import (
	"strconv"
	"strings"
)

// SelectConfig describes one SELECT statement.
//
// Table is the queried relation. When RecursiveCTE is set, its alias is
// substituted for Table. There is deliberately no required-field validation:
// a configuration without a table builds a syntactically broken statement
// instead of failing, matching the other shape-flexible inputs this library
// accepts.
type SelectConfig struct {
	Table        string
	Distinct     bool
	Columns      ColumnsSpec
	SubQueries   []SubQuery
	Aggregates   []Aggregate
	Joins        []Join
	Where        string // Raw predicate, emitted after WHERE.
	GroupBy      ColumnsSpec
	Having       string // Raw predicate, emitted after HAVING.
	Sort         SortSpec
	LimitSkip    LimitSkip
	RecursiveCTE *RecursiveCTE
}

// BuildSelect renders the configuration as one SELECT statement.
//
// Clause order is fixed: SELECT [DISTINCT] list FROM table, joins, WHERE,
// GROUP BY, HAVING, ORDER BY, LIMIT, OFFSET. An empty select-list defaults
// to *.
func BuildSelect(cfg SelectConfig) (string, error) {
	var b strings.Builder
	table := cfg.Table
	if cte := cfg.RecursiveCTE; cte != nil {
		b.WriteString("WITH RECURSIVE " + cte.Alias + " AS (" + cte.BaseCase + " UNION ALL " + cte.RecursiveCase + ") ")
		table = cte.Alias
	}
	b.WriteString("SELECT ")
	if cfg.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(selectList(cfg))
	b.WriteString(" FROM " + table)

	joins, err := joinsClause(cfg.Joins)
	if err != nil {
		return "", err
	}
	b.WriteString(joins)
	if cfg.Where != "" {
		b.WriteString(" WHERE " + cfg.Where)
	}
	b.WriteString(groupByClause(cfg.GroupBy))
	if cfg.Having != "" {
		b.WriteString(" HAVING " + cfg.Having)
	}
	b.WriteString(sortClause(cfg.Sort))
	if cfg.LimitSkip.Limit != 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(cfg.LimitSkip.Limit))
	}
	if cfg.LimitSkip.Skip != 0 {
		b.WriteString(" OFFSET " + strconv.Itoa(cfg.LimitSkip.Skip))
	}
	return strings.TrimSpace(b.String()), nil
}

// selectList concatenates parsed columns, subquery renderings, and aggregate
// renderings, in that order.
func selectList(cfg SelectConfig) string {
	var parts []string
	if text := columnsText(cfg.Columns); text != "" {
		parts = append(parts, text)
	}
	for _, sq := range cfg.SubQueries {
		if sq.As != "" {
			parts = append(parts, "("+sq.Query+") AS "+sq.As)
		} else {
			parts = append(parts, "("+sq.Query+")")
		}
	}
	if text := aggregatesText(cfg.Aggregates); text != "" {
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ", ")
}
