package sql

import (
	"strings"

	"github.com/syssam/sqlbuild"
)

// columnsText renders a column specification as a comma-joined list with no
// introducing keyword, for reuse as the select-list.
func columnsText(spec ColumnsSpec) string {
	switch spec := spec.(type) {
	case nil:
		return ""
	case RawColumns:
		return string(spec)
	case ColumnList:
		return strings.Join(spec, ", ")
	case ColumnMap:
		var parts []string
		for _, t := range spec.Tables {
			for _, c := range t.Columns {
				parts = append(parts, t.Table+"."+c)
			}
		}
		parts = append(parts, spec.Extra...)
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// groupByClause renders a group-by specification as a leading-space-prefixed
// GROUP BY clause, or an empty string when nothing renders.
func groupByClause(spec ColumnsSpec) string {
	if spec == nil {
		return ""
	}
	if raw, ok := spec.(RawColumns); ok {
		if raw == "" {
			return ""
		}
		return " GROUP BY " + string(raw)
	}
	text := columnsText(spec)
	if text == "" {
		return ""
	}
	return " GROUP BY " + text
}

// sortClause renders a sort specification as a leading-space-prefixed
// ORDER BY clause, or an empty string when nothing renders. Entries that
// render to nothing are dropped before joining.
func sortClause(spec SortSpec) string {
	switch spec := spec.(type) {
	case nil:
		return ""
	case RawSort:
		if spec == "" {
			return ""
		}
		return " ORDER BY " + string(spec)
	case SortFields:
		text := sortFieldsText("", spec)
		if text == "" {
			return ""
		}
		return " ORDER BY " + text
	case TableSortFields:
		var parts []string
		for _, t := range spec {
			if text := sortFieldsText(t.Table, t.Fields); text != "" {
				parts = append(parts, text)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		return " ORDER BY " + strings.Join(parts, ", ")
	default:
		return ""
	}
}

// sortFieldsText renders column/direction entries, qualifying each column
// with the table name when one is given.
func sortFieldsText(table string, fields []SortField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		col := f.Column
		if table != "" {
			col = table + "." + col
		}
		parts = append(parts, col+" "+f.Direction.keyword())
	}
	return strings.Join(parts, ", ")
}

// joinsClause renders the join descriptors as one leading-space-prefixed
// clause chain. A JoinColumns descriptor without exactly two table-column
// pairs fails the whole statement.
func joinsClause(joins []Join) (string, error) {
	var b strings.Builder
	for _, j := range joins {
		switch j := j.(type) {
		case JoinOn:
			b.WriteString(" " + joinType(j.Type) + " " + j.Table + " ON " + j.On)
		case JoinColumns:
			if len(j.Pairs) != 2 {
				return "", sqlbuild.NewJoinError(j.Type != "", len(j.Pairs))
			}
			op := j.Operator
			if op == "" {
				op = "="
			}
			left, right := j.Pairs[0], j.Pairs[1]
			b.WriteString(" " + joinType(j.Type) + " " + right.Table +
				" ON " + left.Table + "." + left.Column +
				" " + op + " " + right.Table + "." + right.Column)
		}
	}
	return b.String(), nil
}

func joinType(t string) string {
	if t == "" {
		return "JOIN"
	}
	return t
}

// aggregatesText renders the aggregate descriptors as comma-joined function
// calls, each aliased by its own alias or the per-function default.
func aggregatesText(aggs []Aggregate) string {
	parts := make([]string, 0, len(aggs))
	for _, a := range aggs {
		alias := a.Alias
		if alias == "" {
			if def, ok := aggregateAlias[a.Fn]; ok {
				alias = def
			} else {
				alias = a.Fn
			}
		}
		parts = append(parts, a.Fn+"("+a.Expr+") AS "+alias)
	}
	return strings.Join(parts, ", ")
}
