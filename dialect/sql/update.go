package sql

import (
	"sort"
	"strconv"
	"strings"

	"github.com/syssam/sqlbuild"
)

// UpdateConfig describes one UPDATE statement.
//
// Data values are serialized as JSON-style literals, or rendered as a
// CASE WHEN expression when the value is a Case. SetCalculations and
// FromSubQuery values are raw SQL expressions emitted verbatim. Map-shaped
// inputs render in sorted key order so that identical input yields identical
// output.
type UpdateConfig struct {
	Table string
	Where string // Raw predicate, emitted after WHERE. Required.
	Joins []Join
	Data  map[string]any
	// SetCalculations maps columns to raw SQL expressions, e.g. "price * 1.1".
	SetCalculations map[string]string
	// FromSubQuery maps columns to raw SQL expressions, typically subqueries.
	FromSubQuery map[string]string
	// NullColumns are set to NULL.
	NullColumns []string
	// DefaultColumns are set to DEFAULT.
	DefaultColumns []string
	Limit          int
	Sort           SortSpec
}

// BuildUpdate renders the configuration as one UPDATE statement. It fails
// when Table or Where is missing.
func BuildUpdate(cfg UpdateConfig) (string, error) {
	if cfg.Table == "" {
		return "", sqlbuild.NewMissingFieldError("update", "table")
	}
	if cfg.Where == "" {
		return "", sqlbuild.NewMissingFieldError("update", "where")
	}
	joins, err := joinsClause(cfg.Joins)
	if err != nil {
		return "", err
	}

	assignments := joinGroups(
		dataAssignments(cfg.Data),
		expressionAssignments(cfg.SetCalculations),
		expressionAssignments(cfg.FromSubQuery),
		constantAssignments(cfg.NullColumns, "NULL"),
		constantAssignments(cfg.DefaultColumns, "DEFAULT"),
	)

	var b strings.Builder
	b.WriteString("UPDATE" + joins + " " + cfg.Table)
	b.WriteString(" SET " + assignments)
	b.WriteString(" WHERE " + cfg.Where)
	b.WriteString(sortClause(cfg.Sort))
	if cfg.Limit != 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(cfg.Limit))
	}
	return b.String(), nil
}

// dataAssignments renders Data entries as column = literal, or as a CASE WHEN
// expression for Case values.
func dataAssignments(data map[string]any) string {
	columns := make([]string, 0, len(data))
	for c := range data {
		columns = append(columns, c)
	}
	sort.Strings(columns)
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		switch v := data[c].(type) {
		case Case:
			parts = append(parts, c+" = "+caseExpression(v))
		default:
			parts = append(parts, c+" = "+literal(v))
		}
	}
	return strings.Join(parts, ", ")
}

// caseExpression renders a Case value as CASE WHEN ... THEN ... ELSE ... END.
func caseExpression(c Case) string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, w := range c.When {
		b.WriteString(" WHEN " + w.Condition + " THEN " + literal(w.Then))
	}
	b.WriteString(" ELSE " + literal(c.Default) + " END")
	return b.String()
}

// expressionAssignments renders column = expression entries with the
// expression emitted verbatim.
func expressionAssignments(exprs map[string]string) string {
	columns := make([]string, 0, len(exprs))
	for c := range exprs {
		columns = append(columns, c)
	}
	sort.Strings(columns)
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" = "+exprs[c])
	}
	return strings.Join(parts, ", ")
}

// constantAssignments renders column = token entries for the given columns.
func constantAssignments(columns []string, token string) string {
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" = "+token)
	}
	return strings.Join(parts, ", ")
}

// joinGroups comma-joins the non-empty assignment groups.
func joinGroups(groups ...string) string {
	var parts []string
	for _, g := range groups {
		if g != "" {
			parts = append(parts, g)
		}
	}
	return strings.Join(parts, ", ")
}
