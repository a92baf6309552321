package sql

import (
	"strconv"
	"strings"

	"github.com/syssam/sqlbuild"
)

// DeleteConfig describes one DELETE statement.
type DeleteConfig struct {
	Table string
	Where string // Raw predicate, emitted after WHERE. Required.
	Joins []Join
	Sort  SortSpec
	Limit int
}

// BuildDelete renders the configuration as one multi-table-form DELETE
// statement (DELETE table FROM table ...). It fails when Table or Where is
// missing.
func BuildDelete(cfg DeleteConfig) (string, error) {
	if cfg.Table == "" {
		return "", sqlbuild.NewMissingFieldError("delete", "table")
	}
	if cfg.Where == "" {
		return "", sqlbuild.NewMissingFieldError("delete", "where")
	}
	joins, err := joinsClause(cfg.Joins)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("DELETE " + cfg.Table + " FROM " + cfg.Table)
	b.WriteString(joins)
	b.WriteString(" WHERE " + cfg.Where)
	b.WriteString(sortClause(cfg.Sort))
	if cfg.Limit != 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(cfg.Limit))
	}
	return b.String(), nil
}
