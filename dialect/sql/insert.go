package sql

import (
	"sort"
	"strings"

	"github.com/syssam/sqlbuild"
)

// InsertConfig describes one INSERT statement.
//
// The column list is derived from the first row's keys (sorted), with
// DateFields appended; every row renders its values in that column order.
// All rows are assumed to share the first row's column set.
type InsertConfig struct {
	Table string
	Rows  []Row
	// DateFields are columns populated with the CURRENT_TIMESTAMP token,
	// appended after the row columns.
	DateFields []string
	// UniqueColumn switches the statement to INSERT IGNORE. It takes
	// precedence over OnDuplicateUpdateFields.
	UniqueColumn string
	// OnDuplicateUpdateFields appends an ON DUPLICATE KEY UPDATE clause
	// setting each field to VALUES(field).
	OnDuplicateUpdateFields []string
}

// BuildInsert renders the configuration as one INSERT statement. It fails
// when no row data is given.
func BuildInsert(cfg InsertConfig) (string, error) {
	if len(cfg.Rows) == 0 || len(cfg.Rows[0]) == 0 {
		return "", sqlbuild.NewMissingFieldError("insert", "rows")
	}
	columns := make([]string, 0, len(cfg.Rows[0]))
	for c := range cfg.Rows[0] {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	tuples := make([]string, 0, len(cfg.Rows))
	for _, row := range cfg.Rows {
		values := make([]string, 0, len(columns)+len(cfg.DateFields))
		for _, c := range columns {
			values = append(values, literal(row[c]))
		}
		for range cfg.DateFields {
			values = append(values, currentTimestamp)
		}
		tuples = append(tuples, "("+strings.Join(values, ",")+")")
	}

	var b strings.Builder
	b.WriteString("INSERT ")
	if cfg.UniqueColumn != "" {
		b.WriteString("IGNORE ")
	}
	b.WriteString("INTO " + cfg.Table)
	b.WriteString(" (" + strings.Join(append(columns, cfg.DateFields...), ", ") + ")")
	b.WriteString(" VALUES " + strings.Join(tuples, ", "))
	if cfg.UniqueColumn == "" && len(cfg.OnDuplicateUpdateFields) > 0 {
		updates := make([]string, 0, len(cfg.OnDuplicateUpdateFields))
		for _, f := range cfg.OnDuplicateUpdateFields {
			updates = append(updates, f+" = VALUES("+f+")")
		}
		b.WriteString(" ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", "))
	}
	return b.String(), nil
}
