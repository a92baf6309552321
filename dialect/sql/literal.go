package sql

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Raw marks an expression that is emitted into the statement verbatim,
// bypassing literal serialization.
type Raw string

// currentTimestamp is the literal token emitted for date fields. It is not
// evaluated at build time.
const currentTimestamp = "CURRENT_TIMESTAMP"

// timeLayout is the MySQL DATETIME literal layout.
const timeLayout = "2006-01-02 15:04:05"

// literal serializes a scalar value as a JSON-style SQL literal: numbers and
// booleans render unquoted, strings are trimmed and double-quoted, nil renders
// as NULL. uuid.UUID and time.Time values render as quoted strings.
func literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case Raw:
		return string(v)
	case string:
		return quote(strings.TrimSpace(v))
	case uuid.UUID:
		return quote(v.String())
	case time.Time:
		return quote(v.Format(timeLayout))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			// Non-serializable values degrade to their Go representation.
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// quote renders s as a JSON string literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `"` + s + `"`
	}
	return string(b)
}
