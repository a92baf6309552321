package sql

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/syssam/sqlbuild"
)

// This file is the boundary where loosely shaped configuration documents
// (YAML or JSON) become the tagged specification variants. A field that
// accepts several shapes (string, sequence, or mapping) is decoded here,
// exactly once; the builders themselves only see the variants.
//
// Mappings decoded from documents carry no order, so their entries render in
// sorted key order.

// extraKey is the reserved mapping key whose value is emitted verbatim and
// never treated as a table name.
const extraKey = "extra"

type subQueryDoc struct {
	Query string `yaml:"query"`
	As    string `yaml:"as"`
}

type limitSkipDoc struct {
	Limit int `yaml:"limit"`
	Skip  int `yaml:"skip"`
}

type recursiveCTEDoc struct {
	BaseCase      string `yaml:"baseCase"`
	RecursiveCase string `yaml:"recursiveCase"`
	Alias         string `yaml:"alias"`
}

type selectDoc struct {
	Table        string           `yaml:"table"`
	Distinct     bool             `yaml:"distinct"`
	Columns      any              `yaml:"columns"`
	SubQueries   []subQueryDoc    `yaml:"subQueries"`
	Aggregates   []map[string]any `yaml:"aggregates"`
	Joins        []map[string]any `yaml:"joins"`
	Where        string           `yaml:"where"`
	GroupBy      any              `yaml:"groupBy"`
	Having       string           `yaml:"having"`
	Sort         any              `yaml:"sort"`
	LimitSkip    *limitSkipDoc    `yaml:"limitSkip"`
	RecursiveCTE *recursiveCTEDoc `yaml:"recursiveCTE"`
}

// UnmarshalSelect parses a YAML (or JSON) document into a SelectConfig.
func UnmarshalSelect(data []byte) (SelectConfig, error) {
	var doc selectDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SelectConfig{}, sqlbuild.NewDecodeError("select", err)
	}
	cfg := SelectConfig{
		Table:    doc.Table,
		Distinct: doc.Distinct,
		Where:    doc.Where,
		Having:   doc.Having,
	}
	var err error
	if cfg.Columns, err = decodeColumns(doc.Columns); err != nil {
		return SelectConfig{}, sqlbuild.NewDecodeError("columns", err)
	}
	if cfg.GroupBy, err = decodeColumns(doc.GroupBy); err != nil {
		return SelectConfig{}, sqlbuild.NewDecodeError("groupBy", err)
	}
	if cfg.Sort, err = decodeSort(doc.Sort); err != nil {
		return SelectConfig{}, sqlbuild.NewDecodeError("sort", err)
	}
	if cfg.Joins, err = decodeJoins(doc.Joins); err != nil {
		return SelectConfig{}, sqlbuild.NewDecodeError("joins", err)
	}
	if cfg.Aggregates, err = decodeAggregates(doc.Aggregates); err != nil {
		return SelectConfig{}, sqlbuild.NewDecodeError("aggregates", err)
	}
	for _, sq := range doc.SubQueries {
		cfg.SubQueries = append(cfg.SubQueries, SubQuery(sq))
	}
	if doc.LimitSkip != nil {
		cfg.LimitSkip = LimitSkip(*doc.LimitSkip)
	}
	if doc.RecursiveCTE != nil {
		cte := RecursiveCTE(*doc.RecursiveCTE)
		cfg.RecursiveCTE = &cte
	}
	return cfg, nil
}

type insertDoc struct {
	Table                   string   `yaml:"table"`
	InsertData              any      `yaml:"insertData"`
	DateFields              []string `yaml:"dateFields"`
	UniqueColumn            string   `yaml:"uniqueColumn"`
	OnDuplicateUpdateFields []string `yaml:"onDuplicateUpdateFields"`
}

// UnmarshalInsert parses a YAML (or JSON) document into an InsertConfig.
// insertData may be a single row mapping or a sequence of row mappings.
func UnmarshalInsert(data []byte) (InsertConfig, error) {
	var doc insertDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return InsertConfig{}, sqlbuild.NewDecodeError("insert", err)
	}
	rows, err := decodeRows(doc.InsertData)
	if err != nil {
		return InsertConfig{}, sqlbuild.NewDecodeError("insertData", err)
	}
	return InsertConfig{
		Table:                   doc.Table,
		Rows:                    rows,
		DateFields:              doc.DateFields,
		UniqueColumn:            doc.UniqueColumn,
		OnDuplicateUpdateFields: doc.OnDuplicateUpdateFields,
	}, nil
}

type updateDoc struct {
	Table           string            `yaml:"table"`
	Where           string            `yaml:"where"`
	Joins           []map[string]any  `yaml:"joins"`
	UpdateData      map[string]any    `yaml:"updateData"`
	SetCalculations map[string]string `yaml:"setCalculations"`
	FromSubQuery    map[string]string `yaml:"fromSubQuery"`
	NullValues      []string          `yaml:"nullValues"`
	DefaultValues   []string          `yaml:"defaultValues"`
	Limit           int               `yaml:"limit"`
	Sort            any               `yaml:"sort"`
}

// UnmarshalUpdate parses a YAML (or JSON) document into an UpdateConfig.
// An updateData value may be a scalar literal or a conditional descriptor
// carrying case branches and a default.
func UnmarshalUpdate(data []byte) (UpdateConfig, error) {
	var doc updateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return UpdateConfig{}, sqlbuild.NewDecodeError("update", err)
	}
	cfg := UpdateConfig{
		Table:           doc.Table,
		Where:           doc.Where,
		SetCalculations: doc.SetCalculations,
		FromSubQuery:    doc.FromSubQuery,
		NullColumns:     doc.NullValues,
		DefaultColumns:  doc.DefaultValues,
		Limit:           doc.Limit,
	}
	var err error
	if cfg.Joins, err = decodeJoins(doc.Joins); err != nil {
		return UpdateConfig{}, sqlbuild.NewDecodeError("joins", err)
	}
	if cfg.Sort, err = decodeSort(doc.Sort); err != nil {
		return UpdateConfig{}, sqlbuild.NewDecodeError("sort", err)
	}
	if cfg.Data, err = decodeUpdateData(doc.UpdateData); err != nil {
		return UpdateConfig{}, sqlbuild.NewDecodeError("updateData", err)
	}
	return cfg, nil
}

type deleteDoc struct {
	Table string           `yaml:"table"`
	Where string           `yaml:"where"`
	Joins []map[string]any `yaml:"joins"`
	Sort  any              `yaml:"sort"`
	Limit int              `yaml:"limit"`
}

// UnmarshalDelete parses a YAML (or JSON) document into a DeleteConfig.
func UnmarshalDelete(data []byte) (DeleteConfig, error) {
	var doc deleteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DeleteConfig{}, sqlbuild.NewDecodeError("delete", err)
	}
	cfg := DeleteConfig{Table: doc.Table, Where: doc.Where, Limit: doc.Limit}
	var err error
	if cfg.Joins, err = decodeJoins(doc.Joins); err != nil {
		return DeleteConfig{}, sqlbuild.NewDecodeError("joins", err)
	}
	if cfg.Sort, err = decodeSort(doc.Sort); err != nil {
		return DeleteConfig{}, sqlbuild.NewDecodeError("sort", err)
	}
	return cfg, nil
}

// decodeColumns converts a string, sequence, or mapping into a ColumnsSpec.
func decodeColumns(v any) (ColumnsSpec, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return RawColumns(v), nil
	case []any:
		list, err := stringSlice(v)
		if err != nil {
			return nil, err
		}
		return ColumnList(list), nil
	case map[string]any:
		var spec ColumnMap
		for _, key := range sortedKeys(v) {
			if key == extraKey {
				extra, err := stringOrSlice(v[key])
				if err != nil {
					return nil, err
				}
				spec.Extra = append(spec.Extra, extra...)
				continue
			}
			columns, err := stringOrSlice(v[key])
			if err != nil {
				return nil, err
			}
			spec.Tables = append(spec.Tables, TableColumns{Table: key, Columns: columns})
		}
		return spec, nil
	default:
		return nil, fmt.Errorf("cannot decode %T as a column specification", v)
	}
}

// decodeSort converts a string or a one/two-level mapping into a SortSpec.
func decodeSort(v any) (SortSpec, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return RawSort(v), nil
	case map[string]any:
		var (
			fields SortFields
			tables TableSortFields
		)
		for _, key := range sortedKeys(v) {
			switch value := v[key].(type) {
			case map[string]any:
				inner := make([]SortField, 0, len(value))
				for _, col := range sortedKeys(value) {
					d, err := decodeDirection(value[col])
					if err != nil {
						return nil, err
					}
					inner = append(inner, SortField{Column: col, Direction: d})
				}
				tables = append(tables, TableSort{Table: key, Fields: inner})
			default:
				d, err := decodeDirection(value)
				if err != nil {
					return nil, err
				}
				fields = append(fields, SortField{Column: key, Direction: d})
			}
		}
		if len(tables) > 0 && len(fields) > 0 {
			return nil, fmt.Errorf("mixed direction codes and nested mappings in one sort specification")
		}
		if len(tables) > 0 {
			return tables, nil
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("cannot decode %T as a sort specification", v)
	}
}

func decodeDirection(v any) (Direction, error) {
	switch v := v.(type) {
	case int:
		return Direction(v), nil
	case float64:
		return Direction(int(v)), nil
	default:
		return 0, fmt.Errorf("cannot decode %T as a direction code", v)
	}
}

// joinKeys are the descriptor attributes that never name a table.
var joinKeys = map[string]bool{"type": true, "on": true, "operator": true, "table": true}

// decodeJoins converts join descriptors into Join variants. The descriptor
// form is attribute-driven: a non-empty on condition selects the JoinOn form,
// otherwise the non-reserved keys become table-column pairs. Pair counts are
// validated when the statement is built, not here.
func decodeJoins(docs []map[string]any) ([]Join, error) {
	joins := make([]Join, 0, len(docs))
	for _, m := range docs {
		typ, _ := m["type"].(string)
		on, _ := m["on"].(string)
		var nonReserved []string
		for key := range m {
			if !joinKeys[key] {
				nonReserved = append(nonReserved, key)
			}
		}
		sort.Strings(nonReserved)
		if on != "" {
			table, _ := m["table"].(string)
			if table == "" && len(nonReserved) > 0 {
				table = nonReserved[0]
			}
			joins = append(joins, JoinOn{Type: typ, Table: table, On: on})
			continue
		}
		operator, _ := m["operator"].(string)
		pairs := make([]TableColumn, 0, len(nonReserved))
		for _, table := range nonReserved {
			column, ok := m[table].(string)
			if !ok {
				return nil, fmt.Errorf("join table %q: cannot decode %T as a column name", table, m[table])
			}
			pairs = append(pairs, TableColumn{Table: table, Column: column})
		}
		joins = append(joins, JoinColumns{Type: typ, Operator: operator, Pairs: pairs})
	}
	return joins, nil
}

// decodeAggregates converts aggregate descriptors. Each descriptor maps one
// function name to a column expression, with an optional alias key.
func decodeAggregates(docs []map[string]any) ([]Aggregate, error) {
	aggs := make([]Aggregate, 0, len(docs))
	for _, m := range docs {
		var a Aggregate
		a.Alias, _ = m["alias"].(string)
		for _, key := range sortedKeys(m) {
			if key == "alias" {
				continue
			}
			expr, ok := m[key].(string)
			if !ok {
				return nil, fmt.Errorf("aggregate %q: cannot decode %T as a column expression", key, m[key])
			}
			a.Fn, a.Expr = key, expr
			break
		}
		if a.Fn == "" {
			return nil, fmt.Errorf("aggregate descriptor carries no function entry")
		}
		aggs = append(aggs, a)
	}
	return aggs, nil
}

// decodeRows converts a single row mapping or a sequence of row mappings.
func decodeRows(v any) ([]Row, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []Row{Row(v)}, nil
	case []any:
		rows := make([]Row, 0, len(v))
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("cannot decode %T as a row", e)
			}
			rows = append(rows, Row(m))
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("cannot decode %T as insert rows", v)
	}
}

// decodeUpdateData converts update values, recognizing the conditional
// descriptor shape {case: [{when, then}, ...], default: value}.
func decodeUpdateData(doc map[string]any) (map[string]any, error) {
	if doc == nil {
		return nil, nil
	}
	data := make(map[string]any, len(doc))
	for column, value := range doc {
		m, ok := value.(map[string]any)
		if !ok {
			data[column] = value
			continue
		}
		branches, ok := m["case"].([]any)
		if !ok {
			return nil, fmt.Errorf("column %q: mapping value carries no case branches", column)
		}
		c := Case{Default: m["default"]}
		for _, b := range branches {
			bm, ok := b.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("column %q: cannot decode %T as a case branch", column, b)
			}
			cond, _ := bm["when"].(string)
			c.When = append(c.When, When{Condition: cond, Then: bm["then"]})
		}
		data[column] = c
	}
	return data, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringSlice(v []any) ([]string, error) {
	out := make([]string, 0, len(v))
	for _, e := range v {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("cannot decode %T as a column name", e)
		}
		out = append(out, s)
	}
	return out, nil
}

// stringOrSlice accepts a single string or a sequence of strings.
func stringOrSlice(v any) ([]string, error) {
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []any:
		return stringSlice(v)
	default:
		return nil, fmt.Errorf("cannot decode %T as a string or string sequence", v)
	}
}
