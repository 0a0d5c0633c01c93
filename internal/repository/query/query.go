// Package query models composable list queries: an AND-composed filter,
// a sort key, and a normalized page window. Filters compile to
// parameterized SQL for the postgres layer and evaluate in-process via
// Match so fakes and tests share the same semantics.
package query

import (
	"fmt"
	"strings"
)

type Op string

const (
	OpEq Op = "eq"
	// OpContains is a case-insensitive substring match (ILIKE in SQL,
	// folded strings.Contains in Match).
	OpContains Op = "contains"
	OpGte      Op = "gte"
	OpLte      Op = "lte"
)

// Condition is a single column predicate.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Filter is a conjunction of conditions. The zero value matches everything.
type Filter struct {
	conds []Condition
}

// Where appends a condition and returns the filter for chaining.
func (f Filter) Where(column string, op Op, value any) Filter {
	f.conds = append(f.conds, Condition{Column: column, Op: op, Value: value})
	return f
}

// AnyOf appends a condition matching when any of the columns satisfies
// op against value. Used for search terms spanning several columns.
func (f Filter) AnyOf(columns []string, op Op, value any) Filter {
	f.conds = append(f.conds, Condition{Column: strings.Join(columns, "|"), Op: op, Value: value})
	return f
}

func (f Filter) Empty() bool {
	return len(f.conds) == 0
}

func (f Filter) Conditions() []Condition {
	return f.conds
}

// ToSQL renders the filter as a WHERE clause body with $n placeholders
// starting at argPos. Returns the clause, the argument slice, and the next
// free placeholder index. An empty filter yields an empty clause.
func (f Filter) ToSQL(argPos int) (string, []any, int) {
	if len(f.conds) == 0 {
		return "", nil, argPos
	}

	parts := make([]string, 0, len(f.conds))
	args := make([]any, 0, len(f.conds))

	for _, c := range f.conds {
		cols := strings.Split(c.Column, "|")
		switch c.Op {
		case OpContains:
			ors := make([]string, 0, len(cols))
			for _, col := range cols {
				ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, argPos))
			}
			parts = append(parts, "("+strings.Join(ors, " OR ")+")")
			args = append(args, "%"+fmt.Sprintf("%v", c.Value)+"%")
			argPos++
		case OpGte:
			parts = append(parts, fmt.Sprintf("%s >= $%d", cols[0], argPos))
			args = append(args, c.Value)
			argPos++
		case OpLte:
			parts = append(parts, fmt.Sprintf("%s <= $%d", cols[0], argPos))
			args = append(args, c.Value)
			argPos++
		default:
			parts = append(parts, fmt.Sprintf("%s = $%d", cols[0], argPos))
			args = append(args, c.Value)
			argPos++
		}
	}

	return strings.Join(parts, " AND "), args, argPos
}

// Match evaluates the filter in-process. get resolves a column name to the
// entity's value for that column. All conditions must hold.
func (f Filter) Match(get func(column string) any) bool {
	for _, c := range f.conds {
		cols := strings.Split(c.Column, "|")
		switch c.Op {
		case OpContains:
			term := strings.ToLower(fmt.Sprintf("%v", c.Value))
			hit := false
			for _, col := range cols {
				if strings.Contains(strings.ToLower(fmt.Sprintf("%v", get(col))), term) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		case OpGte:
			if toFloat(get(cols[0])) < toFloat(c.Value) {
				return false
			}
		case OpLte:
			if toFloat(get(cols[0])) > toFloat(c.Value) {
				return false
			}
		default:
			if fmt.Sprintf("%v", get(cols[0])) != fmt.Sprintf("%v", c.Value) {
				return false
			}
		}
	}
	return true
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// Sort names a column and a direction. The zero value means "no sort
// requested"; repositories fall back to id ascending.
type Sort struct {
	Column string
	Desc   bool
}

func (s Sort) OrderBy() string {
	col := s.Column
	if col == "" {
		col = "id"
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return col + " " + dir
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a normalized page window.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number and size into valid ranges.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
