package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSQLEmptyFilter(t *testing.T) {
	clause, args, next := Filter{}.ToSQL(1)
	assert.Empty(t, clause)
	assert.Empty(t, args)
	assert.Equal(t, 1, next)
}

func TestToSQLAndComposition(t *testing.T) {
	f := Filter{}.
		Where("category", OpEq, "Tools").
		Where("price", OpGte, 5.0).
		Where("price", OpLte, 20.0).
		Where("is_active", OpEq, true)

	clause, args, next := f.ToSQL(1)

	assert.Equal(t, "category = $1 AND price >= $2 AND price <= $3 AND is_active = $4", clause)
	assert.Equal(t, []any{"Tools", 5.0, 20.0, true}, args)
	assert.Equal(t, 5, next)
}

func TestToSQLSearchSpansColumns(t *testing.T) {
	f := Filter{}.AnyOf([]string{"name", "description"}, OpContains, "widget")

	clause, args, _ := f.ToSQL(3)

	assert.Equal(t, "(name ILIKE $3 OR description ILIKE $3)", clause)
	require.Len(t, args, 1)
	assert.Equal(t, "%widget%", args[0])
}

func TestToSQLArgOffset(t *testing.T) {
	f := Filter{}.Where("country", OpEq, "Kenya")

	clause, _, next := f.ToSQL(4)

	assert.Equal(t, "country = $4", clause)
	assert.Equal(t, 5, next)
}

func TestMatchSemantics(t *testing.T) {
	row := map[string]any{
		"name":        "Steel Widget",
		"description": "A sturdy widget",
		"category":    "Tools",
		"price":       9.99,
		"is_active":   true,
	}
	get := func(col string) any { return row[col] }

	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty matches all", Filter{}, true},
		{"eq hit", Filter{}.Where("category", OpEq, "Tools"), true},
		{"eq miss", Filter{}.Where("category", OpEq, "Garden"), false},
		{"contains is case-insensitive", Filter{}.AnyOf([]string{"name", "description"}, OpContains, "WIDGET"), true},
		{"contains miss", Filter{}.AnyOf([]string{"name", "description"}, OpContains, "sprocket"), false},
		{"range inclusive lower", Filter{}.Where("price", OpGte, 9.99), true},
		{"range inclusive upper", Filter{}.Where("price", OpLte, 9.99), true},
		{"range miss", Filter{}.Where("price", OpGte, 10.0), false},
		{"bool eq", Filter{}.Where("is_active", OpEq, true), true},
		{"and shortcircuits on any miss", Filter{}.Where("category", OpEq, "Tools").Where("price", OpLte, 5.0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Match(get))
		})
	}
}

func TestSortOrderBy(t *testing.T) {
	assert.Equal(t, "id ASC", Sort{}.OrderBy())
	assert.Equal(t, "price DESC", Sort{Column: "price", Desc: true}.OrderBy())
	assert.Equal(t, "name ASC", Sort{Column: "name"}.OrderBy())
}

func TestNewPageNormalization(t *testing.T) {
	p := NewPage(0, 0)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, DefaultPageSize, p.Size)

	p = NewPage(-3, 500)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, MaxPageSize, p.Size)

	p = NewPage(3, 25)
	assert.Equal(t, 50, p.Offset())
	assert.Equal(t, 25, p.Limit())
}
