package types

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
)

// MaxSubqueryDepth bounds derived table nesting.
const MaxSubqueryDepth = 3

// Source is a FROM clause source: a Table or a DerivedTable.
type Source interface {
	render.QueryPart
	isSource()
}

// Select is a minimal SELECT statement, used as a view's defining query.
type Select struct {
	From     Source
	Fields   []Field // empty selects *
	Distinct bool
}

// Accept renders the query.
func (s *Select) Accept(ctx *render.Context) {
	ctx.Start(render.ClauseSelect).Keyword("select")
	if s.Distinct {
		ctx.SQL(" ").Keyword("distinct")
	}
	ctx.SQL(" ")
	if len(s.Fields) == 0 {
		ctx.SQL("*")
	} else {
		ctx.Visit(FieldList(s.Fields))
	}
	if s.From != nil {
		ctx.SQL(" ").
			Start(render.ClauseSelectFrom).
			Keyword("from").
			SQL(" ").
			Visit(s.From).
			End(render.ClauseSelectFrom)
	}
	ctx.End(render.ClauseSelect)
}

// Validate checks the query and any nested derived tables.
func (s *Select) Validate() error {
	return s.validate(0)
}

func (s *Select) validate(depth int) error {
	if depth > MaxSubqueryDepth {
		return fmt.Errorf("maximum subquery depth (%d) exceeded", MaxSubqueryDepth)
	}
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d has no name", i)
		}
	}
	switch src := s.From.(type) {
	case nil:
		return fmt.Errorf("select requires a FROM source")
	case Table:
		return src.Validate()
	case DerivedTable:
		return src.validate(depth + 1)
	default:
		return fmt.Errorf("unsupported FROM source %T", src)
	}
}

// HasDerivedColumnList reports whether any derived table reachable from s
// renames its columns.
func (s *Select) HasDerivedColumnList() bool {
	d, ok := s.From.(DerivedTable)
	if !ok {
		return false
	}
	if len(d.Columns) > 0 {
		return true
	}
	return d.Query != nil && d.Query.HasDerivedColumnList()
}

// DerivedTable is a subquery used as a FROM source, optionally renaming
// its columns at the point of use.
type DerivedTable struct {
	Query   *Select
	Alias   string
	Columns []string
}

// Accept renders (query) as alias(c1, c2).
func (d DerivedTable) Accept(ctx *render.Context) {
	ctx.Start(render.ClauseDerivedTable).
		SQL("(").
		Visit(d.Query).
		SQL(") ").
		Keyword("as").
		SQL(" ").
		Name(d.Alias)
	if len(d.Columns) > 0 {
		ctx.SQL("(")
		for i, c := range d.Columns {
			if i > 0 {
				ctx.SQL(", ")
			}
			ctx.Name(c)
		}
		ctx.SQL(")")
	}
	ctx.End(render.ClauseDerivedTable)
}

func (d DerivedTable) validate(depth int) error {
	if d.Query == nil {
		return fmt.Errorf("derived table requires a query")
	}
	if d.Alias == "" {
		return fmt.Errorf("derived table requires an alias")
	}
	if len(d.Columns) > 0 && len(d.Query.Fields) > 0 && len(d.Columns) != len(d.Query.Fields) {
		return fmt.Errorf("derived table %s renames %d columns but its query selects %d",
			d.Alias, len(d.Columns), len(d.Query.Fields))
	}
	return d.Query.validate(depth)
}

func (DerivedTable) isSource() {}
