package types

import (
	"errors"
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
)

// Errors returned for statements that are not ready to render.
var (
	ErrNoDefiningQuery      = errors.New("create view requires a defining query")
	ErrQueryAlreadyAttached = errors.New("defining query already attached")
)

// derivedAlias names the derived table that carries a rename list when the
// dialect cannot rename at the view declaration.
const derivedAlias = "t"

// CreateView represents CREATE VIEW target(columns) AS query.
// Target and columns are fixed at construction; the query is attached once.
type CreateView struct {
	query   *Select
	target  Table
	columns []Field
	renamed bool // a rename list was given, possibly empty
}

// NewCreateView creates a statement without a rename list.
func NewCreateView(target Table) *CreateView {
	return &CreateView{target: target}
}

// NewCreateViewColumns creates a statement with an explicit rename list.
// An empty list is kept distinct from no list but renders the same.
func NewCreateViewColumns(target Table, columns []Field) *CreateView {
	cols := make([]Field, len(columns))
	copy(cols, columns)
	return &CreateView{target: target, columns: cols, renamed: true}
}

// Target returns the view being created.
func (v *CreateView) Target() Table {
	return v.target
}

// Columns returns the rename list and whether one was given.
func (v *CreateView) Columns() ([]Field, bool) {
	cols := make([]Field, len(v.columns))
	copy(cols, v.columns)
	return cols, v.renamed
}

// Query returns the defining query, or nil before Attach.
func (v *CreateView) Query() *Select {
	return v.query
}

// Attach sets the defining query. It succeeds exactly once.
func (v *CreateView) Attach(query *Select) error {
	if query == nil {
		return ErrNoDefiningQuery
	}
	if v.query != nil {
		return ErrQueryAlreadyAttached
	}
	v.query = query
	return nil
}

// Ready reports whether the statement can be rendered.
func (v *CreateView) Ready() bool {
	return v.query != nil
}

// Validate checks the statement before rendering.
func (v *CreateView) Validate() error {
	if v.query == nil {
		return ErrNoDefiningQuery
	}
	if err := v.target.Validate(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	if v.target.Alias != "" {
		return fmt.Errorf("view %s cannot be aliased", v.target.Name)
	}
	for i, f := range v.columns {
		if f.Name == "" {
			return fmt.Errorf("view column %d has no name", i)
		}
	}
	if len(v.columns) > 0 && len(v.query.Fields) > 0 && len(v.columns) != len(v.query.Fields) {
		return fmt.Errorf("view %s declares %d columns but its query selects %d",
			v.target.Name, len(v.columns), len(v.query.Fields))
	}
	if err := v.query.Validate(); err != nil {
		return fmt.Errorf("defining query: %w", err)
	}
	return nil
}

// Accept renders the statement. Dialects that cannot rename columns at the
// view declaration get the rename list on a derived table wrapping the query.
// Rename-list columns are always rendered unqualified.
func (v *CreateView) Accept(ctx *render.Context) {
	if v.query == nil {
		panic(ErrNoDefiningQuery)
	}

	rename := len(v.columns) > 0
	renameSupported := render.SupportsViewColumnRename(ctx.Family())

	ctx.Start(render.ClauseCreateView).
		Start(render.ClauseCreateViewName).
		Keyword("create view").
		SQL(" ").
		Visit(v.target)

	if rename && renameSupported {
		ctx.SQL("(").
			WithQualify(false, func() { ctx.Visit(FieldList(v.columns)) }).
			SQL(")")
	}

	ctx.End(render.ClauseCreateViewName).
		FormatSeparator().
		Keyword("as").
		FormatSeparator().
		Start(render.ClauseCreateViewAs)

	if rename && !renameSupported {
		ctx.Visit(renamedQuery(v.query, FieldList(v.columns).Names()))
	} else {
		ctx.Visit(v.query)
	}

	ctx.End(render.ClauseCreateViewAs).
		End(render.ClauseCreateView)
}

// renamedQuery builds select c1, c2 from (query) as t(c1, c2).
func renamedQuery(query *Select, names []string) *Select {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name}
	}
	return &Select{
		Fields: fields,
		From: DerivedTable{
			Query:   query,
			Alias:   derivedAlias,
			Columns: names,
		},
	}
}
