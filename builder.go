package viewql

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/types"
)

// CreateViewStep is the first CREATE VIEW stage: the target is known, the
// rename list and defining query are not.
type CreateViewStep struct {
	target types.Table
}

// CreateView starts a CREATE VIEW statement for target.
func CreateView(target types.Table) *CreateViewStep {
	return &CreateViewStep{target: target}
}

// Columns sets an explicit rename list. An empty list is allowed and renders
// no column list.
func (s *CreateViewStep) Columns(fields ...types.Field) *CreateViewAsStep {
	if fields == nil {
		fields = []types.Field{}
	}
	return &CreateViewAsStep{view: types.NewCreateViewColumns(s.target, fields)}
}

// As attaches the defining query without a rename list.
func (s *CreateViewStep) As(query *types.Select) *CreateViewFinalStep {
	return attach(types.NewCreateView(s.target), query)
}

// CreateViewAsStep waits for the defining query.
type CreateViewAsStep struct {
	view *types.CreateView
}

// As attaches the defining query. A step can attach only once.
func (s *CreateViewAsStep) As(query *types.Select) *CreateViewFinalStep {
	return attach(s.view, query)
}

func attach(view *types.CreateView, query *types.Select) *CreateViewFinalStep {
	if err := view.Attach(query); err != nil {
		return &CreateViewFinalStep{err: err}
	}
	return &CreateViewFinalStep{view: view}
}

// CreateViewFinalStep holds a render-ready CREATE VIEW statement.
type CreateViewFinalStep struct {
	view *types.CreateView
	err  error
}

// Build validates and returns the statement.
func (s *CreateViewFinalStep) Build() (*types.CreateView, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := s.view.Validate(); err != nil {
		return nil, err
	}
	return s.view, nil
}

// MustBuild returns the statement or panics on error.
func (s *CreateViewFinalStep) MustBuild() *types.CreateView {
	view, err := s.Build()
	if err != nil {
		panic(err)
	}
	return view
}

// Render builds the statement and renders it with r.
func (s *CreateViewFinalStep) Render(r Renderer) (*QueryResult, error) {
	view, err := s.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(view)
}

// MustRender builds and renders the statement or panics on error.
func (s *CreateViewFinalStep) MustRender(r Renderer) *QueryResult {
	result, err := s.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}

// SelectBuilder provides a fluent API for constructing defining queries.
type SelectBuilder struct {
	sel *types.Select
	err error
}

// Select creates a new SELECT builder. No fields selects *.
func Select(fields ...types.Field) *SelectBuilder {
	return &SelectBuilder{sel: &types.Select{Fields: fields}}
}

// Distinct sets the DISTINCT flag.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.sel.Distinct = true
	return b
}

// From sets the source table.
func (b *SelectBuilder) From(t types.Table) *SelectBuilder {
	return b.from(t)
}

// FromDerived selects from a subquery aliased as alias, optionally renaming
// its columns.
func (b *SelectBuilder) FromDerived(query *types.Select, alias string, columns ...string) *SelectBuilder {
	if b.err != nil {
		return b
	}
	if !isValidSQLIdentifier(alias) {
		b.err = fmt.Errorf("invalid derived table alias: %q", alias)
		return b
	}
	for _, c := range columns {
		if !isValidSQLIdentifier(c) {
			b.err = fmt.Errorf("invalid derived column name: %q", c)
			return b
		}
	}
	return b.from(types.DerivedTable{Query: query, Alias: alias, Columns: columns})
}

func (b *SelectBuilder) from(src types.Source) *SelectBuilder {
	if b.err != nil {
		return b
	}
	if b.sel.From != nil {
		b.err = fmt.Errorf("FROM source already set")
		return b
	}
	b.sel.From = src
	return b
}

// Build validates and returns the query.
func (b *SelectBuilder) Build() (*types.Select, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.sel.Validate(); err != nil {
		return nil, err
	}
	return b.sel, nil
}

// MustBuild returns the query or panics on error.
func (b *SelectBuilder) MustBuild() *types.Select {
	sel, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sel
}

// DropViewBuilder constructs DROP VIEW statements.
type DropViewBuilder struct {
	target   types.Table
	ifExists bool
}

// DropView starts a DROP VIEW statement for target.
func DropView(target types.Table) *DropViewBuilder {
	return &DropViewBuilder{target: target}
}

// IfExists tolerates a missing view.
func (b *DropViewBuilder) IfExists() *DropViewBuilder {
	b.ifExists = true
	return b
}

// Build validates and returns the statement.
func (b *DropViewBuilder) Build() (*types.DropView, error) {
	stmt := types.NewDropView(b.target, b.ifExists)
	if err := stmt.Validate(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// Render builds the statement and renders it with r.
func (b *DropViewBuilder) Render(r Renderer) (*QueryResult, error) {
	stmt, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(stmt)
}

// MustRender builds and renders the statement or panics on error.
func (b *DropViewBuilder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
