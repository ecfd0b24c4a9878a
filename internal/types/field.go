package types

import "github.com/zoobzio/viewql/internal/render"

// Field represents a validated column reference.
// This is exported from the internal package so renderers can use it,
// but external users cannot import this package.
type Field struct {
	Name  string // The column name (required)
	Table string // Optional table/alias prefix
}

// GetName returns the field name.
func (f Field) GetName() string {
	return f.Name
}

// GetTable returns the table/alias prefix.
func (f Field) GetTable() string {
	return f.Table
}

// Of returns a copy of the field prefixed with a table or alias.
func (f Field) Of(tableOrAlias string) Field {
	f.Table = tableOrAlias
	return f
}

// Accept renders the field, prefixed only when the context is qualifying.
func (f Field) Accept(ctx *render.Context) {
	if ctx.Qualifying() && f.Table != "" {
		ctx.Name(f.Table).SQL(".")
	}
	ctx.Name(f.Name)
}

// FieldList renders fields as a comma separated sequence.
type FieldList []Field

// Accept renders each field in order.
func (l FieldList) Accept(ctx *render.Context) {
	for i, f := range l {
		if i > 0 {
			ctx.SQL(", ")
		}
		ctx.Visit(f)
	}
}

// Names returns the bare column names.
func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}
