package types

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
)

// Table represents a validated table or view reference.
// This is exported from the internal package so renderers can use it,
// but external users cannot import this package.
type Table struct {
	Name   string
	Schema string // Optional schema prefix, printed only when qualifying
	Alias  string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetAlias returns the table alias.
func (t Table) GetAlias() string {
	return t.Alias
}

// InSchema returns a copy of the table placed in schema.
func (t Table) InSchema(schema string) Table {
	t.Schema = schema
	return t
}

// Accept renders the table reference.
func (t Table) Accept(ctx *render.Context) {
	if ctx.Qualifying() && t.Schema != "" {
		ctx.Name(t.Schema).SQL(".")
	}
	ctx.Name(t.Name)
	if t.Alias != "" {
		ctx.SQL(" ").Name(t.Alias)
	}
}

// Validate checks that the table has a name.
func (t Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("table name is required")
	}
	return nil
}

func (Table) isSource() {}
