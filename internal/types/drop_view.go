package types

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
)

// DropView represents DROP VIEW [IF EXISTS] target.
type DropView struct {
	target   Table
	ifExists bool
}

// NewDropView creates a DROP VIEW statement.
func NewDropView(target Table, ifExists bool) *DropView {
	return &DropView{target: target, ifExists: ifExists}
}

// Target returns the view being dropped.
func (d *DropView) Target() Table {
	return d.target
}

// IfExists reports whether the drop tolerates a missing view.
func (d *DropView) IfExists() bool {
	return d.ifExists
}

// Validate checks the statement before rendering.
func (d *DropView) Validate() error {
	if err := d.target.Validate(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	if d.target.Alias != "" {
		return fmt.Errorf("view %s cannot be aliased", d.target.Name)
	}
	return nil
}

// Accept renders the statement.
func (d *DropView) Accept(ctx *render.Context) {
	ctx.Start(render.ClauseDropView).Keyword("drop view")
	if d.ifExists {
		ctx.SQL(" ").Keyword("if exists")
	}
	ctx.SQL(" ").
		Start(render.ClauseDropViewTable).
		Visit(d.target).
		End(render.ClauseDropViewTable).
		End(render.ClauseDropView)
}
