// Package sqlite provides the SQLite dialect renderer for viewql.
//
// SQLite rejects a column list after the view name, so CREATE VIEW statements
// that rename columns are rendered as
//
//	create view v as select a, b from (<query>) as t(a, b)
package sqlite

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
	"github.com/zoobzio/viewql/internal/types"
)

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	opts []render.Option
}

// New creates a new SQLite renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{opts: opts}
}

// Family returns render.SQLite.
func (r *Renderer) Family() render.Family {
	return render.SQLite
}

// Render converts a statement to a QueryResult with SQLite SQL.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}

	sql, spans := render.Render(render.SQLite, stmt, r.opts...)
	return &types.QueryResult{SQL: sql, Spans: spans}, nil
}

// Capabilities returns the DDL features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ViewColumnRename:  render.SupportsViewColumnRename(r.Family()),
		DerivedColumnList: true,
		DropViewIfExists:  true,
	}
}
