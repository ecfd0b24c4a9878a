// Package postgres provides the PostgreSQL dialect renderer for viewql.
package postgres

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
	"github.com/zoobzio/viewql/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	opts []render.Option
}

// New creates a new PostgreSQL renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{opts: opts}
}

// Family returns render.Postgres.
func (r *Renderer) Family() render.Family {
	return render.Postgres
}

// Render converts a statement to a QueryResult with PostgreSQL SQL.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}

	sql, spans := render.Render(render.Postgres, stmt, r.opts...)
	return &types.QueryResult{SQL: sql, Spans: spans}, nil
}

// Capabilities returns the DDL features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ViewColumnRename:  render.SupportsViewColumnRename(r.Family()),
		DerivedColumnList: true,
		DropViewIfExists:  true,
	}
}
