// Package mssql provides the SQL Server dialect renderer for viewql.
package mssql

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
	"github.com/zoobzio/viewql/internal/types"
)

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	opts []render.Option
}

// New creates a new SQL Server renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{opts: opts}
}

// Family returns render.MSSQL.
func (r *Renderer) Family() render.Family {
	return render.MSSQL
}

// Render converts a statement to a QueryResult with SQL Server SQL.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}

	sql, spans := render.Render(render.MSSQL, stmt, r.opts...)
	return &types.QueryResult{SQL: sql, Spans: spans}, nil
}

// Capabilities returns the DDL features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ViewColumnRename:  render.SupportsViewColumnRename(r.Family()),
		DerivedColumnList: true,
		DropViewIfExists:  true,
	}
}
