// Package mariadb provides the MariaDB dialect renderer for viewql.
package mariadb

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
	"github.com/zoobzio/viewql/internal/types"
)

// Renderer implements the MariaDB dialect renderer.
type Renderer struct {
	opts []render.Option
}

// New creates a new MariaDB renderer.
func New(opts ...render.Option) *Renderer {
	return &Renderer{opts: opts}
}

// Family returns render.MariaDB.
func (r *Renderer) Family() render.Family {
	return render.MariaDB
}

// Render converts a statement to a QueryResult with MariaDB SQL.
func (r *Renderer) Render(stmt types.Statement) (*types.QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}
	if err := r.validate(stmt); err != nil {
		return nil, err
	}

	sql, spans := render.Render(render.MariaDB, stmt, r.opts...)
	return &types.QueryResult{SQL: sql, Spans: spans}, nil
}

// Capabilities returns the DDL features supported by MariaDB.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		ViewColumnRename:  render.SupportsViewColumnRename(r.Family()),
		DerivedColumnList: false,
		DropViewIfExists:  true,
	}
}

// validate checks for MariaDB-unsupported features.
func (r *Renderer) validate(stmt types.Statement) error {
	view, ok := stmt.(*types.CreateView)
	if !ok {
		return nil
	}
	if view.Query().HasDerivedColumnList() {
		return render.NewUnsupportedFeatureError("mariadb", "derived table column lists",
			"alias the columns inside the subquery instead")
	}
	return nil
}
