package viewql

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/render"
	"github.com/zoobzio/viewql/internal/types"
	"github.com/zoobzio/viewql/mariadb"
	"github.com/zoobzio/viewql/mssql"
	"github.com/zoobzio/viewql/postgres"
	"github.com/zoobzio/viewql/sqlite"
)

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations are stateless and may be shared between goroutines.
type Renderer interface {
	// Render validates a statement and converts it to dialect-specific SQL.
	Render(stmt types.Statement) (*types.QueryResult, error)

	// Family returns the dialect rendered.
	Family() render.Family

	// Capabilities describes the DDL features the dialect supports.
	Capabilities() render.Capabilities
}

// ForFamily returns the renderer for a dialect family.
func ForFamily(family Family, opts ...Option) (Renderer, error) {
	switch family {
	case Postgres:
		return postgres.New(opts...), nil
	case SQLite:
		return sqlite.New(opts...), nil
	case MariaDB:
		return mariadb.New(opts...), nil
	case MSSQL:
		return mssql.New(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", family)
	}
}

// ForDialect resolves a dialect name (postgres, sqlite, mariadb, mssql) and
// returns its renderer.
func ForDialect(name string, opts ...Option) (Renderer, error) {
	family, err := render.ParseFamily(name)
	if err != nil {
		return nil, err
	}
	return ForFamily(family, opts...)
}
