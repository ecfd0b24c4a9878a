// Package viewql renders CREATE VIEW statements into dialect-correct SQL.
//
// Statements are built with staged builders, then rendered by a dialect
// renderer through a single-pass render context. The context tracks the
// dialect, a clause stack used to locate regions of the output, and whether
// identifiers are printed fully qualified.
//
// # Basic Usage
//
//	import "github.com/zoobzio/viewql/postgres"
//
//	query := viewql.Select(viewql.F("x"), viewql.F("y")).From(viewql.T("T")).MustBuild()
//
//	result, err := viewql.CreateView(viewql.T("V")).
//		Columns(viewql.F("a"), viewql.F("b")).
//		As(query).
//		Render(postgres.New())
//	// result.SQL: create view V(a, b) as select x, y from T
//
// # Dialects
//
// Available renderers: postgres, sqlite, mariadb, mssql. SQLite cannot rename
// columns after the view name, so the sqlite renderer moves the rename list
// onto a derived table wrapping the defining query:
//
//	create view V as select a, b from (select x, y from T) as t(a, b)
//
// # Schema-Validated Usage
//
// Tables and fields can be checked against a DBML schema:
//
//	instance, err := viewql.NewFromDBML(project)
//	users := instance.T("users") // panics if users is not in the schema
package viewql

import (
	"github.com/zoobzio/viewql/internal/render"
	"github.com/zoobzio/viewql/internal/types"
)

// QueryResult contains the rendered SQL and its clause spans.
type QueryResult = types.QueryResult

// Statement is a renderable DDL statement.
type Statement = types.Statement

// Table is a table or view reference.
type Table = types.Table

// Field is a column reference.
type Field = types.Field

// Family identifies a SQL dialect.
type Family = render.Family

// Re-export dialect families for public API.
const (
	Postgres = render.Postgres
	SQLite   = render.SQLite
	MariaDB  = render.MariaDB
	MSSQL    = render.MSSQL
)

// Clause tags a structural region of rendered output.
type Clause = render.Clause

// Span locates a clause in rendered output.
type Span = render.Span

// Re-export clause tags for public API.
const (
	ClauseCreateView     = render.ClauseCreateView
	ClauseCreateViewName = render.ClauseCreateViewName
	ClauseCreateViewAs   = render.ClauseCreateViewAs
	ClauseDropView       = render.ClauseDropView
	ClauseDropViewTable  = render.ClauseDropViewTable
	ClauseSelect         = render.ClauseSelect
	ClauseSelectFrom     = render.ClauseSelectFrom
	ClauseDerivedTable   = render.ClauseDerivedTable
)

// Option configures rendering.
type Option = render.Option

// KeywordStyle controls keyword casing.
type KeywordStyle = render.KeywordStyle

// NameStyle controls identifier quoting.
type NameStyle = render.NameStyle

// Re-export formatting styles for public API.
const (
	KeywordsAsIs  = render.KeywordsAsIs
	KeywordsLower = render.KeywordsLower
	KeywordsUpper = render.KeywordsUpper
	NamesAsIs     = render.NamesAsIs
	NamesQuoted   = render.NamesQuoted
)

// Capabilities describes the DDL features supported by a dialect.
type Capabilities = render.Capabilities

// Rendering options.
var (
	WithKeywordStyle = render.WithKeywordStyle
	WithNameStyle    = render.WithNameStyle
	WithFormat       = render.WithFormat
)

// Errors returned for statements that cannot be rendered.
var (
	ErrNoDefiningQuery      = types.ErrNoDefiningQuery
	ErrQueryAlreadyAttached = types.ErrQueryAlreadyAttached
)

// ClauseMismatchError is the panic value raised when clauses are unbalanced.
type ClauseMismatchError = render.ClauseMismatchError

// UnsupportedFeatureError indicates a construct the dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// Query is a defining query.
type Query = types.Select

// CreateViewStatement is a CREATE VIEW statement.
type CreateViewStatement = types.CreateView

// DropViewStatement is a DROP VIEW statement.
type DropViewStatement = types.DropView
