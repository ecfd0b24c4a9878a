package types

import "github.com/zoobzio/viewql/internal/render"

// Statement is a renderable DDL statement.
type Statement interface {
	render.QueryPart
	// Validate reports precondition violations before any text is rendered.
	Validate() error
}
