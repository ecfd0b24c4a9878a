package types

import "github.com/zoobzio/viewql/internal/render"

// QueryResult contains the rendered SQL and the clause spans recorded while
// rendering it.
type QueryResult struct {
	SQL   string
	Spans []render.Span
}

// Span returns the text of the first closed span of clause.
func (r *QueryResult) Span(clause render.Clause) (string, bool) {
	for _, s := range r.Spans {
		if s.Clause == clause {
			return r.SQL[s.Start:s.End], true
		}
	}
	return "", false
}
