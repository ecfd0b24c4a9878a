package render

import "fmt"

// Clause tags a structural region of rendered output. Clauses do not emit text.
type Clause int

const (
	ClauseCreateView Clause = iota + 1
	ClauseCreateViewName
	ClauseCreateViewAs
	ClauseDropView
	ClauseDropViewTable
	ClauseSelect
	ClauseSelectFrom
	ClauseDerivedTable
)

var clauseNames = [...]string{
	ClauseCreateView:     "CREATE_VIEW",
	ClauseCreateViewName: "CREATE_VIEW_NAME",
	ClauseCreateViewAs:   "CREATE_VIEW_AS",
	ClauseDropView:       "DROP_VIEW",
	ClauseDropViewTable:  "DROP_VIEW_TABLE",
	ClauseSelect:         "SELECT",
	ClauseSelectFrom:     "SELECT_FROM",
	ClauseDerivedTable:   "DERIVED_TABLE",
}

func (c Clause) String() string {
	if c > 0 && int(c) < len(clauseNames) {
		return clauseNames[c]
	}
	return fmt.Sprintf("Clause(%d)", int(c))
}

// Span locates a closed clause in the output as a byte range [Start, End).
type Span struct {
	Clause Clause
	Start  int
	End    int
}
