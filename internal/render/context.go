package render

import (
	"fmt"
	"strings"
)

// QueryPart is anything that can render itself into a Context.
type QueryPart interface {
	Accept(ctx *Context)
}

type openClause struct {
	clause Clause
	start  int
}

// Context drives a single render. It is created per render call, threaded
// through every QueryPart by pointer and discarded afterwards; it is not safe
// for concurrent use.
type Context struct {
	out      strings.Builder
	clauses  []openClause
	spans    []Span
	settings Settings
	family   Family
	qualify  bool
}

// NewContext creates a context for the given family. Identifiers are
// qualified by default.
func NewContext(family Family, opts ...Option) *Context {
	if !family.Valid() {
		panic(fmt.Sprintf("render: unknown dialect family %s", family))
	}
	return &Context{
		family:   family,
		settings: NewSettings(opts...),
		qualify:  true,
	}
}

// Family returns the dialect family being rendered.
func (c *Context) Family() Family {
	return c.family
}

// Settings returns the formatting policy.
func (c *Context) Settings() Settings {
	return c.settings
}

// Start opens a clause at the current output position.
func (c *Context) Start(clause Clause) *Context {
	c.clauses = append(c.clauses, openClause{clause: clause, start: c.out.Len()})
	return c
}

// End closes the innermost clause, which must be clause.
func (c *Context) End(clause Clause) *Context {
	n := len(c.clauses)
	if n == 0 {
		panic(&ClauseMismatchError{Ended: clause})
	}
	top := c.clauses[n-1]
	if top.clause != clause {
		panic(&ClauseMismatchError{Ended: clause, Open: top.clause})
	}
	c.clauses = c.clauses[:n-1]
	c.spans = append(c.spans, Span{Clause: clause, Start: top.start, End: c.out.Len()})
	return c
}

// Depth returns the number of open clauses.
func (c *Context) Depth() int {
	return len(c.clauses)
}

// Finish asserts that every started clause has been ended.
func (c *Context) Finish() *Context {
	if n := len(c.clauses); n > 0 {
		panic(&ClauseMismatchError{Open: c.clauses[n-1].clause})
	}
	return c
}

// Keyword emits a keyword cased per the keyword style.
func (c *Context) Keyword(keyword string) *Context {
	switch c.settings.Keywords {
	case KeywordsLower:
		keyword = strings.ToLower(keyword)
	case KeywordsUpper:
		keyword = strings.ToUpper(keyword)
	}
	c.out.WriteString(keyword)
	return c
}

// SQL emits raw text.
func (c *Context) SQL(sql string) *Context {
	c.out.WriteString(sql)
	return c
}

// Name emits an identifier, quoted when the name style asks for it.
func (c *Context) Name(name string) *Context {
	if c.settings.Names == NamesQuoted {
		name = c.family.Quote(name)
	}
	c.out.WriteString(name)
	return c
}

// FormatSeparator emits a newline when formatting, a single space otherwise.
func (c *Context) FormatSeparator() *Context {
	if c.settings.Format {
		c.out.WriteByte('\n')
	} else {
		c.out.WriteByte(' ')
	}
	return c
}

// Qualifying reports whether nested identifiers render fully qualified.
func (c *Context) Qualifying() bool {
	return c.qualify
}

// Qualify sets the qualification flag. The previous value is not saved;
// prefer WithQualify for scoped overrides.
func (c *Context) Qualify(qualify bool) *Context {
	c.qualify = qualify
	return c
}

// WithQualify runs fn with the qualification flag set to qualify and restores
// the previous value afterwards, including when fn panics.
func (c *Context) WithQualify(qualify bool, fn func()) *Context {
	prev := c.qualify
	c.qualify = qualify
	defer func() { c.qualify = prev }()
	fn()
	return c
}

// Visit renders part into this context. A nil part renders nothing.
func (c *Context) Visit(part QueryPart) *Context {
	if part == nil {
		return c
	}
	part.Accept(c)
	return c
}

// String returns the output rendered so far.
func (c *Context) String() string {
	return c.out.String()
}

// Spans returns the closed clauses in the order they were ended.
func (c *Context) Spans() []Span {
	spans := make([]Span, len(c.spans))
	copy(spans, c.spans)
	return spans
}

// Render renders part into a fresh context and checks that every clause it
// opened was closed.
func Render(family Family, part QueryPart, opts ...Option) (string, []Span) {
	ctx := NewContext(family, opts...)
	ctx.Visit(part).Finish()
	return ctx.String(), ctx.spans
}
