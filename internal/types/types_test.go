package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/viewql/internal/render"
)

func renderPart(part render.QueryPart, family render.Family, opts ...render.Option) string {
	ctx := render.NewContext(family, opts...)
	ctx.Visit(part).Finish()
	return ctx.String()
}

func TestField_GetName(t *testing.T) {
	f := Field{Name: "email", Table: "u"}
	if f.GetName() != "email" {
		t.Errorf("GetName() = %q, want %q", f.GetName(), "email")
	}
	if f.GetTable() != "u" {
		t.Errorf("GetTable() = %q, want %q", f.GetTable(), "u")
	}
}

func TestField_Of(t *testing.T) {
	f := Field{Name: "id"}
	prefixed := f.Of("users")
	if prefixed.Table != "users" {
		t.Errorf("Of() table = %q, want %q", prefixed.Table, "users")
	}
	if f.Table != "" {
		t.Error("Of() modified the receiver")
	}
}

func TestField_Accept_Qualify(t *testing.T) {
	f := Field{Name: "id", Table: "u"}

	ctx := render.NewContext(render.Postgres)
	ctx.Visit(f)
	if ctx.String() != "u.id" {
		t.Errorf("qualified = %q, want %q", ctx.String(), "u.id")
	}

	ctx = render.NewContext(render.Postgres).Qualify(false)
	ctx.Visit(f)
	if ctx.String() != "id" {
		t.Errorf("unqualified = %q, want %q", ctx.String(), "id")
	}
}

func TestFieldList_Accept(t *testing.T) {
	list := FieldList{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	if got := renderPart(list, render.SQLite); got != "a, b, c" {
		t.Errorf("got %q, want %q", got, "a, b, c")
	}
	if got := renderPart(FieldList(nil), render.SQLite); got != "" {
		t.Errorf("empty list = %q", got)
	}
	names := list.Names()
	if strings.Join(names, ",") != "a,b,c" {
		t.Errorf("Names() = %v", names)
	}
}

func TestTable_GetName(t *testing.T) {
	table := Table{Name: "users", Alias: "u"}
	if table.GetName() != "users" {
		t.Errorf("GetName() = %q, want %q", table.GetName(), "users")
	}
	if table.GetAlias() != "u" {
		t.Errorf("GetAlias() = %q, want %q", table.GetAlias(), "u")
	}
}

func TestTable_Accept(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		qualify  bool
		expected string
	}{
		{"plain", Table{Name: "users"}, true, `"users"`},
		{"schema qualified", Table{Name: "users", Schema: "app"}, true, `"app"."users"`},
		{"schema not qualified", Table{Name: "users", Schema: "app"}, false, `"users"`},
		{"alias", Table{Name: "users", Alias: "u"}, true, `"users" "u"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := render.NewContext(render.Postgres, render.WithNameStyle(render.NamesQuoted)).Qualify(tt.qualify)
			ctx.Visit(tt.table)
			if ctx.String() != tt.expected {
				t.Errorf("got %q, want %q", ctx.String(), tt.expected)
			}
		})
	}
}

func TestTable_Validate(t *testing.T) {
	if err := (Table{}).Validate(); err == nil {
		t.Error("expected error for empty table name")
	}
	if err := (Table{Name: "users"}.InSchema("app")).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSelect_Accept(t *testing.T) {
	tests := []struct {
		name     string
		query    *Select
		expected string
	}{
		{
			name:     "star",
			query:    &Select{From: Table{Name: "T"}},
			expected: "select * from T",
		},
		{
			name:     "fields",
			query:    &Select{Fields: []Field{{Name: "x"}, {Name: "y"}}, From: Table{Name: "T"}},
			expected: "select x, y from T",
		},
		{
			name:     "distinct",
			query:    &Select{Distinct: true, Fields: []Field{{Name: "x"}}, From: Table{Name: "T"}},
			expected: "select distinct x from T",
		},
		{
			name: "derived table",
			query: &Select{
				Fields: []Field{{Name: "a"}},
				From: DerivedTable{
					Query:   &Select{Fields: []Field{{Name: "x"}}, From: Table{Name: "T"}},
					Alias:   "t",
					Columns: []string{"a"},
				},
			},
			expected: "select a from (select x from T) as t(a)",
		},
		{
			name: "derived table without columns",
			query: &Select{
				From: DerivedTable{Query: &Select{From: Table{Name: "T"}}, Alias: "s"},
			},
			expected: "select * from (select * from T) as s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderPart(tt.query, render.Postgres); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSelect_Validate(t *testing.T) {
	nested := func(depth int) *Select {
		q := &Select{From: Table{Name: "T"}}
		for i := 0; i < depth; i++ {
			q = &Select{From: DerivedTable{Query: q, Alias: "d"}}
		}
		return q
	}

	tests := []struct {
		name    string
		query   *Select
		wantErr string
	}{
		{"no source", &Select{}, "FROM source"},
		{"unnamed field", &Select{Fields: []Field{{}}, From: Table{Name: "T"}}, "no name"},
		{"unnamed table", &Select{From: Table{}}, "table name is required"},
		{"derived without query", &Select{From: DerivedTable{Alias: "t"}}, "requires a query"},
		{"derived without alias", &Select{From: DerivedTable{Query: &Select{From: Table{Name: "T"}}}}, "requires an alias"},
		{
			"derived column count",
			&Select{From: DerivedTable{
				Query:   &Select{Fields: []Field{{Name: "x"}}, From: Table{Name: "T"}},
				Alias:   "t",
				Columns: []string{"a", "b"},
			}},
			"renames 2 columns but its query selects 1",
		},
		{"too deep", nested(MaxSubqueryDepth + 1), "maximum subquery depth"},
		{"max depth", nested(MaxSubqueryDepth), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSelect_HasDerivedColumnList(t *testing.T) {
	plain := &Select{From: Table{Name: "T"}}
	if plain.HasDerivedColumnList() {
		t.Error("plain select reported a derived column list")
	}

	inner := &Select{From: DerivedTable{Query: plain, Alias: "a", Columns: []string{"x"}}}
	outer := &Select{From: DerivedTable{Query: inner, Alias: "b"}}
	if !outer.HasDerivedColumnList() {
		t.Error("nested derived column list not found")
	}
}

func TestCreateView_Attach(t *testing.T) {
	view := NewCreateView(Table{Name: "v"})
	if view.Ready() {
		t.Error("statement ready before attach")
	}
	if err := view.Attach(nil); !errors.Is(err, ErrNoDefiningQuery) {
		t.Errorf("Attach(nil) = %v, want ErrNoDefiningQuery", err)
	}

	q := &Select{From: Table{Name: "T"}}
	if err := view.Attach(q); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if !view.Ready() || view.Query() != q {
		t.Error("query not attached")
	}
	if err := view.Attach(&Select{From: Table{Name: "U"}}); !errors.Is(err, ErrQueryAlreadyAttached) {
		t.Errorf("second Attach() = %v, want ErrQueryAlreadyAttached", err)
	}
	if view.Query() != q {
		t.Error("second Attach() replaced the query")
	}
}

func TestCreateView_Columns(t *testing.T) {
	absent := NewCreateView(Table{Name: "v"})
	if cols, ok := absent.Columns(); ok || len(cols) != 0 {
		t.Errorf("absent columns = %v, %v", cols, ok)
	}

	empty := NewCreateViewColumns(Table{Name: "v"}, nil)
	if cols, ok := empty.Columns(); !ok || len(cols) != 0 {
		t.Errorf("empty columns = %v, %v", cols, ok)
	}

	input := []Field{{Name: "a"}}
	view := NewCreateViewColumns(Table{Name: "v"}, input)
	input[0].Name = "changed"
	cols, _ := view.Columns()
	if cols[0].Name != "a" {
		t.Error("constructor did not copy the column list")
	}
	cols[0].Name = "changed"
	if again, _ := view.Columns(); again[0].Name != "a" {
		t.Error("Columns() exposed internal state")
	}
}

func TestCreateView_Validate(t *testing.T) {
	query := &Select{Fields: []Field{{Name: "x"}, {Name: "y"}}, From: Table{Name: "T"}}

	tests := []struct {
		name    string
		view    func() *CreateView
		wantErr string
	}{
		{"no query", func() *CreateView { return NewCreateView(Table{Name: "v"}) }, ErrNoDefiningQuery.Error()},
		{"no name", func() *CreateView {
			v := NewCreateView(Table{})
			_ = v.Attach(query)
			return v
		}, "table name is required"},
		{"aliased", func() *CreateView {
			v := NewCreateView(Table{Name: "v", Alias: "w"})
			_ = v.Attach(query)
			return v
		}, "cannot be aliased"},
		{"column count", func() *CreateView {
			v := NewCreateViewColumns(Table{Name: "v"}, []Field{{Name: "a"}})
			_ = v.Attach(query)
			return v
		}, "declares 1 columns but its query selects 2"},
		{"bad query", func() *CreateView {
			v := NewCreateView(Table{Name: "v"})
			_ = v.Attach(&Select{})
			return v
		}, "defining query"},
		{"valid", func() *CreateView {
			v := NewCreateViewColumns(Table{Name: "v"}, []Field{{Name: "a"}, {Name: "b"}})
			_ = v.Attach(query)
			return v
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.view().Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func newView(columns []Field, renamed bool) *CreateView {
	var v *CreateView
	if renamed {
		v = NewCreateViewColumns(Table{Name: "V"}, columns)
	} else {
		v = NewCreateView(Table{Name: "V"})
	}
	if err := v.Attach(&Select{Fields: []Field{{Name: "x"}, {Name: "y"}}, From: Table{Name: "T"}}); err != nil {
		panic(err)
	}
	return v
}

func TestCreateView_Accept(t *testing.T) {
	columns := []Field{{Name: "a"}, {Name: "b"}}

	tests := []struct {
		name     string
		view     *CreateView
		family   render.Family
		expected string
	}{
		{"postgres rename", newView(columns, true), render.Postgres, "create view V(a, b) as select x, y from T"},
		{"mariadb rename", newView(columns, true), render.MariaDB, "create view V(a, b) as select x, y from T"},
		{"mssql rename", newView(columns, true), render.MSSQL, "create view V(a, b) as select x, y from T"},
		{"sqlite rename", newView(columns, true), render.SQLite, "create view V as select a, b from (select x, y from T) as t(a, b)"},
		{"sqlite no rename", newView(nil, false), render.SQLite, "create view V as select x, y from T"},
		{"postgres empty rename", newView(nil, true), render.Postgres, "create view V as select x, y from T"},
		{"sqlite empty rename", newView([]Field{}, true), render.SQLite, "create view V as select x, y from T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderPart(tt.view, tt.family); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCreateView_Accept_RenameListIsUnqualified(t *testing.T) {
	view := newView([]Field{{Name: "a", Table: "V"}, {Name: "b", Table: "V"}}, true)

	for _, prior := range []bool{true, false} {
		ctx := render.NewContext(render.Postgres).Qualify(prior)
		ctx.Visit(view).Finish()
		if !strings.HasPrefix(ctx.String(), "create view V(a, b)") {
			t.Errorf("prior %v: got %q", prior, ctx.String())
		}
		if ctx.Qualifying() != prior {
			t.Errorf("prior %v: qualify flag not restored", prior)
		}
	}
}

func TestCreateView_Accept_WithoutQueryPanics(t *testing.T) {
	ctx := render.NewContext(render.Postgres)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoDefiningQuery) {
			t.Errorf("panic = %v, want ErrNoDefiningQuery", r)
		}
		if ctx.String() != "" {
			t.Errorf("partial output %q", ctx.String())
		}
	}()
	ctx.Visit(NewCreateView(Table{Name: "v"}))
}

func TestCreateView_Accept_Spans(t *testing.T) {
	ctx := render.NewContext(render.Postgres)
	ctx.Visit(newView([]Field{{Name: "a"}, {Name: "b"}}, true)).Finish()
	result := &QueryResult{SQL: ctx.String(), Spans: ctx.Spans()}

	name, ok := result.Span(render.ClauseCreateViewName)
	if !ok || name != "create view V(a, b)" {
		t.Errorf("name span = %q, %v", name, ok)
	}
	as, ok := result.Span(render.ClauseCreateViewAs)
	if !ok || as != "select x, y from T" {
		t.Errorf("as span = %q, %v", as, ok)
	}
	whole, ok := result.Span(render.ClauseCreateView)
	if !ok || whole != result.SQL {
		t.Errorf("statement span = %q, %v", whole, ok)
	}
	if _, ok := result.Span(render.ClauseDropView); ok {
		t.Error("unexpected DROP_VIEW span")
	}
}

func TestCreateView_Accept_Formatted(t *testing.T) {
	got := renderPart(newView(nil, false), render.MariaDB,
		render.WithFormat(true), render.WithKeywordStyle(render.KeywordsUpper), render.WithNameStyle(render.NamesQuoted))
	expected := "CREATE VIEW `V`\nAS\nSELECT `x`, `y` FROM `T`"
	if got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestDropView_Accept(t *testing.T) {
	tests := []struct {
		name     string
		stmt     *DropView
		expected string
	}{
		{"plain", NewDropView(Table{Name: "v"}, false), "drop view v"},
		{"if exists", NewDropView(Table{Name: "v"}, true), "drop view if exists v"},
		{"schema", NewDropView(Table{Name: "v", Schema: "app"}, true), "drop view if exists app.v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderPart(tt.stmt, render.Postgres); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDropView_Validate(t *testing.T) {
	if err := NewDropView(Table{}, false).Validate(); err == nil {
		t.Error("expected error for unnamed view")
	}
	if err := NewDropView(Table{Name: "v", Alias: "x"}, false).Validate(); err == nil {
		t.Error("expected error for aliased view")
	}
	stmt := NewDropView(Table{Name: "v"}, true)
	if err := stmt.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !stmt.IfExists() || stmt.Target().Name != "v" {
		t.Errorf("accessors returned %v, %v", stmt.IfExists(), stmt.Target())
	}
}
