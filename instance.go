package viewql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/viewql/internal/types"
)

// ViewQL validates table and field references against a DBML schema.
type ViewQL struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> field -> column
}

// NewFromDBML creates a new ViewQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*ViewQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	v := &ViewQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		v.tables[table.Name] = table
		v.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			v.fields[table.Name][col.Name] = col
		}
	}

	return v, nil
}

// Project returns the schema the instance validates against.
func (v *ViewQL) Project() *dbml.Project {
	return v.project
}

// validateTable checks if a table exists in the schema.
func (v *ViewQL) validateTable(name string) error {
	if _, ok := v.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// validateField checks if a field exists in any table in the schema, or in
// the given table when one is named.
func (v *ViewQL) validateField(table, field string) error {
	if table != "" {
		if _, ok := v.fields[table][field]; !ok {
			return fmt.Errorf("field '%s' not found in table '%s'", field, table)
		}
		return nil
	}
	for _, tableFields := range v.fields {
		if _, ok := tableFields[field]; ok {
			return nil
		}
	}
	return fmt.Errorf("field '%s' not found in schema", field)
}

// TryT creates a validated reference to a schema table.
func (v *ViewQL) TryT(name string, alias ...string) (types.Table, error) {
	if err := v.validateTable(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return TryT(name, alias...)
}

// T creates a validated reference to a schema table.
func (v *ViewQL) T(name string, alias ...string) types.Table {
	t, err := v.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryV creates a reference to a new view. The name must not collide with a
// schema table.
func (v *ViewQL) TryV(name string) (types.Table, error) {
	if _, ok := v.tables[name]; ok {
		return types.Table{}, fmt.Errorf("invalid view: '%s' is a table in the schema", name)
	}
	return TryT(name)
}

// V creates a reference to a new view.
func (v *ViewQL) V(name string) types.Table {
	t, err := v.TryV(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a validated field reference. A "table.field" name is checked
// against that table and keeps the prefix.
func (v *ViewQL) TryF(name string) (types.Field, error) {
	table, field := "", name
	if dot := strings.LastIndexByte(name, '.'); dot != -1 {
		table, field = name[:dot], name[dot+1:]
	}
	if err := v.validateField(table, field); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	f, err := TryF(field)
	if err != nil {
		return types.Field{}, err
	}
	if table != "" {
		return f.Of(table), nil
	}
	return f, nil
}

// F creates a validated field reference.
func (v *ViewQL) F(name string) types.Field {
	f, err := v.TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Column creates a rename-list entry for a view. View columns are new names,
// so only identifier syntax is checked.
func (*ViewQL) Column(name string) types.Field {
	return F(name)
}

// isValidSQLIdentifier checks if a string is a valid SQL identifier.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	return true
}
