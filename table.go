package viewql

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/types"
)

// TryT creates a table or view reference, returning an error if the name or
// alias is not a plain SQL identifier.
func TryT(name string, alias ...string) (types.Table, error) {
	if !isValidSQLIdentifier(name) {
		return types.Table{}, fmt.Errorf("invalid table name: %q", name)
	}

	t := types.Table{Name: name}
	if len(alias) > 0 {
		if len(alias) > 1 {
			return types.Table{}, fmt.Errorf("only one alias allowed")
		}
		if !isValidSQLIdentifier(alias[0]) {
			return types.Table{}, fmt.Errorf("invalid table alias: %q", alias[0])
		}
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a table or view reference.
func T(name string, alias ...string) types.Table {
	t, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TrySchemaT creates a schema-qualified table or view reference.
func TrySchemaT(schema, name string) (types.Table, error) {
	if !isValidSQLIdentifier(schema) {
		return types.Table{}, fmt.Errorf("invalid schema name: %q", schema)
	}
	t, err := TryT(name)
	if err != nil {
		return types.Table{}, err
	}
	return t.InSchema(schema), nil
}

// SchemaT creates a schema-qualified table or view reference.
func SchemaT(schema, name string) types.Table {
	t, err := TrySchemaT(schema, name)
	if err != nil {
		panic(err)
	}
	return t
}
