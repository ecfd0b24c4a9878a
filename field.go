package viewql

import (
	"fmt"

	"github.com/zoobzio/viewql/internal/types"
)

// TryF creates a field reference, returning an error if the name is not a
// plain SQL identifier.
func TryF(name string) (types.Field, error) {
	if !isValidSQLIdentifier(name) {
		return types.Field{}, fmt.Errorf("invalid field name: %q", name)
	}
	return types.Field{Name: name}, nil
}

// F creates a field reference.
func F(name string) types.Field {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryWithTable prefixes a field with a table name or alias.
func TryWithTable(field types.Field, tableOrAlias string) (types.Field, error) {
	if !isValidSQLIdentifier(tableOrAlias) {
		return types.Field{}, fmt.Errorf("invalid table or alias: %q", tableOrAlias)
	}
	return field.Of(tableOrAlias), nil
}

// WithTable prefixes a field with a table name or alias.
func WithTable(field types.Field, tableOrAlias string) types.Field {
	f, err := TryWithTable(field, tableOrAlias)
	if err != nil {
		panic(err)
	}
	return f
}
