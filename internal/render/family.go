package render

import (
	"fmt"
	"strings"
)

// Family identifies the SQL dialect a statement is rendered for.
type Family int

const (
	Postgres Family = iota + 1
	SQLite
	MariaDB
	MSSQL
)

// Families lists every supported dialect family.
var Families = []Family{Postgres, SQLite, MariaDB, MSSQL}

func (f Family) String() string {
	switch f {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	case MariaDB:
		return "mariadb"
	case MSSQL:
		return "mssql"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Valid reports whether f is one of the supported families.
func (f Family) Valid() bool {
	switch f {
	case Postgres, SQLite, MariaDB, MSSQL:
		return true
	default:
		return false
	}
}

// ParseFamily resolves a dialect name. MySQL is accepted as an alias of MariaDB
// and sqlserver as an alias of MSSQL.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "mariadb", "mysql":
		return MariaDB, nil
	case "mssql", "sqlserver":
		return MSSQL, nil
	default:
		return 0, fmt.Errorf("unknown dialect: %q", name)
	}
}

// Quote quotes an identifier using the family's delimiter, doubling any
// embedded closing delimiter.
func (f Family) Quote(name string) string {
	switch f {
	case Postgres, SQLite:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	case MariaDB:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case MSSQL:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		panic(fmt.Sprintf("render: unknown dialect family %s", f))
	}
}

// SupportsViewColumnRename reports whether CREATE VIEW accepts a parenthesized
// column list after the view name. SQLite rejects it at the declaration site.
func SupportsViewColumnRename(f Family) bool {
	switch f {
	case Postgres, MariaDB, MSSQL:
		return true
	case SQLite:
		return false
	default:
		panic(fmt.Sprintf("render: unknown dialect family %s", f))
	}
}
