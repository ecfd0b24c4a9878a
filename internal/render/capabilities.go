package render

// Capabilities describes the DDL features supported by a dialect.
type Capabilities struct {
	ViewColumnRename  bool // CREATE VIEW v(a, b) AS ...
	DerivedColumnList bool // (SELECT ...) AS t(a, b)
	DropViewIfExists  bool // DROP VIEW IF EXISTS
}
