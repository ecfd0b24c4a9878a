// Package testing provides test utilities for viewql.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/viewql"
)

// TestInstance creates a ViewQL instance for testing.
// Includes users, posts, orders, and products tables.
func TestInstance(t *testing.T) *viewql.ViewQL {
	t.Helper()

	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	// Posts table
	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	project.AddTable(posts)

	// Orders table
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	// Products table
	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	products.AddColumn(dbml.NewColumn("price", "numeric"))
	project.AddTable(products)

	instance, err := viewql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRenders renders stmt with r and compares the SQL.
func AssertRenders(t *testing.T, r viewql.Renderer, stmt viewql.Statement, expected string) *viewql.QueryResult {
	t.Helper()
	result, err := r.Render(stmt)
	if err != nil {
		t.Fatalf("Render failed for %s: %v", r.Family(), err)
	}
	AssertSQL(t, expected, result.SQL)
	return result
}

// AssertSpan checks the text recorded for the first span of clause.
func AssertSpan(t *testing.T, result *viewql.QueryResult, clause viewql.Clause, expected string) {
	t.Helper()
	got, ok := result.Span(clause)
	if !ok {
		t.Errorf("No span recorded for %s in %q", clause, result.SQL)
		return
	}
	if got != expected {
		t.Errorf("Span %s mismatch:\nExpected: %s\nActual:   %s", clause, expected, got)
	}
}

// AssertNoSpan checks that clause was never entered.
func AssertNoSpan(t *testing.T, result *viewql.QueryResult, clause viewql.Clause) {
	t.Helper()
	if got, ok := result.Span(clause); ok {
		t.Errorf("Unexpected span %s: %q", clause, got)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
