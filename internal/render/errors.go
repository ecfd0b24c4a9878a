package render

import "fmt"

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// ClauseMismatchError reports an unbalanced clause stack. It is raised as a
// panic: a QueryPart that leaves clauses unbalanced is a defect, not a runtime
// condition.
type ClauseMismatchError struct {
	Ended Clause // clause passed to End; zero when raised by Finish
	Open  Clause // innermost open clause; zero when the stack is empty
}

func (e *ClauseMismatchError) Error() string {
	switch {
	case e.Ended != 0 && e.Open == 0:
		return fmt.Sprintf("render: end(%s) without matching start", e.Ended)
	case e.Ended != 0:
		return fmt.Sprintf("render: end(%s) while %s is open", e.Ended, e.Open)
	default:
		return fmt.Sprintf("render: %s still open at finish", e.Open)
	}
}
