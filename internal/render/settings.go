package render

import (
	"fmt"
	"strings"
)

// KeywordStyle controls how keywords are cased on output.
type KeywordStyle int

const (
	KeywordsAsIs KeywordStyle = iota
	KeywordsLower
	KeywordsUpper
)

// NameStyle controls whether identifiers are quoted.
type NameStyle int

const (
	NamesAsIs NameStyle = iota
	NamesQuoted
)

// Settings is the formatting policy applied by a Context.
type Settings struct {
	Keywords KeywordStyle
	Names    NameStyle
	Format   bool // newline at format separators instead of a space
}

// Option configures Settings.
type Option func(*Settings)

// WithKeywordStyle sets the keyword casing policy.
func WithKeywordStyle(style KeywordStyle) Option {
	return func(s *Settings) { s.Keywords = style }
}

// WithNameStyle sets the identifier quoting policy.
func WithNameStyle(style NameStyle) Option {
	return func(s *Settings) { s.Names = style }
}

// WithFormat enables or disables formatted (multi-line) output.
func WithFormat(format bool) Option {
	return func(s *Settings) { s.Format = format }
}

// NewSettings applies opts over the defaults.
func NewSettings(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ParseKeywordStyle resolves as_is, lower or upper.
func ParseKeywordStyle(name string) (KeywordStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "as_is":
		return KeywordsAsIs, nil
	case "lower":
		return KeywordsLower, nil
	case "upper":
		return KeywordsUpper, nil
	default:
		return 0, fmt.Errorf("unknown keyword style: %q", name)
	}
}

// ParseNameStyle resolves as_is or quoted.
func ParseNameStyle(name string) (NameStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "as_is":
		return NamesAsIs, nil
	case "quoted":
		return NamesQuoted, nil
	default:
		return 0, fmt.Errorf("unknown name style: %q", name)
	}
}
