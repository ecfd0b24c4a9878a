// Package config loads render settings for viewql.
//
// Values are layered: defaults, then an optional YAML file, then environment
// variables prefixed with VIEWQL_ (VIEWQL_RENDER_KEYWORDS -> render.keywords).
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/zoobzio/viewql"
	"github.com/zoobzio/viewql/internal/render"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "VIEWQL_"

// Default values.
const (
	DefaultDialect  = "postgres"
	DefaultKeywords = "as_is"
	DefaultNames    = "as_is"
)

// Config selects a dialect and how its output is printed.
type Config struct {
	Dialect string       `koanf:"dialect"`
	Render  RenderConfig `koanf:"render"`
}

// RenderConfig holds output formatting settings.
type RenderConfig struct {
	Keywords string `koanf:"keywords"`
	Names    string `koanf:"names"`
	Format   bool   `koanf:"format"`
}

// Load reads configuration from path and the environment. An empty path skips
// the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect":         DefaultDialect,
		"render.keywords": DefaultKeywords,
		"render.names":    DefaultNames,
		"render.format":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports unknown dialect or style names.
func (c *Config) Validate() error {
	if _, err := c.Family(); err != nil {
		return err
	}
	_, err := c.Options()
	return err
}

// Family parses the configured dialect.
func (c *Config) Family() (render.Family, error) {
	f, err := render.ParseFamily(c.Dialect)
	if err != nil {
		return 0, fmt.Errorf("invalid dialect: %w", err)
	}
	return f, nil
}

// Options converts the render section into renderer options.
func (c *Config) Options() ([]render.Option, error) {
	keywords, err := render.ParseKeywordStyle(c.Render.Keywords)
	if err != nil {
		return nil, fmt.Errorf("invalid render.keywords: %w", err)
	}
	names, err := render.ParseNameStyle(c.Render.Names)
	if err != nil {
		return nil, fmt.Errorf("invalid render.names: %w", err)
	}
	return []render.Option{
		render.WithKeywordStyle(keywords),
		render.WithNameStyle(names),
		render.WithFormat(c.Render.Format),
	}, nil
}

// Renderer returns the configured dialect renderer.
func (c *Config) Renderer() (viewql.Renderer, error) {
	family, err := c.Family()
	if err != nil {
		return nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return viewql.ForFamily(family, opts...)
}
