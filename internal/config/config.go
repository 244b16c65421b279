// Package config handles the todo configuration file: the known contexts and
// which of them is active.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the default configuration location.
const EnvConfigPath = "TODO_CONFIG"

var (
	// ErrUnknownContext is returned when a context name is not configured.
	ErrUnknownContext = errors.New("unknown context")

	// ErrNoActiveContext is returned when no context is marked active.
	ErrNoActiveContext = errors.New("no active context")
)

// Context is a named folder of todo lists with its own editor and timezone.
type Context struct {
	Name           string `toml:"name" json:"name" yaml:"name"`
	IDE            string `toml:"ide" json:"ide" yaml:"ide"`
	Timezone       string `toml:"timezone" json:"timezone" yaml:"timezone"`
	FolderLocation string `toml:"folder_location" json:"folder_location" yaml:"folder_location"`
}

// String renders the context as a block for `config get-contexts --full`.
func (c Context) String() string {
	return fmt.Sprintf("--- Context ---\nname: %s\nide: %s\ntimezone: %s\nfolder location: %s",
		c.Name, c.IDE, c.Timezone, c.FolderLocation)
}

// Location returns the context's timezone. An empty timezone means local
// time.
func (c Context) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("context %q: invalid timezone %q: %w", c.Name, c.Timezone, err)
	}
	return loc, nil
}

// Config is the whole configuration file.
type Config struct {
	ActiveContext string    `toml:"active_ctx_name" json:"active_ctx_name" yaml:"active_ctx_name"`
	Contexts      []Context `toml:"ctxs" json:"ctxs" yaml:"ctxs"`
}

// Context returns the context called name.
func (c *Config) Context(name string) (Context, error) {
	for _, ctx := range c.Contexts {
		if ctx.Name == name {
			return ctx, nil
		}
	}
	return Context{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownContext, name, strings.Join(c.Names(), ", "))
}

// Active returns the active context.
func (c *Config) Active() (Context, error) {
	if strings.TrimSpace(c.ActiveContext) == "" {
		return Context{}, ErrNoActiveContext
	}
	return c.Context(c.ActiveContext)
}

// SetActive switches the active context. The name must already be
// configured.
func (c *Config) SetActive(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("context name is required")
	}
	if _, err := c.Context(name); err != nil {
		return err
	}
	c.ActiveContext = name
	return nil
}

// AddContext appends ctx to the configuration.
func (c *Config) AddContext(ctx Context) error {
	if strings.TrimSpace(ctx.Name) == "" {
		return fmt.Errorf("context name is required")
	}
	if strings.TrimSpace(ctx.FolderLocation) == "" {
		return fmt.Errorf("context %q: folder location is required", ctx.Name)
	}
	if _, err := c.Context(ctx.Name); err == nil {
		return fmt.Errorf("context %q already exists", ctx.Name)
	}
	if _, err := ctx.Location(); err != nil {
		return err
	}
	c.Contexts = append(c.Contexts, ctx)
	return nil
}

// Names returns the configured context names in file order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Contexts))
	for _, ctx := range c.Contexts {
		names = append(names, ctx.Name)
	}
	return names
}

// Validate checks that the active context, when set, is configured and that
// context names are unique.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Contexts))
	for _, ctx := range c.Contexts {
		if strings.TrimSpace(ctx.Name) == "" {
			return fmt.Errorf("context without a name")
		}
		if seen[ctx.Name] {
			return fmt.Errorf("context %q is defined twice", ctx.Name)
		}
		seen[ctx.Name] = true
	}
	if c.ActiveContext != "" && !seen[c.ActiveContext] {
		return fmt.Errorf("active context: %w %q", ErrUnknownContext, c.ActiveContext)
	}
	return nil
}

// Load loads the configuration from the resolved default location.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(ResolveConfigPath(""))
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields an empty configuration.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Exists reports whether a configuration file is present at path.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// ResolveConfigPath resolves the effective config path: the explicit path,
// then $TODO_CONFIG, then DefaultPath.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env
	}
	return DefaultPath()
}

// DefaultPath returns ~/.todo when that legacy file exists, otherwise the
// XDG-style ~/.config/todo/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.toml")
	}

	legacy := filepath.Join(home, ".todo")
	if Exists(legacy) {
		return legacy
	}
	return filepath.Join(home, ".config", "todo", "config.toml")
}
