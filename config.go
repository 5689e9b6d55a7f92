package promptpath

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	configDir           = ".config/promptpath"
	configFileName      = "config.toml"
	localConfigFileName = "config.local.toml"

	// DefaultCodeRoot is the fallback stripping prefix used when no
	// project alias matches.
	DefaultCodeRoot = "~/code"
)

// ProjectMapping maps an absolute path pattern to a short alias.
// The path is kept in the form it was configured in (usually ~-relative)
// because display substitution operates on the ~-collapsed path.
type ProjectMapping struct {
	Path  string `toml:"path"`
	Alias string `toml:"alias"`
}

// Config holds the resolver configuration. It is immutable after load.
type Config struct {
	CodeRoot string           `toml:"code_root"`
	Projects []ProjectMapping `toml:"projects"`
}

// ConfigResult holds the loaded config and any non-fatal warnings.
// Config loading never fails: a broken or missing file degrades to
// defaults so the prompt keeps rendering.
type ConfigResult struct {
	Config   *Config
	Warnings []string
}

// DefaultConfig returns the built-in configuration used when no config
// file exists.
func DefaultConfig() *Config {
	return &Config{CodeRoot: DefaultCodeRoot}
}

// ConfigOption configures LoadConfig.
type ConfigOption func(*configLoader)

type configLoader struct {
	log *slog.Logger
}

// WithConfigLogger sets the logger used for config-load tracing.
func WithConfigLogger(log *slog.Logger) ConfigOption {
	return func(l *configLoader) {
		l.log = log
	}
}

// LoadConfig loads configuration from <home>/.config/promptpath/.
// config.local.toml overrides config.toml: a non-empty local code_root
// wins, and local project entries replace entries with the same path.
// Declaration order is preserved so equal-length alias matches stay
// deterministic (first declared wins).
func LoadConfig(home string, opts ...ConfigOption) *ConfigResult {
	loader := &configLoader{log: NewNopLogger()}
	for _, opt := range opts {
		opt(loader)
	}

	result := &ConfigResult{Config: DefaultConfig()}

	dir := filepath.Join(home, configDir)

	projCfg := loader.load(filepath.Join(dir, configFileName), result)
	localCfg := loader.load(filepath.Join(dir, localConfigFileName), result)

	merged := DefaultConfig()
	for _, cfg := range []*Config{projCfg, localCfg} {
		if cfg == nil {
			continue
		}
		if cfg.CodeRoot != "" {
			merged.CodeRoot = cfg.CodeRoot
		}
		for _, p := range cfg.Projects {
			merged.Projects = upsertMapping(merged.Projects, p)
		}
	}

	result.Config = merged
	return result
}

// load reads one config file, converting a decode failure into a
// warning on result.
func (l *configLoader) load(path string, result *ConfigResult) *Config {
	cfg, err := loadConfigFile(path)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("ignoring %s: %v", filepath.Base(path), err))
		l.log.Warn("ignoring broken config file", LogAttrKeyCategory.Attr(LogCategoryConfig),
			slog.String("path", path), slog.Any("error", err))
		return nil
	}
	if cfg != nil {
		l.log.Debug("loaded config file", LogAttrKeyCategory.Attr(LogCategoryConfig),
			slog.String("path", path))
	}
	return cfg
}

// upsertMapping replaces an existing entry with the same path in place,
// otherwise appends. Keeps declaration order stable.
func upsertMapping(mappings []ProjectMapping, m ProjectMapping) []ProjectMapping {
	for i, existing := range mappings {
		if existing.Path == m.Path {
			mappings[i] = m
			return mappings
		}
	}
	return append(mappings, m)
}

func loadConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
