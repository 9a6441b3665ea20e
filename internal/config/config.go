// Package config loads, validates and saves the ppd configuration file.
//
// The global file lives at ~/.ppd/config.yaml (PPD_HOME moves the directory,
// PPD_CONFIG points at the file directly). A project-local .ppd/config.yaml is
// shallow-merged on top of it, and PPD_LOG_LEVEL / PPD_LOG_FORMAT override the
// logging section last.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/ppd-dev/ppd/internal/logging"
	"github.com/ppd-dev/ppd/internal/tui/resizable"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedVersions is the schema constraint Validate accepts.
const supportedVersions = "^1.0.0"

// ErrUnsupportedVersion is returned when the config schema version is
// missing, malformed or outside the supported range.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Default values.
const (
	defaultLogLevel    = "info"
	defaultPageWidth   = 60
	defaultPaneHeight  = 20
	defaultMinWidth    = 20
	defaultMinHeight   = 5
	defaultRevealRatio = 0.382
	defaultWheelStep   = 3
	defaultDemoCount   = 100
	defaultDebounce    = 200 * time.Millisecond
)

// Config is the full configuration.
type Config struct {
	Version   string          `yaml:"version"`
	List      ListConfig      `yaml:"list"`
	Resizable ResizableConfig `yaml:"resizable"`
	Items     ItemsConfig     `yaml:"items"`
	Logging   LoggingConfig   `yaml:"logging"`

	configPath string
}

// ListConfig tunes the selectable list.
type ListConfig struct {
	Selectable     bool          `yaml:"selectable"`
	PagePadding    int           `yaml:"page_padding"`
	ScrollDebounce time.Duration `yaml:"scroll_debounce"`
	RevealRatio    float64       `yaml:"reveal_ratio"`
	WheelStep      int           `yaml:"wheel_step"`
}

// ResizableConfig tunes the pane around the list. Sides accepts every form
// of the resize option: a bool, a [left, right, top, bottom] list, or a
// mapping of side names.
type ResizableConfig struct {
	Sides      resizable.Spec `yaml:"sides"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	MinWidth   int            `yaml:"min_width"`
	MinHeight  int            `yaml:"min_height"`
	BorderSize int            `yaml:"border_size"`
}

// ItemsConfig selects the item source.
type ItemsConfig struct {
	Files     []string `yaml:"files,omitempty"`
	DemoCount int      `yaml:"demo_count"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		List: ListConfig{
			Selectable:     true,
			ScrollDebounce: defaultDebounce,
			RevealRatio:    defaultRevealRatio,
			WheelStep:      defaultWheelStep,
		},
		Resizable: ResizableConfig{
			Sides:     resizable.Tuple(false, true, false, true),
			Width:     defaultPageWidth,
			Height:    defaultPaneHeight,
			MinWidth:  defaultMinWidth,
			MinHeight: defaultMinHeight,
		},
		Items: ItemsConfig{DemoCount: defaultDemoCount},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: logging.FormatConsole,
		},
	}
}

// New returns the configuration from the global config file, falling back
// to defaults when the file is missing or unreadable. Environment overrides
// are applied either way.
func New() *Config {
	cfg := DefaultConfig()
	path, err := GetConfigPath()
	if err == nil {
		cfg.configPath = path
		if loadErr := cfg.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			cfg = DefaultConfig()
			cfg.configPath = path
		}
	}
	cfg.applyEnvOverrides()
	return cfg
}

// Load reads the config file at ConfigPath over the current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes the configuration to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ConfigPath returns the file the configuration is loaded from and saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Validate checks the schema version and value ranges.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}

	var errs []error
	if c.List.PagePadding < 0 {
		errs = append(errs, fmt.Errorf("list.page_padding must not be negative, got %d", c.List.PagePadding))
	}
	if c.List.ScrollDebounce < 0 {
		errs = append(errs, fmt.Errorf("list.scroll_debounce must not be negative, got %s", c.List.ScrollDebounce))
	}
	if c.List.RevealRatio < 0 || c.List.RevealRatio > 1 {
		errs = append(errs, fmt.Errorf("list.reveal_ratio must be within [0, 1], got %g", c.List.RevealRatio))
	}
	if c.Resizable.MinWidth < 0 || c.Resizable.MinHeight < 0 {
		errs = append(errs, errors.New("resizable minimum sizes must not be negative"))
	}
	if c.Resizable.Sides.Kind() == resizable.SpecMalformed {
		errs = append(errs, errors.New("resizable.sides is malformed; expected a bool, a list of bools or a mapping of side names"))
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, c.Logging.Format))
	}
	return errors.Join(errs...)
}

func validateVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: version is not set", ErrUnsupportedVersion)
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(parsed) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}

// applyEnvOverrides applies PPD_LOG_LEVEL and PPD_LOG_FORMAT.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PPD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PPD_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}
