package config

import (
	"fmt"
	"os"
	"path/filepath"

	"filechooser/internal/errors"
	"filechooser/internal/filter"
	"filechooser/pkg/types"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the configuration directory.
const AppName = "filechooser"

// Config represents the application configuration structure.
// It defines what the chooser lists, which filters it offers and how it logs.
type Config struct {
	Browse  BrowseConfig      `yaml:"browse"`
	Filters []types.FilterDef `yaml:"filters" validate:"dive"`
	Mimes   []string          `yaml:"mimes" validate:"dive,required"`
	Detail  int               `yaml:"detail" validate:"min=0,max=2"` // Filter label verbosity
	Theme   string            `yaml:"theme" validate:"omitempty,theme"`
	Log     LogConfig         `yaml:"log"`
}

// BrowseConfig controls directory listings.
type BrowseConfig struct {
	StartDir       string   `yaml:"start_dir"`                           // Empty means the home directory
	ShowHidden     bool     `yaml:"show_hidden"`                         // List dot entries and allow creating them
	IgnoreReadOnly bool     `yaml:"ignore_read_only"`                    // Allow read-only targets in dir and save modes
	Ignore         []string `yaml:"ignore" validate:"dive,glob_pattern"` // Names hidden from listings
	Watch          bool     `yaml:"watch"`                               // Reload when the directory changes
}

// LogConfig controls the logger.
type LogConfig struct {
	Debug  bool   `yaml:"debug"`
	Format string `yaml:"format" validate:"omitempty,log_format"`
	File   string `yaml:"file"`
}

// DefaultPath returns $XDG_CONFIG_HOME/filechooser/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(DefaultPath())
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Fields missing from the file keep their defaults.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Browse.Ignore = []string{"lost+found"}
	cfg.Browse.Watch = true

	cfg.Filters = []types.FilterDef{}
	cfg.Mimes = []string{filter.AnyMime}
	cfg.Detail = 1
	cfg.Theme = "default"

	cfg.Log.Format = "text"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}
	return newValidator().validate(c)
}

// Specs returns the configured extension filters followed by the MIME
// filters that survive trimming. With neither configured the result is a
// single "*/*" filter.
func (c *Config) Specs() ([]filter.Spec, error) {
	specs, err := filter.SpecsFromDefs(c.Filters)
	if err != nil {
		return nil, err
	}
	if len(c.Mimes) > 0 || len(specs) == 0 {
		specs = append(specs, filter.SpecsFromMimes(c.Mimes)...)
	}
	return specs, nil
}
