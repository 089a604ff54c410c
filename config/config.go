package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/wren/exec"
	"github.com/simonhull/firebird-suite/wren/logger"
)

// DefaultPath is the config file looked up in the current directory.
const DefaultPath = "wren.yml"

// EnvPrefix prefixes environment overrides, e.g. WREN_DISPLAY=false.
const EnvPrefix = "WREN"

// ErrNotFound is returned by Load when an explicitly named file is missing.
var ErrNotFound = errors.New("config file not found")

// Config represents wren.yml
type Config struct {
	Display         bool                  `yaml:"display" mapstructure:"display"`
	Spinner         bool                  `yaml:"spinner" mapstructure:"spinner"`
	ShowCommand     bool                  `yaml:"show_command" mapstructure:"show_command"`
	ShowElapsed     bool                  `yaml:"show_elapsed" mapstructure:"show_elapsed"`
	Dir             string                `yaml:"dir,omitempty" mapstructure:"dir"`
	EnvFile         string                `yaml:"env_file,omitempty" mapstructure:"env_file"`
	RefreshInterval time.Duration         `yaml:"refresh_interval" mapstructure:"refresh_interval" validate:"gte=0"`
	Log             logger.Config         `yaml:"log" mapstructure:"log"`
	Tasks           map[string]TaskConfig `yaml:"tasks,omitempty" mapstructure:"tasks" validate:"dive"`
}

// TaskConfig declares a named command
type TaskConfig struct {
	Command     string `yaml:"command" mapstructure:"command" validate:"required"`
	Dir         string `yaml:"dir,omitempty" mapstructure:"dir"`
	Description string `yaml:"description,omitempty" mapstructure:"description"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Display:         true,
		Spinner:         true,
		ShowCommand:     true,
		ShowElapsed:     true,
		RefreshInterval: exec.DefaultRefreshInterval,
		Log: logger.Config{
			Level:  "warn",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("display", d.Display)
	v.SetDefault("spinner", d.Spinner)
	v.SetDefault("show_command", d.ShowCommand)
	v.SetDefault("show_elapsed", d.ShowElapsed)
	v.SetDefault("dir", d.Dir)
	v.SetDefault("env_file", d.EnvFile)
	v.SetDefault("refresh_interval", d.RefreshInterval)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.no_color", d.Log.NoColor)
}

// Load reads configuration from path, or from ./wren.yml when path is
// empty. Only the implicit ./wren.yml may be missing, in which case the
// defaults are used; a missing explicit path is ErrNotFound. Environment
// variables prefixed with WREN_ override file values (WREN_LOG_LEVEL=debug).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
		switch {
		case !missing:
			return nil, fmt.Errorf("reading config file: %w", err)
		case explicit:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads path over the defaults without applying environment
// overrides, so the result can be edited and saved back.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes configuration to a YAML file
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnvFile parses a dotenv file into sorted KEY=VALUE pairs.
func LoadEnvFile(path string) ([]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}

	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env, nil
}

// Environment returns the extra child environment declared by EnvFile.
func (c *Config) Environment() ([]string, error) {
	if c.EnvFile == "" {
		return nil, nil
	}
	return LoadEnvFile(c.EnvFile)
}

// TaskRegistry registers every configured task.
func (c *Config) TaskRegistry() (*exec.TaskRegistry, error) {
	registry := exec.NewTaskRegistry()

	names := make([]string, 0, len(c.Tasks))
	for name := range c.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Tasks[name]
		if err := registry.Register(exec.Task{
			Name:        name,
			Command:     t.Command,
			Dir:         t.Dir,
			Description: t.Description,
		}); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// ExecutorOptions translates the config into executor options.
func (c *Config) ExecutorOptions(stdout io.Writer, log logger.Logger, env []string) *exec.Options {
	return &exec.Options{
		Stdout:          stdout,
		Env:             env,
		Dir:             c.Dir,
		Display:         c.Display,
		ShowCommand:     c.ShowCommand,
		ShowElapsed:     c.ShowElapsed,
		RefreshInterval: c.RefreshInterval,
		Logger:          log,
	}
}
