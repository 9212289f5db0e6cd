package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/vinst/pkg/verilog"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "VINST_CONFIG"

// Config stores persistent user settings.
type Config struct {
	Indent        string   `yaml:"indent"`
	ErrorMarker   string   `yaml:"error_marker"`
	UpperInstance *bool    `yaml:"upper_instance,omitempty"`
	Extensions    []string `yaml:"extensions"`
	IndexPath     string   `yaml:"index_path"`
}

// Default returns the built-in settings.
func Default() *Config {
	c := &Config{}
	c.Validate()
	return c
}

// Validate fills unset fields with defaults and normalizes extensions to
// lower case with a leading dot.
func (c *Config) Validate() {
	defaults := verilog.DefaultRenderOptions()
	if c.Indent == "" {
		c.Indent = defaults.Indent
	}
	if c.ErrorMarker == "" {
		c.ErrorMarker = defaults.ErrorMarker
	}
	if c.UpperInstance == nil {
		upper := defaults.UpperInstance
		c.UpperInstance = &upper
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".v", ".sv", ".vh", ".svh"}
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
	if c.IndexPath == "" {
		c.IndexPath = defaultIndexPath()
	}
}

// RenderOptions returns the template settings.
func (c *Config) RenderOptions() verilog.RenderOptions {
	opts := verilog.DefaultRenderOptions()
	opts.Indent = c.Indent
	opts.ErrorMarker = c.ErrorMarker
	if c.UpperInstance != nil {
		opts.UpperInstance = *c.UpperInstance
	}
	return opts
}

// IsSource reports whether path has one of the configured HDL extensions.
func (c *Config) IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Path returns the config file location: $VINST_CONFIG, else
// <user config dir>/vinst/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(dir, "vinst", "config.yaml"), nil
}

func defaultIndexPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".vinst", "index.db")
	}
	return filepath.Join(dir, "vinst", "index.db")
}

// Load reads the config at path. An empty path means Path(). A missing file
// gives the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.Validate()
	return &c, nil
}

// Save writes c to path, creating the parent directory.
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
