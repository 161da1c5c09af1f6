// Package dashboard serves chart specifications for a directory of dataset
// files over HTTP.
package dashboard

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/csviz/csviz-go/pkg/csviz"
)

// Duration is a time.Duration that unmarshals from yaml strings like "30s".
type Duration time.Duration

// UnmarshalYAML decodes the duration from its string form.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config configures the dashboard server.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// DataDir is the directory scanned for dataset files.
	DataDir string `yaml:"data_dir"`
	// StaticDir optionally serves static assets at the root path.
	StaticDir string `yaml:"static_dir"`
	// Delimiter is the field delimiter of the served datasets.
	Delimiter string `yaml:"delimiter"`
	// CacheTTL bounds how long a built specification is reused.
	CacheTTL Duration `yaml:"cache_ttl"`
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8050",
		Delimiter: csviz.DefaultDelimiter,
		CacheTTL:  Duration(30 * time.Second),
	}
}

// LoadConfig reads a yaml configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.CacheTTL < 0 {
		return errors.New("cache_ttl must not be negative")
	}
	if info, err := os.Stat(c.DataDir); err != nil || !info.IsDir() {
		return errors.New("data_dir is not a directory")
	}
	return nil
}
