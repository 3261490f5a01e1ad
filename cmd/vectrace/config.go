package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplevector/vector"
)

// Output formats accepted by the trace command.
const (
	formatTable = "table"
	formatYAML  = "yaml"
)

var (
	errBadPushes   = errors.New("config: pushes must be >= 0")
	errBadReserve  = errors.New("config: reserve must be >= 0")
	errBadCeiling  = errors.New("config: max_capacity must be >= 0")
	errBadFormat   = errors.New("config: format must be table or yaml")
	errBadLogLevel = errors.New("config: log_level must be debug, info, warn or error")
)

// Config drives the trace command. Zero-valued fields in a file keep
// the defaults; flags override the file.
type Config struct {
	Pushes      int    `yaml:"pushes"`
	Reserve     int    `yaml:"reserve"`
	MaxCapacity int    `yaml:"max_capacity"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Pushes:      32,
		MaxCapacity: vector.DefaultMaxCapacity,
		Format:      formatTable,
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// overrides carries flag values; negative ints and empty strings mean
// "not given".
type overrides struct {
	pushes, reserve, maxCapacity int
	format, logLevel             string
}

// apply writes every given override into c.
func (c *Config) apply(o overrides) {
	if o.pushes >= 0 {
		c.Pushes = o.pushes
	}
	if o.reserve >= 0 {
		c.Reserve = o.reserve
	}
	if o.maxCapacity >= 0 {
		c.MaxCapacity = o.maxCapacity
	}
	if o.format != "" {
		c.Format = o.format
	}
	if o.logLevel != "" {
		c.LogLevel = o.logLevel
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Pushes < 0:
		return errBadPushes
	case c.Reserve < 0:
		return errBadReserve
	case c.MaxCapacity < 0:
		return errBadCeiling
	case c.Format != formatTable && c.Format != formatYAML:
		return errBadFormat
	}
	if _, err := c.levelFilter(); err != nil {
		return err
	}

	return nil
}

// levelFilter maps LogLevel to a go-kit level filter.
func (c Config) levelFilter() (level.Option, error) {
	switch c.LogLevel {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}

	return nil, errBadLogLevel
}

// vectorOptions turns the config into Vector options.
func (c Config) vectorOptions() []vector.Option {
	return []vector.Option{vector.WithMaxCapacity(c.MaxCapacity)}
}
