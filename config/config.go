// Package config loads the settings shared by the postag commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/postag/codec"
)

// Environment variables that override the YAML file.
const (
	EnvAddr          = "POSTAG_ADDR"
	EnvSerialization = "POSTAG_SERIALIZATION"
	EnvFormat        = "POSTAG_FORMAT"
	EnvEncoding      = "POSTAG_ENCODING"
	EnvLogLevel      = "POSTAG_LOG_LEVEL"
	EnvCORSOrigins   = "POSTAG_CORS_ORIGINS"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	Serialization Serialization `yaml:"serialization"`
	CORS          CORS          `yaml:"cors"`
	Log           Log           `yaml:"log"`
}

// Serialization controls the optional tag codec.
type Serialization struct {
	Enabled  bool   `yaml:"enabled"`
	Format   string `yaml:"format"`   // json, yaml or msgpack
	Encoding string `yaml:"encoding"` // label, name or ordinal
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Log struct {
	Level       string `yaml:"level"` // debug, info, warn or error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr: ":8080",
		Serialization: Serialization{
			Enabled:  true,
			Format:   "json",
			Encoding: "label",
		},
		CORS: CORS{AllowedOrigins: []string{"*"}},
		Log:  Log{Level: "info"},
	}
}

// Load reads path (if non-empty) over the defaults, then applies the
// environment. Fields missing from the file keep their default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from envFile into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv(EnvSerialization); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSerialization, err)
		}
		c.Serialization.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		c.Serialization.Format = v
	}
	if v, ok := os.LookupEnv(EnvEncoding); ok {
		c.Serialization.Encoding = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvCORSOrigins); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

// Validate checks the fields that are parsed later by the commands.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is empty")
	}
	if _, err := codec.ParseFormat(c.Serialization.Format); err != nil {
		return fmt.Errorf("config: serialization.format: %w", err)
	}
	if _, err := codec.ParseEncoding(c.Serialization.Encoding); err != nil {
		return fmt.Errorf("config: serialization.encoding: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// Codec builds the configured codec, or returns nil when serialization is
// disabled.
func (c *Config) Codec() (*codec.Codec, error) {
	if !c.Serialization.Enabled {
		return nil, nil
	}
	f, err := codec.ParseFormat(c.Serialization.Format)
	if err != nil {
		return nil, err
	}
	e, err := codec.ParseEncoding(c.Serialization.Encoding)
	if err != nil {
		return nil, err
	}
	return codec.New(f, e)
}
