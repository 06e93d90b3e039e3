package shared

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Input struct {
		Path string `yaml:"path"` // history export to analyze when no argument is given
	} `yaml:"input"`

	Report struct {
		Format    string `yaml:"format"`    // "text"|"json"|"html"
		Locale    string `yaml:"locale"`    // "ko"|"en"
		Color     string `yaml:"color"`     // "auto"|"always"|"never"
		Normalize bool   `yaml:"normalize"` // trim + NFC codes before counting
	} `yaml:"report"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Report.Format = "text"
	c.Report.Locale = "ko"
	c.Report.Color = "auto"
	c.Logging.Format = "text"
	c.Logging.Level = "warn"
	return c
}

// LoadConfig applies defaults, then the YAML file at path (if any), then
// environment overrides. A named file that cannot be read or parsed is an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse yaml: %w", err)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("DUPCODES_INPUT"); v != "" {
		c.Input.Path = v
	}
	if v := os.Getenv("DUPCODES_FORMAT"); v != "" {
		c.Report.Format = v
	}
	if v := os.Getenv("DUPCODES_LOCALE"); v != "" {
		c.Report.Locale = v
	}
	if v := os.Getenv("DUPCODES_COLOR"); v != "" {
		c.Report.Color = v
	}
	if v := os.Getenv("DUPCODES_NORMALIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Report.Normalize = b
		}
	}
	if v := os.Getenv("DUPCODES_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("DUPCODES_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c, nil
}
