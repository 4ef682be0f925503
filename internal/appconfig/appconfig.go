// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigName is the base name searched for when no --config is given.
	DefaultConfigName = "augusto"
	// DefaultSpacing is the gap between letters for the art command.
	DefaultSpacing = 1
	// DefaultExportDir is where benchmark JSON files are written.
	DefaultExportDir = "augustoData/benchmarks"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool   `json:"debug"`
	JSONMode   bool   `json:"jsonMode"`
	LogFile    string `json:"logFile,omitempty"`
	Spacing    int    `json:"spacing"`
	Progress   bool   `json:"progress"`
	ExportDir  string `json:"exportDir,omitempty"`
	NoColor    bool   `json:"noColor"`
	ConfigPath string `json:"-"`
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Spacing:   DefaultSpacing,
		ExportDir: DefaultExportDir,
	}
}

// LetterSpacing returns the configured gap between letters. Negative values
// fall back to DefaultSpacing.
func (c Config) LetterSpacing() int {
	if c.Spacing < 0 {
		return DefaultSpacing
	}
	return c.Spacing
}

// ExportDirectory returns the directory for exported results, applying a
// default if not set.
func (c Config) ExportDirectory() string {
	if dir := strings.TrimSpace(c.ExportDir); dir != "" {
		return dir
	}
	return DefaultExportDir
}

// LogFilePath returns the trimmed log file path. Empty means no file logging.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "debug":     { "type": "boolean" },
    "jsonMode":  { "type": "boolean" },
    "logFile":   { "type": "string" },
    "spacing":   { "type": "integer", "minimum": 0 },
    "progress":  { "type": "boolean" },
    "exportDir": { "type": "string" },
    "noColor":   { "type": "boolean" }
  },
  "additionalProperties": false
}`

// Validate checks a JSON configuration document against the config schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("could not parse configuration: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// ValidateFile reads path and validates it. A missing file is reported as an
// error wrapping os.ErrNotExist.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no configuration file found at %q: %w", path, err)
		}
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("config file %q: %w", path, err)
	}
	return nil
}
