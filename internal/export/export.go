// internal/export/export.go

// Package export writes benchmark results to JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lucasrafaldini/augusto/internal/appconfig"
	"github.com/lucasrafaldini/augusto/internal/benchmark"
	"github.com/lucasrafaldini/augusto/internal/logging"
	"github.com/lucasrafaldini/augusto/internal/util"
)

var (
	nonSlug    = regexp.MustCompile(`[^a-z0-9_]+`)
	dashRepeat = regexp.MustCompile(`-+`)
)

// WriteStats writes a single result to dir as "<operation>-<input>.json" and
// returns the file path.
func WriteStats(dir string, stats benchmark.Stats) (string, error) {
	name := Slugify(stats.Operation() + " " + stats.Input())
	return writeJSON(dir, name, stats)
}

// WriteSuite writes every entry of suite to dir as
// "comparison-<inputs>.json" and returns the file path.
func WriteSuite(dir string, suite *benchmark.Suite) (string, error) {
	inputs := make([]string, 0, suite.Len())
	for _, st := range suite.Results() {
		inputs = append(inputs, st.Input())
	}
	name := Slugify("comparison " + strings.Join(inputs, " "))
	return writeJSON(dir, name, suite)
}

func writeJSON(dir, name string, v any) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = appconfig.DefaultExportDir
	}
	if name == "" {
		name = "results"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding results: %w", err)
	}

	fileName := filepath.Join(dir, name+".json")
	if err := util.WriteFile(fileName, append(data, '\n')); err != nil {
		return "", fmt.Errorf("error writing results to file: %w", err)
	}

	logging.LogEvent("benchmark results written to %s", fileName)
	return fileName, nil
}

// Slugify lowercases s, replaces colons with underscores and collapses every
// other run of non-alphanumeric characters into a single dash.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ":", "_")
	s = nonSlug.ReplaceAllString(s, "-")
	s = dashRepeat.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}
