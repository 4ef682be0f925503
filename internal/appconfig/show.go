package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		d := Default()
		cfg = &d
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode:       %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  No Color:        %v\n", cfg.NoColor)
	fmt.Fprintf(out, "  Progress:        %v\n", cfg.Progress)
	fmt.Fprintf(out, "  Letter Spacing:  %d\n", cfg.LetterSpacing())
	fmt.Fprintf(out, "  Export Dir:      %s\n", cfg.ExportDirectory())
	if path := cfg.LogFilePath(); path != "" {
		fmt.Fprintf(out, "  Log File:        %s\n", path)
	} else {
		fmt.Fprintln(out, "  Log File:        (none)")
	}
}

// DumpConfig pretty-prints the raw configuration struct.
func DumpConfig(out io.Writer, cfg *Config, color bool) {
	prev := pp.ColoringEnabled
	pp.ColoringEnabled = color
	defer func() { pp.ColoringEnabled = prev }()

	_, _ = pp.Fprintln(out, cfg)
}
