// internal/cli/compare.go
package augusto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/lucasrafaldini/augusto/internal/benchmark"
	"github.com/lucasrafaldini/augusto/internal/export"
	"github.com/lucasrafaldini/augusto/internal/tui"
	"github.com/spf13/cobra"
)

var compareExport bool

// compareCmd implements 'compare <word>...', which benchmarks anagram
// generation for each word and prints a side-by-side summary.
var compareCmd = &cobra.Command{
	Use:     "compare <word> [word...]",
	Aliases: []string{"comp"},
	Short:   "Compare anagram generation across several words",
	Long: `The 'compare' command benchmarks anagram generation for every word, in the
order given, and prints a comparison of total and average times.

With --progress a spinner is drawn while each word is measured. The redraws
run alongside the timed loop, so those timings read slightly higher than a
plain run. Ctrl+C stops early and prints the words measured so far.`,
	Example: `  augusto compare "cat" "test" "program"
  augusto compare "cat" "test" --progress`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, w := range args {
			if w == "" {
				return errors.New("input word cannot be empty")
			}
		}

		cfg := activeConfig()
		var (
			suite  *benchmark.Suite
			runErr error
		)
		if cfg.Progress {
			suite, runErr = tui.RunCompare(args, measureAnagram, cmd.ErrOrStderr())
			if runErr != nil && !errors.Is(runErr, tui.ErrInterrupted) {
				return runErr
			}
		} else {
			suite = benchmark.NewSuite()
			for _, w := range args {
				suite.Add(measureAnagram(w))
			}
		}

		out := cmd.OutOrStdout()
		if cfg.JSONMode {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(suite); err != nil {
				return fmt.Errorf("error encoding results: %w", err)
			}
		} else {
			fmt.Fprint(out, suite.FormatComparison())
		}

		if compareExport && suite.Len() > 0 {
			path, err := export.WriteSuite(cfg.ExportDirectory(), suite)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Results written to %s", path))
		}
		return runErr
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareExport, "export", false, "write results as JSON to the export directory")
	rootCmd.AddCommand(compareCmd)
}
