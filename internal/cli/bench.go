// internal/cli/bench.go
package augusto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/lucasrafaldini/augusto/internal/anagram"
	"github.com/lucasrafaldini/augusto/internal/benchmark"
	"github.com/lucasrafaldini/augusto/internal/export"
	"github.com/lucasrafaldini/augusto/internal/wordart"
	"github.com/spf13/cobra"
)

const (
	opAnagram = "Anagram Generation"
	opArt     = "ASCII Art Generation"
)

var benchExport bool

// benchCmd groups the benchmark subcommands.
var benchCmd = &cobra.Command{
	Use:     "bench",
	Aliases: []string{"benchmark", "perf"},
	Short:   "Measure how long an operation takes",
	Long: `The 'bench' command runs an operation repeatedly and reports total time,
average time per run and throughput. Shorter inputs run more iterations.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var benchAnagramCmd = &cobra.Command{
	Use:     "anagram <word>",
	Aliases: []string{"ana"},
	Short: "Benchmark anagram generation for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word := args[0]
		if word == "" {
			return errors.New("input word cannot be empty")
		}
		return reportStats(cmd, measureAnagram(word))
	},
}

var benchArtCmd = &cobra.Command{
	Use:     "art <main> <filler>",
	Aliases: []string{"ascii"},
	Short: "Benchmark block-letter rendering",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mainWord, filler := args[0], args[1]
		if mainWord == "" {
			return errors.New("main word cannot be empty")
		}
		if filler == "" {
			return errors.New("filler word cannot be empty")
		}
		stats := benchmark.Measure(opArt, mainWord+"+"+filler, func() string {
			return wordart.RenderDefault(mainWord, filler)
		})
		return reportStats(cmd, stats)
	},
}

func init() {
	benchCmd.PersistentFlags().BoolVar(&benchExport, "export", false, "write results as JSON to the export directory")
	benchCmd.AddCommand(benchAnagramCmd)
	benchCmd.AddCommand(benchArtCmd)
	rootCmd.AddCommand(benchCmd)
}

// measureAnagram times permutation generation for word.
func measureAnagram(word string) benchmark.Stats {
	return benchmark.MeasureWithSize(opAnagram, word, func() []string {
		return anagram.Permutations(word)
	})
}

// reportStats prints stats in the configured format and exports them when
// requested.
func reportStats(cmd *cobra.Command, stats benchmark.Stats) error {
	out := cmd.OutOrStdout()
	cfg := activeConfig()

	if cfg.JSONMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats); err != nil {
			return fmt.Errorf("error encoding results: %w", err)
		}
	} else {
		fmt.Fprint(out, stats.Format())
	}

	if !benchExport {
		return nil
	}
	path, err := export.WriteStats(cfg.ExportDirectory(), stats)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Results written to %s", path))
	return nil
}
