// internal/cli/anagram.go
package augusto

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/lucasrafaldini/augusto/internal/anagram"
	"github.com/lucasrafaldini/augusto/internal/wordart"
	"github.com/spf13/cobra"
)

var anagramColumns bool

// anagramCmd implements 'anagram <word>', which prints every distinct
// rearrangement of the word's letters.
var anagramCmd = &cobra.Command{
	Use:     "anagram <word>",
	Aliases: []string{"ana"},
	Short:   "Generate every distinct anagram of a word",
	Long: `The 'anagram' command generates all permutations of the word's characters,
removes duplicates, and prints them in lexicographic order.`,
	Example: `  augusto anagram "cat"
  augusto anagram "cat" --columns
  augusto anagram "cat" --jsonMode`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnagram(cmd, args[0])
	},
}

func init() {
	anagramCmd.Flags().BoolVar(&anagramColumns, "columns", false, "print anagrams as vertical columns")
	rootCmd.AddCommand(anagramCmd)
}

// anagramResult is the JSON shape printed in JSON mode.
type anagramResult struct {
	Word     string   `json:"word"`
	Count    int      `json:"count"`
	Anagrams []string `json:"anagrams"`
}

func runAnagram(cmd *cobra.Command, word string) error {
	if word == "" {
		return errors.New("input word cannot be empty")
	}

	results := anagram.Unique(anagram.Permutations(word))
	slog.Info("anagrams generated", "word", word, "unique", len(results))

	out := cmd.OutOrStdout()
	cfg := activeConfig()
	if cfg.JSONMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(anagramResult{Word: word, Count: len(results), Anagrams: results})
	}

	if anagramColumns {
		fmt.Fprintln(out, wordart.Columns(results))
	} else {
		for _, r := range results {
			fmt.Fprintln(out, r)
		}
	}

	summary := color.New(color.FgCyan).SprintfFunc()
	fmt.Fprintln(out, summary("%d unique anagrams of %q", len(results), word))
	return nil
}
