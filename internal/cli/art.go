// internal/cli/art.go
package augusto

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lucasrafaldini/augusto/internal/wordart"
	"github.com/spf13/cobra"
)

// artCmd implements 'art <main> <filler> [spacing]', which draws the main
// word in 5x5 block letters painted with the filler word.
var artCmd = &cobra.Command{
	Use:     "art <main> <filler> [spacing]",
	Aliases: []string{"ascii"},
	Short:   "Draw a word in block letters filled with another word",
	Long: `The 'art' command draws <main> using 5x5 block letters. Every ink cell is
painted with the next character of <filler>, which repeats as needed.
The optional [spacing] is the number of blank columns between letters and
defaults to the configured spacing.`,
	Example: `  augusto art "LUXO" "LIXO"
  augusto art "RUST" "code" 2`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mainWord, filler := args[0], args[1]
		if mainWord == "" {
			return errors.New("main word cannot be empty")
		}
		if filler == "" {
			return errors.New("filler word cannot be empty")
		}

		spacing := activeConfig().LetterSpacing()
		if len(args) == 3 {
			s, err := parseSpacing(args[2])
			if err != nil {
				return err
			}
			spacing = s
		}

		slog.Info("rendering art", "main", mainWord, "filler", filler, "spacing", spacing)
		fmt.Fprint(cmd.OutOrStdout(), wordart.Render(mainWord, filler, spacing))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artCmd)
}

func parseSpacing(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid spacing value %q: spacing must be a non-negative integer", raw)
	}
	return n, nil
}
