package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbosity int

var rootCmd = &cobra.Command{
	Use:     "wordquestgen",
	Short:   "Daily word-puzzle board generator and inspector",
	Version: version,
	Long: `wordquestgen builds, validates, and renders the 4x4 wildcard word-path
boards behind the daily puzzle: deterministic seeded board generation,
offline answer validation against a literal board, and SVG board
rendering for visual inspection.`,
}

// Execute runs the root command; each subcommand registers itself with it
// in its file's init function. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info)")
}

func logf(format string, args ...interface{}) {
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
