package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crossplay/wordquest/internal/dictionary"
	"github.com/crossplay/wordquest/pkg/board"
	"github.com/crossplay/wordquest/pkg/notation"
	"github.com/crossplay/wordquest/pkg/validation"
)

var (
	valBoard      string
	valAnswers    string
	valDictionary string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the Validation Pipeline against a literal board and answer list",
	Long: `validate runs the Validation Pipeline against a row-major board string
and a comma-separated answer list, printing each answer's outcome and
the resulting wildcard notation. Useful for exercising a specific
scenario from the command line without starting the HTTP server.

Example:
  wordquestgen validate --board tarae*oros*sotvi --answers vea,roost,aortas`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&valBoard, "board", "", "16-character row-major board string")
	validateCmd.Flags().StringVar(&valAnswers, "answers", "", "comma-separated answer list, in submission order")
	validateCmd.Flags().StringVar(&valDictionary, "dictionary", "dictionary.txt", "path to the newline-delimited word list")
	validateCmd.MarkFlagRequired("board")
	validateCmd.MarkFlagRequired("answers")
}

func runValidate(cmd *cobra.Command, args []string) error {
	b, err := board.ParseRowMajor(valBoard)
	if err != nil {
		return fmt.Errorf("invalid --board: %w", err)
	}

	dict, err := dictionary.Load(valDictionary)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	var answers []string
	for _, a := range strings.Split(valAnswers, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			answers = append(answers, a)
		}
	}

	report := validation.Validate(b, dict, answers)

	for _, a := range report.Answers {
		if a.Valid {
			fmt.Printf("%-12s valid   score=%d\n", a.Word, a.Score)
		} else {
			fmt.Printf("%-12s invalid\n", a.Word)
		}
	}

	display := notation.Render(report.Constraint)
	fmt.Printf("wildcard 1: %s\n", display.First)
	fmt.Printf("wildcard 2: %s\n", display.Second)
	return nil
}
