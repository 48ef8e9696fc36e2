package cmd

import (
	"fmt"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/spf13/cobra"

	"github.com/crossplay/wordquest/pkg/board"
)

var (
	renderBoard string
	renderOut   string
)

const (
	cellSize   = 100
	boardSize  = cellSize * board.Size
	canvasSize = boardSize + 2*cellMargin
	cellMargin = 20
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a 4x4 board to an SVG file, with wildcards highlighted",
	Long: `render draws a row-major board string as a 4x4 grid of tiles, highlighting
the two wildcard tiles, for visual inspection of generator output.

Example:
  wordquestgen render --board tarae*oros*sotvi --out board.svg`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderBoard, "board", "", "16-character row-major board string")
	renderCmd.Flags().StringVar(&renderOut, "out", "board.svg", "output SVG file path")
	renderCmd.MarkFlagRequired("board")
}

func runRender(cmd *cobra.Command, args []string) error {
	b, err := board.ParseRowMajor(renderBoard)
	if err != nil {
		return fmt.Errorf("invalid --board: %w", err)
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOut, err)
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(canvasSize, canvasSize)
	canvas.Rect(0, 0, canvasSize, canvasSize, "fill:#1a1a2e")

	for _, pos := range b.Positions() {
		x := cellMargin + pos.Col*cellSize
		y := cellMargin + pos.Row*cellSize

		tile := b.Tile(pos)
		fill := "fill:#2c3e50;stroke:#ecf0f1;stroke-width:2"
		if tile.Wildcard {
			fill = "fill:#e67e22;stroke:#ecf0f1;stroke-width:3"
		}
		canvas.Rect(x, y, cellSize, cellSize, fill)

		label := strings.ToUpper(string(tile.Letter))
		if tile.Wildcard {
			label = "*"
		}
		canvas.Text(x+cellSize/2, y+cellSize/2+10, label, "text-anchor:middle;font-size:40px;fill:#ecf0f1;font-family:monospace")
	}

	canvas.End()
	return nil
}
