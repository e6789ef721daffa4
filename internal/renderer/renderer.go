package renderer

import (
	"fmt"
	"strings"

	"github.com/playgrid/tictactoe-console/internal/game"
)

// Render - projects the board into its fixed-width console layout: column
// headers, row index prefix, " | " cell separators and "---+---" rules.
// Read-only, no error paths.
func Render(board *game.Board) string {
	var out strings.Builder

	size := board.Size()

	out.WriteString("\n   ")
	for col := 0; col < size; col++ {
		// two-digit column numbers eat one padding space to keep alignment
		if col+1 < 10 {
			fmt.Fprintf(&out, "%d   ", col)
		} else {
			fmt.Fprintf(&out, "%d  ", col)
		}
	}
	out.WriteString("\n")

	for row := 0; row < size; row++ {
		if row < 10 {
			fmt.Fprintf(&out, "%d  ", row)
		} else {
			fmt.Fprintf(&out, "%d ", row)
		}

		for col := 0; col < size; col++ {
			mark := board.Cell(row, col)
			if mark == game.EmptyCell {
				mark = " "
			}

			out.WriteString(mark)
			if col+1 < size {
				out.WriteString(" | ")
			}
		}
		out.WriteString("\n")

		if row+1 < size {
			out.WriteString("  ")
			for col := 0; col < size; col++ {
				out.WriteString("---")
				if col+1 < size {
					out.WriteString("+")
				}
			}
			out.WriteString("\n")
		}
	}
	out.WriteString("\n")

	return out.String()
}
