package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-console/internal/entity"
	"github.com/playgrid/tictactoe-console/internal/game"
)

func TestRender(t *testing.T) {
	t.Run("3x3 layout with marks", func(t *testing.T) {
		// Given: a board with X at (0,0) and O at (1,1)
		board, err := game.NewBoard(3)
		require.NoError(t, err)
		_, err = board.Place(0, 0, entity.NewPlayer("Alice", entity.PlayerX))
		require.NoError(t, err)
		_, err = board.Place(1, 1, entity.NewPlayer("Bob", entity.PlayerO))
		require.NoError(t, err)

		// When: rendering the board
		out := Render(board)

		// Then: the layout matches the fixed-width console format
		expected := "\n   0   1   2   \n" +
			"0  X |   |  \n" +
			"  ---+---+---\n" +
			"1    | O |  \n" +
			"  ---+---+---\n" +
			"2    |   |  \n" +
			"\n"
		assert.Equal(t, expected, out)
	})

	t.Run("Separator count grows with the board", func(t *testing.T) {
		board, err := game.NewBoard(5)
		require.NoError(t, err)

		out := Render(board)

		// n rows need n-1 separator lines with n-1 plus signs each
		assert.Equal(t, 4, strings.Count(out, "  ---+---+---+---+---\n"))
		assert.Equal(t, 5, strings.Count(out, " | ")/4)
	})

	t.Run("Double-digit indexes keep the prefix width", func(t *testing.T) {
		board, err := game.NewBoard(12)
		require.NoError(t, err)

		out := Render(board)

		lines := strings.Split(out, "\n")
		// header, then alternating cell and separator lines
		assert.True(t, strings.HasPrefix(lines[1], "   0   1   "))
		assert.True(t, strings.Contains(out, "\n11 "))
	})
}
