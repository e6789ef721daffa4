package game

import (
	"fmt"

	"github.com/playgrid/tictactoe-console/internal/apperror"
	"github.com/playgrid/tictactoe-console/internal/entity"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 15

	EmptyCell = ""
)

// Results of an accepted move.
const (
	ResultContinue = "continue"
	ResultWin      = "win"
	ResultDraw     = "draw"
)

// Board is an n×n grid with per-line accumulators. Every mark adds the
// owning player's signed unit value to its row and column accumulators, and
// to the diagonal accumulators when the cell lies on them; an accumulator
// reaching magnitude n means that line is fully owned by one player, which
// keeps win detection O(1) per move.
type Board struct {
	size         int
	grid         [][]string
	rows         []int
	cols         []int
	diagonal     int
	antiDiagonal int
	movesCount   int
}

// NewBoard - creates an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d is not between %d and %d", apperror.ErrInvalidBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	grid := make([][]string, size)
	for row := range grid {
		grid[row] = make([]string, size)
	}

	return &Board{
		size: size,
		grid: grid,
		rows: make([]int, size),
		cols: make([]int, size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Cell - returns the mark at (row, col), or EmptyCell.
func (that *Board) Cell(row, col int) string {
	return that.grid[row][col]
}

// MovesCount - the number of accepted moves, which equals the number of
// occupied cells.
func (that *Board) MovesCount() int {
	return that.movesCount
}

func (that *Board) IsFull() bool {
	return that.movesCount == that.size*that.size
}

// Place - places the player's mark at (row, col) and reports the move
// outcome. A rejected move leaves the board untouched. Win is checked before
// draw, so the move that completes a line while filling the board is a win.
func (that *Board) Place(row, col int, player *entity.Player) (string, error) {
	if err := that.validateMove(row, col); err != nil {
		return "", fmt.Errorf("invalid move: %w", err)
	}

	that.grid[row][col] = player.Mark
	that.movesCount++

	that.rows[row] += player.Value
	that.cols[col] += player.Value
	if row == col {
		that.diagonal += player.Value
	}
	if row+col == that.size-1 {
		that.antiDiagonal += player.Value
	}

	switch {
	case abs(that.rows[row]) == that.size,
		abs(that.cols[col]) == that.size,
		abs(that.diagonal) == that.size,
		abs(that.antiDiagonal) == that.size:
		return ResultWin, nil
	case that.IsFull():
		return ResultDraw, nil
	default:
		return ResultContinue, nil
	}
}

// validateMove - checks bounds first, then occupancy.
func (that *Board) validateMove(row, col int) error {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if that.grid[row][col] != EmptyCell {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
