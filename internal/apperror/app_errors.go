package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("cell is out of board bounds")
	ErrInvalidBoardSize = errors.New("invalid board size")
)
