package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/playgrid/tictactoe-console/internal/apperror"
	"github.com/playgrid/tictactoe-console/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerTie = "-"
)

// Observer receives a notification whenever the game state changes: game
// start, every accepted move, and the terminal result.
type Observer interface {
	Update(message string)
}

// Game drives one session between two players. X always moves first; turns
// alternate strictly, and a rejected move keeps the turn with the same
// player.
type Game struct {
	ID      string
	Board   *Board
	Players [2]*entity.Player
	Status  string
	Winner  string

	turn     int
	observer Observer
}

// New - creates a game session on a fresh board. playerX moves first.
func New(boardSize int, playerX, playerO *entity.Player) (*Game, error) {
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:      uuid.NewString(),
		Board:   board,
		Players: [2]*entity.Player{playerX, playerO},
		Status:  StatusOngoing,
	}, nil
}

// SetObserver - installs the optional state-change observer.
func (that *Game) SetObserver(observer Observer) {
	that.observer = observer
}

// CurrentPlayer - the player whose move is awaited.
func (that *Game) CurrentPlayer() *entity.Player {
	return that.Players[that.turn]
}

// MakeTurn - plays the current player's mark at (row, col). On a rejected
// move the error is returned and nothing changes, not even the turn. On a
// win or a draw the game moves to its terminal state and accepts no further
// moves.
func (that *Game) MakeTurn(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	player := that.CurrentPlayer()

	result, err := that.Board.Place(row, col, player)
	if err != nil {
		return err
	}

	switch result {
	case ResultWin:
		that.Status = StatusFinished
		that.Winner = player.Mark
		that.notify(fmt.Sprintf("%s (%s) wins", player.Name, player.Mark))
	case ResultDraw:
		that.Status = StatusFinished
		that.Winner = PlayerTie
		that.notify("game ended in a draw")
	default:
		that.turn = 1 - that.turn
		that.notify(fmt.Sprintf("%s (%s) moved to (%d, %d)", player.Name, player.Mark, row, col))
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsDraw() bool {
	return that.Winner == PlayerTie
}

// WinnerPlayer - the winning player, or nil while the game is ongoing or
// after a draw.
func (that *Game) WinnerPlayer() *entity.Player {
	for _, player := range that.Players {
		if player.Mark == that.Winner {
			return player
		}
	}

	return nil
}

func (that *Game) notify(message string) {
	if that.observer != nil {
		that.observer.Update(message)
	}
}
