package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/playgrid/tictactoe-console/internal/apperror"
	"github.com/playgrid/tictactoe-console/internal/config"
	"github.com/playgrid/tictactoe-console/internal/entity"
	"github.com/playgrid/tictactoe-console/internal/game"
	"github.com/playgrid/tictactoe-console/internal/renderer"
)

var ErrMalformedMove = errors.New("move must be two integers: row col")

const (
	defaultPlayerXName = "Player 1"
	defaultPlayerOName = "Player 2"
)

// Server runs one interactive game session over a line-oriented console.
// The reader and writer are injected so tests can script a whole game.
type Server struct {
	logger   *slog.Logger
	conf     *config.Game
	observer game.Observer

	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, conf *config.Game, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:  logger,
		conf:    conf,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// SetObserver - forwards the optional state-change observer to the game.
func (that *Server) SetObserver(observer game.Observer) {
	that.observer = observer
}

// Start - prompts for the session parameters and plays the game to its
// terminal state. A board size outside the allowed range is a startup
// failure and is returned as an error; everything mid-game is recoverable.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("component", "console")

	boardSize, err := that.promptBoardSize()
	if err != nil {
		return err
	}

	playerX := entity.NewPlayer(that.promptName("Enter Player 1 name (X): ", that.conf.PlayerXName, defaultPlayerXName), entity.PlayerX)
	playerO := entity.NewPlayer(that.promptName("Enter Player 2 name (O): ", that.conf.PlayerOName, defaultPlayerOName), entity.PlayerO)

	session, err := game.New(boardSize, playerX, playerO)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if that.observer != nil {
		session.SetObserver(that.observer)
	}

	log.Info("game session started", "game_id", session.ID, "board_size", boardSize)

	fmt.Fprintf(that.out, "\n--- Tic Tac Toe (%s vs %s) ---\n", playerX.Name, playerO.Name)

	return that.play(ctx, session, log)
}

// play - the turn loop. The same player is re-prompted after any rejected
// move; turns switch only inside game.MakeTurn.
func (that *Server) play(ctx context.Context, session *game.Game, log *slog.Logger) error {
	for !session.IsFinished() {
		if ctx.Err() != nil {
			log.Info("game session canceled", "game_id", session.ID)
			return nil
		}

		fmt.Fprint(that.out, renderer.Render(session.Board))

		current := session.CurrentPlayer()
		fmt.Fprintf(that.out, "%s (%s), enter row and col: ", current.Name, current.Mark)

		line, ok := that.readLine()
		if !ok {
			log.Info("input closed, abandoning game", "game_id", session.ID)
			fmt.Fprintln(that.out, "\nGame abandoned.")
			return nil
		}

		row, col, err := parseMove(line)
		if err == nil {
			err = session.MakeTurn(row, col)
		}

		if err != nil {
			log.Debug("move rejected", "game_id", session.ID, "input", line, "error", err)
			fmt.Fprintln(that.out, "Invalid move. Try again.")
			continue
		}
	}

	fmt.Fprint(that.out, renderer.Render(session.Board))

	if session.IsDraw() {
		fmt.Fprintln(that.out, "It's a draw.")
		return nil
	}

	winner := session.WinnerPlayer()
	fmt.Fprintf(that.out, "%s (%s) wins!\n", winner.Name, winner.Mark)

	return nil
}

// promptBoardSize - reads the board size, preferring the configured preset.
// Either way the size must be within the allowed range.
func (that *Server) promptBoardSize() (int, error) {
	size := that.conf.BoardSize

	if size == 0 {
		fmt.Fprintf(that.out, "Enter board size n (%d - %d): ", game.MinBoardSize, game.MaxBoardSize)

		line, ok := that.readLine()
		if !ok {
			return 0, fmt.Errorf("%w: no input", apperror.ErrInvalidBoardSize)
		}

		parsed, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidBoardSize, strings.TrimSpace(line))
		}

		size = parsed
	}

	if size < game.MinBoardSize || size > game.MaxBoardSize {
		return 0, fmt.Errorf("%w: %d is not between %d and %d", apperror.ErrInvalidBoardSize, size, game.MinBoardSize, game.MaxBoardSize)
	}

	return size, nil
}

// promptName - reads a player name, preferring the configured preset and
// falling back to a default on blank input.
func (that *Server) promptName(prompt, preset, fallback string) string {
	if preset != "" {
		return preset
	}

	fmt.Fprint(that.out, prompt)

	line, ok := that.readLine()
	if !ok {
		return fallback
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return fallback
	}

	return name
}

func (that *Server) readLine() (string, bool) {
	if !that.scanner.Scan() {
		return "", false
	}

	return that.scanner.Text(), true
}

// parseMove - parses "row col" as two whitespace-separated integers.
// Anything else is a recoverable invalid move.
func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrMalformedMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: got %q", ErrMalformedMove, line)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: got %q", ErrMalformedMove, line)
	}

	return row, col, nil
}
