package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playgrid/tictactoe-console/internal/config"
	"github.com/playgrid/tictactoe-console/internal/transport/console"
)

// RunApp - runs the application: wires the console transport, installs the
// slog-backed game observer and plays one session to completion.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	consoleServer := console.New(logger, &conf.Game, os.Stdin, os.Stdout)
	consoleServer.SetObserver(&gameNotifier{logger: logger})

	if err := consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Game session finished")

	return nil
}

// gameNotifier - the single game observer, reporting state changes through
// the structured log.
type gameNotifier struct {
	logger *slog.Logger
}

func (that *gameNotifier) Update(message string) {
	that.logger.Info(message, "component", "game")
}
