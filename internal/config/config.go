package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

// Game - optional presets for the interactive prompts. Zero values mean
// "ask the player at startup".
type Game struct {
	BoardSize   int    `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"0"`
	PlayerXName string `yaml:"player-x-name" env:"GAME_PLAYER_X_NAME" env-default:""`
	PlayerOName string `yaml:"player-o-name" env:"GAME_PLAYER_O_NAME" env-default:""`
}

// MustLoad - load all configurations from the config.yml file. The file is
// optional for a console game; without it the environment and defaults apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
