package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

type Config struct {
	LogLevel string          `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board           `yaml:"board"`
	Players  []entity.Player `yaml:"players"`
}

// Board.Size has no env-default: cleanenv would replace an explicit 0 with it.
type Board struct {
	Size int `yaml:"size" env:"BOARD_SIZE"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the yaml file at path and applies env overrides. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{
		Board: Board{Size: tictactoe.DefaultBoardSize},
	}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.setPlayerDefaults()

	return config, nil
}

// Validate - checks values that cleanenv cannot check by itself.
func (that *Config) Validate() error {
	if _, ok := logLevels[that.LogLevel]; !ok {
		return fmt.Errorf("%w: %q, expected debug, info, warn or error", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}

func (that *Config) setPlayerDefaults() {
	if len(that.Players) == 0 {
		that.Players = entity.DefaultPlayers()
		return
	}

	for i := range that.Players {
		if that.Players[i].Color == "" {
			that.Players[i].Color = entity.DefaultColor
		}
	}
}
