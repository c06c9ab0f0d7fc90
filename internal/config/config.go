package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/connect-n/internal/apperror"
)

var classicBoard = Board{Columns: 7, Rows: 6, Players: 2, WinningCount: 4}

const usageHeader = "Connect 4\n\nDrop pieces into columns until someone lines up enough of them.\n"

type Config struct {
	LogLevel string `yaml:"log-level" env:"CONNECT_LOG_LEVEL" env-default:"info" env-description:"log level: debug, info, warn or error" validate:"oneof=debug info warn error"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Columns      int `yaml:"columns" env:"CONNECT_COLUMNS" env-description:"number of columns" validate:"gt=0"`
	Rows         int `yaml:"rows" env:"CONNECT_ROWS" env-description:"number of rows" validate:"gt=0"`
	Players      int `yaml:"players" env:"CONNECT_PLAYERS" env-description:"number of players" validate:"gt=0"`
	WinningCount int `yaml:"winning-count" env:"CONNECT_WINNING_COUNT" env-description:"pieces in a line needed to win" validate:"gt=0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file at path, or only the environment when the file does not exist.
// Board settings missing from both keep the classic 7x6 board; an explicit zero is rejected.
func Load(path string) (*Config, error) {
	// cleanenv fills env-default only into zero fields, which would hide an explicit 0
	config := &Config{Board: classicBoard}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyFlags - overrides loaded values with command line flags. It returns flag.ErrHelp
// after printing usage to output when help was requested.
func (that *Config) ApplyFlags(args []string, output io.Writer) error {
	flags := flag.NewFlagSet("connect-n", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.IntVar(&that.Board.Columns, "columns", that.Board.Columns, "number of columns")
	flags.IntVar(&that.Board.Rows, "rows", that.Board.Rows, "number of rows")
	flags.IntVar(&that.Board.Players, "players", that.Board.Players, "number of players")
	flags.IntVar(&that.Board.WinningCount, "winning-count", that.Board.WinningCount, "pieces in a line needed to win")
	flags.StringVar(&that.LogLevel, "log-level", that.LogLevel, "log level: debug, info, warn or error")

	header := usageHeader
	flags.Usage = cleanenv.FUsage(output, that, &header, flags.PrintDefaults)

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("could not parse flags: %w", err)
	}

	return that.Validate()
}

// Validate - rejects non-positive board dimensions and unknown log levels.
func (that *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfiguration, err)
	}

	return nil
}
