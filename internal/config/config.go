package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

// MarkWidth is the width of a board cell label, so every mark takes the same room.
const MarkWidth = 2

var (
	ErrEmptyMark    = errors.New("player mark is empty")
	ErrMarkWidth    = errors.New("player mark must be exactly two characters")
	ErrSameMarks    = errors.New("players must have different marks")
	ErrUnknownLevel = errors.New("unknown log level")
)

var supportedLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Seed     int64  `yaml:"seed" env:"SEED" env-default:"0"`

	Player1Name string `yaml:"player1-name" env:"PLAYER1_NAME"`
	Player1Mark string `yaml:"player1-mark" env:"PLAYER1_MARK" env-default:"XX"`
	Player2Name string `yaml:"player2-name" env:"PLAYER2_NAME"`
	Player2Mark string `yaml:"player2-mark" env:"PLAYER2_MARK" env-default:"OO"`
}

type Player struct {
	Name string
	Mark string
}

// MustLoad - load configuration from the yml file, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if fileExists(path) {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (that *Config) FirstPlayer() Player {
	return Player{Name: that.Player1Name, Mark: that.Player1Mark}
}

func (that *Config) SecondPlayer() Player {
	return Player{Name: that.Player2Name, Mark: that.Player2Mark}
}

func (that *Config) Validate() error {
	first, second := that.Player1Mark, that.Player2Mark

	if err := validateMark(first); err != nil {
		return fmt.Errorf("player 1: %w", err)
	}

	if err := validateMark(second); err != nil {
		return fmt.Errorf("player 2: %w", err)
	}

	if first == second {
		return fmt.Errorf("%w: %s", ErrSameMarks, first)
	}

	for _, level := range supportedLevels {
		if that.LogLevel == level {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnknownLevel, that.LogLevel)
}

func validateMark(mark string) error {
	if strings.TrimSpace(mark) == "" {
		return ErrEmptyMark
	}

	if utf8.RuneCountInString(mark) != MarkWidth {
		return fmt.Errorf("%w: %q", ErrMarkWidth, mark)
	}

	return nil
}
