package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv exports the variables of the .env file at path. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// MustLoadDotEnv is LoadDotEnv that panics on an unreadable or malformed file.
func MustLoadDotEnv(path string) {
	if err := LoadDotEnv(path); err != nil {
		panic(err)
	}
}
