package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when no files are named. A missing default
// file is not an error.
const DefaultEnvFile = ".env"

// Load parses configuration into v from the process environment, falling
// back to values read from the given .env files. Later files override
// earlier ones and the process environment overrides every file. The
// process environment itself is never modified.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, "ci.env"); err != nil {
//		return err
//	}
func Load[T any](v *T, files ...string) error {
	return LoadWithPrefix(v, "", files...)
}

// LoadWithPrefix works like Load but only considers variables whose names
// start with prefix; struct tags are written without it.
func LoadWithPrefix[T any](v *T, prefix string, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	vars, err := readEnvFiles(files)
	if err != nil {
		return err
	}
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: vars, Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Errorf("failed to load required configuration: %w", err))
	}
}

func readEnvFiles(files []string) (map[string]string, error) {
	vars := make(map[string]string)
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return vars, nil
		}
		files = []string{DefaultEnvFile}
	}

	for _, f := range files {
		values, err := godotenv.Read(f)
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", f, err))
		}
		for k, val := range values {
			vars[k] = val
		}
	}
	return vars, nil
}
