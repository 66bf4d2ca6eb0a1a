// Package config loads configuration structs from environment variables
// and optional .env files.
//
// Parsing is delegated to github.com/caarlos0/env/v11 using struct tags;
// .env files are read with github.com/joho/godotenv without touching the
// process environment, so tests can load files in parallel.
//
// # Usage
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.LoadWithPrefix(&cfg, "VALIDGEN_"); err != nil {
//	    return err
//	}
//
// Precedence, lowest first: envDefault tags, .env files in the order given,
// the process environment.
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrReadingEnvFile and
// ErrNilPointer and can be compared with errors.Is. MustLoad panics with the
// same error.
package config
