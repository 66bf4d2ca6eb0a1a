package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vanilla/pkg/config"
	"github.com/dmitrymomot/vanilla/pkg/logger"
)

const envPrefix = "VALIDGEN_"

type appConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Header    string `env:"HEADER"`
}

// app is the state shared by subcommands once the root pre-run completed.
type app struct {
	cfg appConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		a        app
		envFiles []string
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "validgen",
		Short: "Generate typed record validator builders",
		Long: `validgen reads YAML definitions mapping draft structs onto validated
target structs and writes Go builders that require one validator per field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadWithPrefix(&a.cfg, envPrefix, envFiles...); err != nil {
				return err
			}
			log, err := newLogger(a.cfg, verbose, cmd)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, ".env files to read configuration from")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newGenerateCmd(&a), newCheckCmd(&a))
	return root
}

func newLogger(cfg appConfig, verbose bool, cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithCommand(cmd.Name()),
		logger.WithAttr(logger.Component("validgen")),
	}
	if verbose {
		opts = append(opts, logger.WithVerbose())
	}
	return logger.New(opts...), nil
}
