package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vanilla/pkg/gen"
	"github.com/dmitrymomot/vanilla/pkg/logger"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		file   string
		output string
		header string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render builders for a definition file",
		Long: `Render one <Draft>ValidatorBuilder per record of the definition file.

Examples:
  validgen generate -f defs.yaml -o person_validator_gen.go
  validgen generate -f defs.yaml --header "Copyright 2026 Acme"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("header") {
				header = a.cfg.Header
			}
			return generate(cmd.Context(), a, file, output, header, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file")
	cmd.Flags().StringVarP(&output, "output", "o", "-", `output file, "-" for stdout`)
	cmd.Flags().StringVar(&header, "header", "", "comment placed above the generated code marker (default $VALIDGEN_HEADER)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func generate(ctx context.Context, a *app, file, output, header string, stdout io.Writer) error {
	start := time.Now()
	log := a.log.With(logger.File(file))

	def, err := loadDefinition(file)
	if err != nil {
		return err
	}

	src, err := gen.Source(def, gen.WithHeader(header))
	if err != nil {
		logIssues(ctx, a, def, file, err)
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if output == "-" {
		if _, err := stdout.Write(src); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.InfoContext(ctx, "generated builders",
		logger.Package(def.Package),
		logger.Count("records", len(def.Records)),
		logger.Count("bytes", len(src)),
		logger.Duration(time.Since(start)),
		"output", output,
	)
	return nil
}

func loadDefinition(file string) (gen.Definition, error) {
	f, err := os.Open(file)
	if err != nil {
		return gen.Definition{}, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()

	return gen.Load(f)
}
