package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vanilla/pkg/gen"
	"github.com/dmitrymomot/vanilla/pkg/logger"
	"github.com/dmitrymomot/vanilla/pkg/rules"
)

func newCheckCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a definition file without writing code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadDefinition(file)
			if err != nil {
				return err
			}
			if err := gen.Validate(def); err != nil {
				logIssues(cmd.Context(), a, def, file, err)
				return err
			}
			a.log.InfoContext(cmd.Context(), "definition is valid",
				logger.File(file),
				logger.Count("records", len(def.Records)),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", file)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "definition file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// logIssues logs one record per definition problem. Problems inside a
// record also carry the record's draft name.
func logIssues(ctx context.Context, a *app, def gen.Definition, file string, err error) {
	for _, e := range rules.ExtractValidationErrors(err) {
		attrs := []any{logger.File(file), logger.Field(e.Field)}
		if draft, ok := issueRecord(def, e.Field); ok {
			attrs = append(attrs, logger.Record(draft))
		}
		a.log.ErrorContext(ctx, e.Message, attrs...)
	}
}

// issueRecord resolves a path like "records[2].fields[0].name" to the
// draft name of the record it points into.
func issueRecord(def gen.Definition, path string) (string, bool) {
	var i int
	if n, _ := fmt.Sscanf(path, "records[%d]", &i); n != 1 {
		return "", false
	}
	if i < 0 || i >= len(def.Records) || def.Records[i].Draft == "" {
		return "", false
	}
	return def.Records[i].Draft, true
}
