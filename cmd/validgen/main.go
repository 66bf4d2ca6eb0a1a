// Command validgen renders typed record validator builders from YAML
// definitions.
//
// Usage:
//
//	# Write builders for every record in defs.yaml
//	validgen generate -f defs.yaml -o person_validator_gen.go
//
//	# Print to stdout
//	validgen generate -f defs.yaml
//
//	# Report every problem of a definition without writing anything
//	validgen check -f defs.yaml
//
// Configuration is read from VALIDGEN_* environment variables and optional
// .env files passed with --env-file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
