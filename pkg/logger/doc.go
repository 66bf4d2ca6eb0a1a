// Package logger builds *slog.Logger values for the validgen tooling from a
// set of functional options, and provides attribute helpers that keep key
// names consistent across commands.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it in ContextHandler, which runs registered
// ContextExtractor callbacks on every record. Output defaults to text on
// os.Stderr at INFO level.
//
// # Usage
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithCommand("generate"),
//	)
//	log.Info("rendered", logger.File(out), logger.Count("records", n))
//
// # Error Handling
//
// ParseFormat and ParseLevel return errors wrapping ErrInvalidFormat and
// ErrInvalidLevel. WithFormat panics with ErrInvalidFormat, since an unknown
// format is a programming error. Error and Errors produce empty attributes
// for nil errors, which slog drops.
package logger
