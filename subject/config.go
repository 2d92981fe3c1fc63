package subject

import (
	"context"
	"log/slog"

	"github.com/amp-labs/amp-truth/envutil"
)

// Config controls the ambient behavior of assertions. It never changes
// whether an assertion passes.
type Config struct {
	// FailureLevel is the level at which failures are logged.
	FailureLevel slog.Level
}

// LoadConfig reads the configuration from the environment (or from
// envutil overrides in ctx). TRUTH_LOG_FAILURES=true raises failure logging
// from debug to warn.
func LoadConfig(ctx context.Context) Config {
	cfg := Config{FailureLevel: slog.LevelDebug}

	if envutil.Bool(ctx, "TRUTH_LOG_FAILURES", envutil.Default(false)).ValueOrElse(false) {
		cfg.FailureLevel = slog.LevelWarn
	}

	return cfg
}
