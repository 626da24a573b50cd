package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"nftcatalog/internal/config"
	"nftcatalog/internal/utils/logger/handlers/slogpretty"
)

// New returns the slog logger for the given environment: local gets a
// pretty colored handler at debug level, dev JSON at debug, prod JSON
// at info.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
