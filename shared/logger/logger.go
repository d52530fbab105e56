package logger

import (
	"io"
	"os"
	"time"

	"hotel/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const productionEnv = "production"

// InitLogger installs a human readable console logger at trace level until SetLogLevel runs.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// SetLogLevel applies the configured level. Production switches to JSON lines tagged with the service.
func SetLogLevel(cfg *config.Config) {
	SetOutput(cfg, os.Stdout)

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("log level set")
}

// SetOutput rebuilds the global logger for the environment, writing to out.
func SetOutput(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env != productionEnv {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("service", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.Server.Env).
		Logger()
}

// ErrorWithStack logs err with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
