package logger

import (
	"os"
	"time"

	"arena/config"
	"arena/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// ErrorWithStack logs err together with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. Production switches to plain JSON lines.
func SetLogLevel(config *config.Config) {
	if config.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	if config.Server.LogLevel == "" {
		zerolog.SetGlobalLevel(defaultLevel)
		log.Info().Str("loglevel", defaultLevel.String()).Msg("Environment has no log level set up, using default.")

		return
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = defaultLevel
		log.Warn().Str("loglevel", config.Server.LogLevel).Msg("Unknown log level, using default.")
	}

	zerolog.SetGlobalLevel(level)
}
