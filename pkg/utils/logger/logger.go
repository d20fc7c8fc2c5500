// Package logger provides a global logger for the library
package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/sethvargo/go-envconfig"

	"github.com/evalkit/perfcurves/pkg/config"
)

var (
	Logger *zap.Logger

	initOnce sync.Once
)

func initLogger() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	var envCfg config.LoggerEnvConfig
	if err := envconfig.Process(context.Background(), &envCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to process environment variables for logger")
	}

	logLevel, err := zerolog.ParseLevel(strings.ToLower(envCfg.LogLevel))
	if err != nil {
		log.Warn().Str("LOG_LEVEL", envCfg.LogLevel).Msg("Unknown log level - defaulting to info")
		logLevel = zerolog.InfoLevel
	}

	// Apply the log level globally
	zerolog.SetGlobalLevel(logLevel)

	Logger = zap.Must(zap.NewProduction())
}

// Init initializes the global logger from the environment.
// It sets up zerolog with console output on stderr; LOG_LEVEL picks the
// level. Safe to call more than once.
func Init() {
	initOnce.Do(initLogger)
}

// Sugar returns a sugared logger for easier use
// TODO: replace with zerolog
func Sugar() *zap.SugaredLogger {
	Init()
	return Logger.Sugar()
}
