package main

import (
	"os"

	env "github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wirepack"
	"github.com/wippyai/wirepack/fingerprint"
	"github.com/wippyai/wirepack/schema"
	"github.com/wippyai/wirepack/transcoder"
)

// config holds settings read from the environment.
type config struct {
	Format wirepack.Format `env:"WIREPACK_FORMAT" envDefault:"binary"`
}

func loadConfig() (config, error) {
	return env.ParseAs[config]()
}

// setupLogging installs a development logger on every package when verbose
// is set and returns it. Output goes to stderr so encoded bytes stay clean.
func setupLogging(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	al := zap.NewAtomicLevelAt(zap.DebugLevel)
	ec := zap.NewDevelopmentEncoderConfig()
	logger := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), al))

	transcoder.SetLogger(logger)
	schema.SetLogger(logger)
	fingerprint.SetLogger(logger)
	return logger
}
