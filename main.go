package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vimeo/go-movecount/movestats"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("movecount", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "optional YAML config file")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: movecount [-config file.yaml] <games file>\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	path := flags.Arg(0)

	config, err := LoadConfig(*configPath)
	if err != nil {
		logger := newLogger(stderr, zapcore.WarnLevel)
		logger.Error("loading config", zap.String("config", *configPath), zap.Error(err))
		return exitError
	}
	level, _ := config.Level()
	logger := newLogger(stderr, level)
	defer logger.Sync()

	logger.Debug("processing", zap.String("path", path), zap.Int("buckets", config.Buckets))
	summary, err := movestats.ProcessFile(path, config.Buckets, config.Quantiles...)
	if err != nil {
		var rangeErr *movestats.RangeError
		switch {
		case errors.As(err, &rangeErr):
			logger.Error("move-count out of range",
				zap.String("path", path),
				zap.Int("line", rangeErr.Line),
				zap.Int("tokens", rangeErr.Tokens),
				zap.Int("moves", rangeErr.Moves),
				zap.Int("buckets", rangeErr.Buckets),
			)
		case errors.Is(err, movestats.ErrNoData):
			logger.Error("no games in input", zap.String("path", path))
		default:
			logger.Error("processing input", zap.String("path", path), zap.Error(err))
		}
		return exitError
	}
	logger.Info("processed", zap.String("path", path), zap.Int("games", summary.Count))

	summary.PrintReport(stdout)
	if config.Details {
		summary.PrintDetails(stdout)
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
