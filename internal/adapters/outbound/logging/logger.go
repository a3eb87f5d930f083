package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/truestock/truestock/internal/domain"
)

// Rotation defaults for the log file.
const (
	defaultMaxSizeMB  = 64
	defaultMaxBackups = 7
)

// New builds a logger writing to w. Console format uses the development
// encoder, json the production one. verbose forces debug level. When
// cfg.File is set, entries are also written as JSON to a rotating file.
func New(cfg domain.LogConfig, w io.Writer, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = lvl
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case domain.LogFormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case domain.LogFormatConsole, "":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	if cfg.File != "" {
		core = zapcore.NewTee(core, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotatingFile(cfg)),
			level,
		))
	}
	return zap.New(core, zap.AddCaller()), nil
}

func rotatingFile(cfg domain.LogConfig) *lumberjack.Logger {
	maxSize, maxBackups := cfg.MaxSizeMB, cfg.MaxBackups
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     7,
	}
}
