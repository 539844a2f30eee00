// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package xlog builds the zap logger used by the efloat command.
package xlog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configure the logger.
type Options struct {
	// Verbose enables the debug level.
	Verbose bool
	// File is a path of a rotated log file. Logs go to Stderr if empty.
	File string
	// Stderr replaces os.Stderr, if set.
	Stderr io.Writer
}

// New returns a console logger. The returned func flushes and closes the output.
func New(opts Options) (*zap.Logger, func()) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Verbose {
		level.SetLevel(zap.DebugLevel)
	}
	var (
		out     zapcore.WriteSyncer
		closeFn = func() {}
	)
	switch {
	case opts.File != "":
		w := fileWriter(opts.File)
		out = zapcore.AddSync(w)
		closeFn = func() { _ = w.Close() }
	case opts.Stderr != nil:
		out = zapcore.AddSync(opts.Stderr)
	default:
		out = zapcore.Lock(os.Stderr)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), out, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		CallerKey:     "line",
		LevelKey:      "level",
		MessageKey:    "message",
		TimeKey:       "time",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeTime: func(t time.Time, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(t.Format("2006-01-02 15:04:05.999"))
		},
		EncodeLevel: func(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(strings.ToTitle(level.String()))
		},
		EncodeCaller: func(caller zapcore.EntryCaller, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString("[" + caller.TrimmedPath() + "]")
		},
		EncodeDuration:   zapcore.SecondsDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

func fileWriter(path string) *timberjack.Logger {
	return &timberjack.Logger{
		Filename:         path,
		MaxBackups:       7,
		MaxSize:          50, // megabytes
		MaxAge:           7,  // days
		Compression:      "none",
		LocalTime:        true,
		RotationInterval: 24 * time.Hour,
		BackupTimeFormat: "2006-01-02-15-04-05",
	}
}
