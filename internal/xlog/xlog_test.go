// Copyright 2020 Aleksandr Demakin. All rights reserved.

package xlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	a := assert.New(t)
	for _, verbose := range []bool{false, true} {
		var buf bytes.Buffer
		logger, closeFn := New(Options{Verbose: verbose, Stderr: &buf})
		logger.Debug("debug message")
		logger.Info("info message")
		closeFn()
		a.Contains(buf.String(), "INFO")
		a.Contains(buf.String(), "info message")
		a.Equal(verbose, bytes.Contains(buf.Bytes(), []byte("debug message")))
	}
}

func TestNewFile(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "efloat.log")
	logger, closeFn := New(Options{File: path})
	logger.Warn("to file")
	closeFn()
	data, err := os.ReadFile(path)
	if a.NoError(err) {
		a.Contains(string(data), "WARN")
		a.Contains(string(data), "to file")
	}
}
