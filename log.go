// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import "go.uber.org/zap"

var (
	logger = zap.NewNop()
)

// SetLogger sets the logger, which reports invariant violations right before the panic.
// This function is not thread-safe, so it should be called on program start.
// A nil logger disables the reports.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
