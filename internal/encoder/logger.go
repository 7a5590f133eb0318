package encoder

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger replaces the encoder's logger. Passing nil restores the no-op
// logger. Not safe to call concurrently with Encode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
