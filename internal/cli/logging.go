package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger writing to stderr so stdout stays clean
// for command output and the live UI.
func newLogger(stderr io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(writerSyncer{stderr}),
		level,
	)
	return zap.New(core)
}

type writerSyncer struct {
	io.Writer
}

func (writerSyncer) Sync() error { return nil }
