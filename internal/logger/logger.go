package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.SugaredLogger

// InitLogger initializes the global logger used by the event bus and the
// WebSocket hub.
func InitLogger() {
	config := zap.NewProductionConfig()

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		panic(err)
	}

	Log = l.Sugar()
}

// InitLoggerDev initializes the logger in development mode (readable output).
func InitLoggerDev() {
	config := zap.NewDevelopmentConfig()

	l, err := config.Build()
	if err != nil {
		panic(err)
	}

	Log = l.Sugar()
}

// Sync flushes buffered logs.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
