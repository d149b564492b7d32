package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.OutputPaths = []string{"stderr"}
	var err error
	L, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// WithComponent returns a logger tagged with a component field for use by
// the store, services and CLI.
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
