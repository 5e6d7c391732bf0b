package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	atom = zap.NewAtomicLevel()
)

func init() {
	log = createLogger()
}

func createLogger() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atom,
	))

	if os.Getenv("DEBUG") == "true" {
		atom.SetLevel(zap.DebugLevel)
	}

	return logger
}

// SetDebug enables debug level logging
func SetDebug() {
	atom.SetLevel(zap.DebugLevel)
}

// Silence disables all log output
func Silence() {
	log = zap.NewNop()
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Debugf(template string, args ...interface{}) {
	log.Sugar().Debugf(template, args...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Infof(template string, args ...interface{}) {
	log.Sugar().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	log.Sugar().Warnf(template, args...)
}

func Error(err error) {
	log.Error(err.Error())
}

func Errorf(template string, args ...interface{}) {
	log.Sugar().Errorf(template, args...)
}
