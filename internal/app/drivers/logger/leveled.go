package logger

import (
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// leveledLogger routes retryablehttp's own logging into zap.
type leveledLogger struct {
	sugar *zap.SugaredLogger
}

func NewLeveledLogger(log *zap.Logger) retryablehttp.LeveledLogger {
	return &leveledLogger{sugar: log.Named("retryablehttp").Sugar()}
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
