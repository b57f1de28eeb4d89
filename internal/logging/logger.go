package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Logger tags every entry with the request id and the operation name.
type Logger struct {
	requestID string
	z         *zap.Logger
}

// NewLogger creates a logger for the request carried by ctx.
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{requestID: requestID, z: zap.L()}
}

// Named returns a logger for background work that has no request.
func Named(name string) *Logger {
	return &Logger{requestID: name, z: zap.L()}
}

func (l *Logger) with(operation string) *zap.Logger {
	return l.z.With(zap.String("request_id", l.requestID), zap.String("operation", operation))
}

func (l *Logger) LogError(operation string, err error) {
	l.with(operation).Error("operation failed", zap.Error(err))
}

func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.with(operation).Error(fmt.Sprintf(format, args...))
}

func (l *Logger) LogInfo(operation string, message string) {
	l.with(operation).Info(message)
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.with(operation).Info(fmt.Sprintf(format, args...))
}

func (l *Logger) LogWarn(operation string, message string) {
	l.with(operation).Warn(message)
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.with(operation).Warn(fmt.Sprintf(format, args...))
}

// Zap exposes the underlying logger with the request fields attached.
func (l *Logger) Zap() *zap.Logger {
	return l.z.With(zap.String("request_id", l.requestID))
}
