package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/truckerru/backend/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the application logger supporting console and file outputs
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	// Parse log level
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	// Create encoder config for structured JSON logging
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	var logFile *os.File

	// Console output
	if config.Type == "console" || config.Type == "both" || config.Type == "" {
		consoleCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		)
		cores = append(cores, consoleCore)
	}

	// File output
	if config.Type == "file" || config.Type == "both" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = file

		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(file),
			level,
		)
		cores = append(cores, fileCore)
	}

	zapLogger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	logger := &ZapLogger{
		Logger: zapLogger,
		sugar:  zapLogger.Sugar(),
		file:   logFile,
	}

	return logger, nil
}

// InitFromConfig builds the logger from application config and installs
// it as the global logger.
func InitFromConfig(configs *models.Config) (*ZapLogger, error) {
	zapLogger, err := NewZapLogger(configs.Logger)
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(zapLogger)
	return zapLogger, nil
}

// Sugar returns the sugared logger for printf-style logging
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// WithFields returns a logger with additional fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return l.Logger.With(zapFields...)
}

// WithError returns a logger with an error field
func (l *ZapLogger) WithError(err error) *zap.Logger {
	return l.Logger.With(zap.Error(err))
}

// Close flushes buffered entries and closes the log file if open
func (l *ZapLogger) Close() {
	_ = l.Logger.Sync()
	if l.file != nil {
		_ = l.file.Close()
	}
}
