// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultLogger = zap.NewNop()
	mu            sync.Mutex
)

// InitLogger replaces the default logger. Debug mode logs colored console
// lines from debug level up, otherwise JSON lines from info level up.
func InitLogger(debug bool) error {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	config.EncoderConfig.MessageKey = "message"

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger

	return nil
}

// Logger returns the default zap logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	return defaultLogger
}

// SugarLogger returns the default logger in its sugared form.
func SugarLogger() *zap.SugaredLogger {
	return Logger().Sugar()
}

// Flush flushes any buffered log entries. Applications should take care to call before exiting.
func Flush() {
	_ = Logger().Sync()
}

// Debug method output debug level log.
func Debug(args ...interface{}) {
	SugarLogger().Debug(args...)
}

// Debugf method output debug level log.
func Debugf(format string, v ...interface{}) {
	SugarLogger().Debugf(format, v...)
}

// Debugw method output debug level log with key-value pairs.
func Debugw(msg string, keysAndValues ...interface{}) {
	SugarLogger().Debugw(msg, keysAndValues...)
}

// Info method output info level log.
func Info(args ...interface{}) {
	SugarLogger().Info(args...)
}

// Infof method output info level log.
func Infof(format string, v ...interface{}) {
	SugarLogger().Infof(format, v...)
}

// Infow method output info level log with key-value pairs.
func Infow(msg string, keysAndValues ...interface{}) {
	SugarLogger().Infow(msg, keysAndValues...)
}

// Warn method output warning level log.
func Warn(args ...interface{}) {
	SugarLogger().Warn(args...)
}

// Warnf method output warning level log.
func Warnf(format string, v ...interface{}) {
	SugarLogger().Warnf(format, v...)
}

// Warnw method output warning level log with key-value pairs.
func Warnw(msg string, keysAndValues ...interface{}) {
	SugarLogger().Warnw(msg, keysAndValues...)
}

// Error method output error level log.
func Error(args ...interface{}) {
	SugarLogger().Error(args...)
}

// Errorf method output error level log.
func Errorf(format string, v ...interface{}) {
	SugarLogger().Errorf(format, v...)
}

// Errorw method output error level log with key-value pairs.
func Errorw(msg string, keysAndValues ...interface{}) {
	SugarLogger().Errorw(msg, keysAndValues...)
}

// Fatal method output fatal level log and exits.
func Fatal(args ...interface{}) {
	SugarLogger().Fatal(args...)
}

// Fatalf method output fatal level log and exits.
func Fatalf(format string, v ...interface{}) {
	SugarLogger().Fatalf(format, v...)
}
