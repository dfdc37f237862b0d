/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger forwards to a zap SugaredLogger. The level filter is applied here
// as well as by zap, so SetLevel works even when zap's core is more verbose.
type zapLogger struct {
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to the Logger interface.
func NewZapLogger(l *zap.Logger, level Level) Logger {
	z := &zapLogger{
		level: zap.NewAtomicLevel(),
		sugar: l.Sugar(),
	}
	z.SetLevel(level)
	return z
}

func (z *zapLogger) Debug(format string, args ...interface{}) {
	if z.level.Enabled(zapcore.DebugLevel) {
		z.sugar.Debugf(format, args...)
	}
}

func (z *zapLogger) Info(format string, args ...interface{}) {
	if z.level.Enabled(zapcore.InfoLevel) {
		z.sugar.Infof(format, args...)
	}
}

func (z *zapLogger) Warn(format string, args ...interface{}) {
	if z.level.Enabled(zapcore.WarnLevel) {
		z.sugar.Warnf(format, args...)
	}
}

func (z *zapLogger) Error(format string, args ...interface{}) {
	if z.level.Enabled(zapcore.ErrorLevel) {
		z.sugar.Errorf(format, args...)
	}
}

func (z *zapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		// above fatal: nothing this adapter writes is enabled
		return zapcore.FatalLevel + 1
	}
}
