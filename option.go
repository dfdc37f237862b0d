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

package colprofile

import (
	"io"

	"github.com/rulego/colprofile/logger"
	"github.com/rulego/colprofile/types"
	"go.uber.org/zap"
)

// Option modifies the default behaviour of Colprofile.
type Option func(*Colprofile)

// WithConfig replaces the whole configuration, e.g. one read with types.LoadConfig.
func WithConfig(cfg types.Config) Option {
	return func(s *Colprofile) {
		s.config = cfg
	}
}

// WithParallelism sets how many columns are profiled concurrently.
//
// Example:
//
//	cp := colprofile.New(colprofile.WithParallelism(runtime.NumCPU()))
func WithParallelism(n int) Option {
	return func(s *Colprofile) {
		s.config.Parallelism = n
	}
}

// WithChecks appends quality checks evaluated by Check.
func WithChecks(checks ...types.Check) Option {
	return func(s *Colprofile) {
		s.config.Checks = append(s.config.Checks, checks...)
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Colprofile) {
		s.log = log
	}
}

// WithZapLogger logs through zap at the configured level.
func WithZapLogger(l *zap.Logger) Option {
	return func(s *Colprofile) {
		level, err := logger.ParseLevel(s.config.LogLevel)
		s.log = logger.NewZapLogger(l, level)
		if err != nil {
			s.log.Warn("%v, falling back to %s", err, level)
		}
	}
}

// WithLogLevel sets the log level.
//
// Example:
//
//	cp := colprofile.New(colprofile.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(s *Colprofile) {
		s.config.LogLevel = level.String()
		if s.log != nil {
			s.log.SetLevel(level)
		}
	}
}

// WithLogOutput writes logs to output at level.
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(s *Colprofile) {
		s.config.LogLevel = level.String()
		s.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog disables all log output.
func WithDiscardLog() Option {
	return func(s *Colprofile) {
		s.log = logger.NewDiscardLogger()
	}
}
