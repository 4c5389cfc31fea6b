/*
Copyright 2024 Forge.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log builds the fi-controller manager's logr.Logger over zap,
// flag-compatible with ControllerManagerRunOptions' --log-level and
// --log-format flags.
package log

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	logzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// LogLevel is the --log-level flag value.
type LogLevel string

// Format is the --log-format flag value.
type Format string

const (
	// DebugLevel is the most verbose level.
	DebugLevel LogLevel = "debug"
	// InfoLevel is the default level.
	InfoLevel LogLevel = "info"
	// ErrorLevel logs only errors.
	ErrorLevel LogLevel = "error"

	FormatJSON    Format = "JSON"
	FormatConsole Format = "Console"
)

var (
	// AllLogLevels lists the accepted --log-level values, used both to
	// validate flag input and to render its usage string.
	AllLogLevels = []LogLevel{DebugLevel, InfoLevel, ErrorLevel}
	// AllLogFormats lists the accepted --log-format values, used both to
	// validate flag input and to render its usage string.
	AllLogFormats = []Format{FormatJSON, FormatConsole}
)

func setCommonEncoderConfigOptions(encoderConfig *zapcore.EncoderConfig) {
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
}

// NewZapLogger builds the fi-controller process logger from the resolved
// --log-level/--log-format flag values.
func NewZapLogger(level LogLevel, format Format) (logr.Logger, error) {
	var opts []logzap.Opts

	var zapLevel zapcore.LevelEnabler
	switch level {
	case DebugLevel:
		zapLevel = zap.DebugLevel
	case ErrorLevel:
		zapLevel = zap.ErrorLevel
	case "", InfoLevel:
		zapLevel = zap.InfoLevel
	default:
		return logr.Logger{}, fmt.Errorf("invalid log level %q, must be one of %v", level, AllLogLevels)
	}
	opts = append(opts, logzap.Level(zapLevel))

	switch format {
	case FormatJSON:
		opts = append(opts, logzap.JSONEncoder(setCommonEncoderConfigOptions))
	case "", FormatConsole:
		opts = append(opts, logzap.ConsoleEncoder(setCommonEncoderConfigOptions))
	default:
		return logr.Logger{}, fmt.Errorf("invalid log format %q, must be one of %v", format, AllLogFormats)
	}

	return logzap.New(opts...), nil
}

// Type returns the type name (optional for flag.Value).
func (f *Format) Type() string {
	return "logFormat"
}

// Set implements the flag.Value interface.
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "json":
		*f = FormatJSON
		return nil
	case "console":
		*f = FormatConsole
		return nil
	default:
		return fmt.Errorf("invalid log format %q, must be one of %v", s, AllLogFormats)
	}
}

// String implements the flag.Value interface.
func (f *Format) String() string {
	return string(*f)
}

// Type returns the type name (optional for flag.Value).
func (f *LogLevel) Type() string {
	return "logLevel"
}

// Set implements the flag.Value interface.
func (f *LogLevel) Set(s string) error {
	switch strings.ToLower(s) {
	case "info":
		*f = InfoLevel
		return nil
	case "debug":
		*f = DebugLevel
		return nil
	case "error":
		*f = ErrorLevel
		return nil
	default:
		return fmt.Errorf("invalid log level %q, must be one of %v", s, AllLogLevels)
	}
}

// String implements the flag.Value interface.
func (f *LogLevel) String() string {
	return string(*f)
}
