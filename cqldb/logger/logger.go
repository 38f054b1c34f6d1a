//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

// Package logger provides logging functionality for the driver.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// LogLevel defines a set of logging levels used to control logging output.
//
// The logging levels are ordered. The available levels in ascending order are:
//
//	Fine
//	Debug
//	Info
//	Warn
//	Error
//
// Enabling logging at a given level also enables logging at all higher
// levels. In addition there is a level Off that can be used to turn off
// logging.
type LogLevel int

const (
	// Fine represents a level used to log tracing messages.
	Fine LogLevel = 10

	// Debug represents a level used to log debug messages.
	Debug LogLevel = 20

	// Info represents a level used to log informative messages.
	Info LogLevel = 30

	// Warn represents a level used to log warning messages.
	Warn LogLevel = 40

	// Error represents a level used to log error messages.
	Error LogLevel = 50

	// Off turns off logging.
	Off LogLevel = 99
)

// String returns a string representation for the log level.
//
// This implements the fmt.Stringer interface.
func (level LogLevel) String() string {
	switch level {
	case Fine:
		return "Fine"
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warn:
		return "Warn"
	case Error:
		return "Error"
	case Off:
		return "Off"
	default:
		return "N/A"
	}
}

// Logger is a wrapper for log.Logger that adds level filtering and control
// over whether log entry times are displayed in the local time zone or UTC.
type Logger struct {
	out *log.Logger

	// level specifies the desired logging level.
	level LogLevel

	// tzLabel is the suffix displayed after the log entry time. It is empty
	// when using the local time zone and "UTC " when using UTC time.
	tzLabel string
}

// New creates a logger that writes messages of the specified logging level or
// higher to the specified io.Writer. If useLocalTime is set to false, the log
// entry displays UTC time.
//
// If the specified level is Off or not one of the defined levels, New returns
// nil, which represents a disabled logger. All methods on a nil *Logger are
// no-ops.
func New(out io.Writer, level LogLevel, useLocalTime bool) *Logger {
	if out == nil {
		return nil
	}

	switch level {
	case Fine, Debug, Info, Warn, Error:
	default:
		return nil
	}

	var tz string
	flag := log.LstdFlags | log.Lmicroseconds
	if !useLocalTime {
		flag |= log.LUTC
		tz = "UTC "
	}

	return &Logger{
		level:   level,
		out:     log.New(out, "", flag),
		tzLabel: tz,
	}
}

// Enabled reports whether messages of the specified level would be written by
// this logger.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && level != Off && l.level <= level
}

// Fine writes the specified message to the logger if the desired logging
// level is set to Fine.
//
// The arguments for the logging message are handled in the manner of fmt.Printf.
func (l *Logger) Fine(messageFormat string, messageArgs ...interface{}) {
	l.Log(Fine, messageFormat, messageArgs...)
}

// Debug writes the specified message to the logger if the desired logging
// level is Debug or lower.
//
// The arguments for the logging message are handled in the manner of fmt.Printf.
func (l *Logger) Debug(messageFormat string, messageArgs ...interface{}) {
	l.Log(Debug, messageFormat, messageArgs...)
}

// Info writes the specified message to the logger if the desired logging
// level is Info or lower.
//
// The arguments for the logging message are handled in the manner of fmt.Printf.
func (l *Logger) Info(messageFormat string, messageArgs ...interface{}) {
	l.Log(Info, messageFormat, messageArgs...)
}

// Warn writes the specified message to the logger if the desired logging
// level is Warn or lower.
//
// The arguments for the logging message are handled in the manner of fmt.Printf.
func (l *Logger) Warn(messageFormat string, messageArgs ...interface{}) {
	l.Log(Warn, messageFormat, messageArgs...)
}

// Error writes the specified message to the logger if the desired logging
// level is Error or lower.
//
// The arguments for the logging message are handled in the manner of fmt.Printf.
func (l *Logger) Error(messageFormat string, messageArgs ...interface{}) {
	l.Log(Error, messageFormat, messageArgs...)
}

// Log writes the specified message to the logger if the specified logging
// level is the same as or higher than the logger's desired level.
//
// The arguments for the logging message are handled in the manner of fmt.Printf.
func (l *Logger) Log(level LogLevel, messageFormat string, messageArgs ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	l.out.Print(l.tzLabel+label(level), fmt.Sprintf(messageFormat, messageArgs...))
}

// LogWithFn calls the function fn if the specified logging level is the same
// as or higher than the logger's desired level, and writes the message
// returned from fn to the logger. This avoids computing expensive messages
// that would be filtered out.
func (l *Logger) LogWithFn(level LogLevel, fn func() string) {
	if !l.Enabled(level) {
		return
	}

	l.out.Print(l.tzLabel+label(level), fn())
}

// label returns a label for the specified logging level used in log entries.
func label(level LogLevel) string {
	switch level {
	case Fine:
		return "[FINE]  "
	case Debug:
		return "[DEBUG] "
	case Info:
		return "[INFO]  "
	case Warn:
		return "[WARN]  "
	case Error:
		return "[ERROR] "
	default:
		return ""
	}
}

// DefaultLogger represents a default logger that writes warning and higher
// priority events to stderr.
var DefaultLogger = New(os.Stderr, Warn, false)
