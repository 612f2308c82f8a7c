// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{level:-8s} %{time:2006-01-02T15:04:05} %{module:-10s}:%{color:reset} %{message}"

// LogLevelFlag defines the verbosity of all loggers of an application.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   "info",
	EnvVars: []string{"TRACEGEN_LOG"},
}

// Logger is the logging interface used throughout the trace generator.
//
//go:generate mockgen -source logger.go -destination logger_mock.go -package logger
type Logger interface {
	Critical(args ...any)
	Criticalf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Warning(args ...any)
	Warningf(format string, args ...any)
	Notice(args ...any)
	Noticef(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
	IsEnabledFor(level logging.Level) bool
}

// NewLogger creates a logger for the given module writing to stderr.
// Stdout is reserved for generated traces.
func NewLogger(level string, module string) Logger {
	return newLogger(os.Stderr, level, module)
}

func newLogger(w io.Writer, level string, module string) Logger {
	log := logging.MustGetLogger(module)
	format := logging.MustStringFormatter(defaultLogFormat)
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveledBackend := logging.AddModuleLevel(formatter)

	logLevel, err := logging.LogLevel(level)
	if err != nil {
		logLevel = logging.INFO
	}
	leveledBackend.SetLevel(logLevel, module)
	log.SetBackend(leveledBackend)
	if err != nil {
		log.Warningf("cannot parse log level %q, using INFO", level)
	}
	return log
}

// ParseTime splits a duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var hours, minutes, seconds uint32
	seconds = uint32(elapsed.Round(time.Second).Seconds())
	if seconds >= 60 {
		minutes = seconds / 60
		seconds = seconds % 60
		if minutes >= 60 {
			hours = minutes / 60
			minutes = minutes % 60
		}
	}
	return hours, minutes, seconds
}
