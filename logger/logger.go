// SPDX-License-Identifier: MIT

// Package logger builds the zerolog console loggers used by the planner and
// the buscount command. The command points them at stderr; stdout carries
// only the answer.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TimeFormat is RFC 3339 with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once

// New returns a logger writing human-readable lines to w at level. The
// first call also sets the zerolog time field format.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = TimeFormat
	})

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    true,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a flag value such as "debug" or "WARN" to a level.
// The empty string means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q", name)
	}

	return lvl, nil
}
