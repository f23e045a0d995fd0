// SPDX-License-Identifier: MIT

// Package logging builds the hclog logger shared by the CLI, the session
// and the elimination engine.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLevel names the environment variable consulted when no level is given.
	EnvLevel = "ECHELON_LOG_LEVEL"

	// DefaultLevel keeps the tutor quiet unless asked otherwise.
	DefaultLevel = "warn"

	loggerName = "echelon"
)

// ErrUnknownLevel indicates a level name hclog does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ResolveLevel picks the effective level name: flag, then EnvLevel, then
// DefaultLevel.
func ResolveLevel(flag string) string {
	if s := strings.TrimSpace(flag); s != "" {
		return s
	}
	if s := strings.TrimSpace(os.Getenv(EnvLevel)); s != "" {
		return s
	}

	return DefaultLevel
}

// New returns a logger named "echelon" writing to w at the given level
// (trace, debug, info, warn, error, off). An empty level goes through
// ResolveLevel.
func New(w io.Writer, level string) (hclog.Logger, error) {
	name := ResolveLevel(level)
	lvl := hclog.LevelFromString(name)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        loggerName,
		Output:      w,
		Level:       lvl,
		DisableTime: true,
	}), nil
}
