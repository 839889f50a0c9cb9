// Package applog provides the process-wide structured logger, configured
// once at startup the way the corpus's macondo solver uses
// github.com/rs/zerolog/log: chained field builders, one line per
// significant event, never a bare fmt.Print for anything that isn't
// direct human-facing CLI output.
package applog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Logger returns the shared logger.
func Logger() *zerolog.Logger { return &logger }

// SetLevel adjusts the minimum severity the logger emits.
func SetLevel(lvl zerolog.Level) { logger = logger.Level(lvl) }

// SetOutput redirects log output, mainly for tests that want to silence
// or capture it.
func SetOutput(w io.Writer) { logger = logger.Output(w) }
