// Package cli implements the arcraiders command-line interface.
//
// The CLI fetches Arc Raiders game data from the MetaForge API and prints it
// as JSON, exports it to JSON or CSV files, summarizes it, and offers an
// interactive item browser. It is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - items, weapons, armor, quests, arcs, traders, maps: list resources
//   - get: fetch one record by ID
//   - search: search items by name
//   - export: write a listing as JSON or CSV
//   - stats: weapon statistics and rarity distribution
//   - browse: interactive item browser
//   - cache: show the effective cache settings
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/arcraiders/config.toml, then from
// ARCRAIDERS_* environment variables (a .env file in the working directory
// is loaded first), then from flags. Later sources win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports cache hits and API requests. Loggers are passed through
// context.Context to commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Debug output from the client (cache
// hits, page fetches, HTTP requests) only shows at log.DebugLevel.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// exportProgress times a single export.
type exportProgress struct {
	logger   *log.Logger
	resource string
	start    time.Time
}

func startExport(l *log.Logger, resource string) *exportProgress {
	return &exportProgress{logger: l, resource: resource, start: time.Now()}
}

// done logs "Exported <n> <resource>" with the destination and elapsed time.
func (p *exportProgress) done(n int, path string) {
	p.logger.Info(fmt.Sprintf("Exported %d %s", n, p.resource),
		"path", path,
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command. Outside
// a command run nothing is attached and the returned logger discards output.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.New(io.Discard)
}
