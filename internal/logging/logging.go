// Package logging builds the slog logger used by the CLI.
//
// Logs go to stderr so they never mix with anything written to stdout
// (the fonts listing, the dry-run plan). The level comes from --log-level
// or ICONBANNER_LOG_LEVEL and defaults to info.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a case-insensitive level name to a slog level.
// Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the given level, tagged with
// module and version. Debug level adds source locations.
func NewLogger(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}
