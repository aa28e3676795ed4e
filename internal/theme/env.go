package theme

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/agiangrant/stripes/tw"
)

// Environment variables that override the [stripes] block.
const (
	EnvSize      = "STRIPES_SIZE"
	EnvAngle     = "STRIPES_ANGLE"
	EnvOpacity   = "STRIPES_OPACITY"
	EnvBgOpacity = "STRIPES_BG_OPACITY"
	EnvPrefix    = "STRIPES_PREFIX"
	EnvLogLevel  = "STRIPES_LOG_LEVEL"
)

// ApplyEnv returns opts with any STRIPES_* overrides set in the
// environment applied. Unparseable integers are ignored with a warning.
func ApplyEnv(opts tw.Options) tw.Options {
	return applyEnv(opts, os.LookupEnv)
}

func applyEnv(opts tw.Options, lookup func(string) (string, bool)) tw.Options {
	if v, ok := lookup(EnvSize); ok && v != "" {
		opts.Size = &v
	}
	if v, ok := lookup(EnvAngle); ok && v != "" {
		opts.Angle = &v
	}
	if v, ok := lookup(EnvPrefix); ok && v != "" {
		opts.Prefix = &v
	}
	if n, ok := lookupInt(lookup, EnvOpacity); ok {
		opts.Opacity = &n
	}
	if n, ok := lookupInt(lookup, EnvBgOpacity); ok {
		opts.BgOpacity = &n
	}
	return opts
}

func lookupInt(lookup func(string) (string, bool), key string) (int, bool) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer in environment", "key", key, "value", v)
		return 0, false
	}
	return n, true
}

// LogLevel parses STRIPES_LOG_LEVEL, falling back to def.
func LogLevel(def slog.Level) slog.Level {
	v, ok := os.LookupEnv(EnvLogLevel)
	if !ok || v == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return level
}
