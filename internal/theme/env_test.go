package theme

import (
	"log/slog"
	"testing"

	"github.com/agiangrant/stripes/tw"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	size := "10px"
	opacity := 40
	opts := tw.Options{Size: &size, Opacity: &opacity}

	got := applyEnv(opts, mapLookup(map[string]string{
		EnvSize:      "12px",
		EnvBgOpacity: "25",
		EnvPrefix:    "zebra",
	})).Resolve()

	want := tw.Config{Size: "12px", Angle: "135deg", Opacity: 40, BgOpacity: 25, Prefix: "zebra"}
	if got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}

func TestApplyEnvIgnoresInvalid(t *testing.T) {
	got := applyEnv(tw.Options{}, mapLookup(map[string]string{
		EnvOpacity: "lots",
		EnvAngle:   "",
	})).Resolve()

	if got != tw.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", got)
	}
}

func TestApplyEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvAngle, "45deg")
	if got := ApplyEnv(tw.Options{}).Resolve().Angle; got != "45deg" {
		t.Errorf("Angle = %q", got)
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	if got := LogLevel(slog.LevelWarn); got != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", got)
	}

	t.Setenv(EnvLogLevel, "chatty")
	if got := LogLevel(slog.LevelWarn); got != slog.LevelWarn {
		t.Errorf("invalid level should fall back, got %v", got)
	}
}
