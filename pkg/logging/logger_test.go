package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be Info, got %s", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Expected default pretty to be false")
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelWarn, Output: buf})

	logger.Debug().Msg("filtered debug message")
	logger.Warn().Msg("visible warn message")

	out := buf.String()
	if strings.Contains(out, "filtered debug message") {
		t.Error("debug message logged at warn level")
	}
	if !strings.Contains(out, "visible warn message") {
		t.Error("warn message missing at warn level")
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelInfo, Output: buf})

	logger.Info().Str("family", "gacha_info").Msg("page fetched")

	out := buf.String()
	if !strings.Contains(out, `"family":"gacha_info"`) {
		t.Errorf("expected structured field in output, got %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input LogLevel
		want  zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLogger_Component(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelInfo, Output: buf})

	logger := NewLogger("paginator")
	logger.Info().Msg("component message")

	if !strings.Contains(buf.String(), `"component":"paginator"`) {
		t.Errorf("expected component field, got %s", buf.String())
	}
}
