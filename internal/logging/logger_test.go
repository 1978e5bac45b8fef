package logging

import (
	"context"
	"log/slog"
	"testing"
)

func resetLoggingState() {
	mutex.Lock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	isInitialized = false
	mutex.Unlock()
}

func TestModuleLevelOverride(t *testing.T) {
	resetLoggingState()

	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"devices": "debug",
			"api":     "warn",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"devices", true, true, true},
		{"api", false, false, true},
		{"render", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()

			if got := handler.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("module %q: Debug enabled = %v, want %v", tt.module, got, tt.wantDebug)
			}
			if got := handler.Enabled(context.Background(), slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("module %q: Info enabled = %v, want %v", tt.module, got, tt.wantInfo)
			}
			if got := handler.Enabled(context.Background(), slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("module %q: Warn enabled = %v, want %v", tt.module, got, tt.wantWarn)
			}
		})
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetLoggingState()

	// Loggers created before Initialize default to info level.
	logger := GetLogger("early")
	if logger == nil {
		t.Fatal("GetLogger returned nil")
	}
	if logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("pre-initialize logger should not accept debug")
	}

	// Initialize raises the module's level through its LevelVar.
	Initialize(Config{
		Level:   "info",
		Format:  "text",
		Modules: map[string]string{"early": "debug"},
	})

	logger = GetLogger("early")
	if !logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("module level override not applied after Initialize")
	}
}

func TestGetLoggerReturnsSameInstance(t *testing.T) {
	resetLoggingState()
	Initialize(Config{Level: "info", Format: "text"})

	if GetLogger("devices") != GetLogger("devices") {
		t.Error("GetLogger should return the same logger per module")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"DEBUG":   slog.LevelDebug,
	}
	for in, want := range tests {
		got := parseLevel(in)
		if got == nil {
			t.Errorf("parseLevel(%q) = nil, want %v", in, want)
			continue
		}
		if *got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, *got, want)
		}
	}

	if parseLevel("verbose") != nil {
		t.Error("parseLevel should reject unknown levels")
	}
}
