package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("Timeout = %v, want %v", cfg.Timeout, defaultTimeout)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.Source != "" {
		t.Fatalf("Source = %q, want empty", cfg.Source)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "config.toml", `
base_url = "  http://10.0.0.5:9999/api  "
timeout = "3s"
user_id = " u-1 "
log_level = " DEBUG "
log_file = "  ~/logs/liftlog.log  "
metrics_file = "~/metrics/liftlog.prom"
poll_interval = 30
history_days = 7
base_path = "/ST_Assignment_1_Frontend/"

[headers]
X-Tenant = " gym-a "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://10.0.0.5:9999/api" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.UserID != "u-1" {
		t.Fatalf("UserID = %q, want u-1", cfg.UserID)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !strings.HasPrefix(cfg.LogFile, home) || !strings.HasPrefix(cfg.MetricsFile, home) {
		t.Fatalf("LogFile = %q, MetricsFile = %q, want both under HOME %q", cfg.LogFile, cfg.MetricsFile, home)
	}
	if cfg.HistoryDays != 7 {
		t.Fatalf("HistoryDays = %d, want 7", cfg.HistoryDays)
	}
	if cfg.BasePath != "/ST_Assignment_1_Frontend/" {
		t.Fatalf("BasePath = %q", cfg.BasePath)
	}
	if cfg.Headers["X-Tenant"] != "gym-a" {
		t.Fatalf("Headers = %v, want X-Tenant=gym-a", cfg.Headers)
	}
	if cfg.Source != path {
		t.Fatalf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "base_url: backend:8080\nuser_id: u-2\npoll_interval: 5s\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "backend:8080" || cfg.UserID != "u-2" || cfg.PollInterval != 5*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.toml", `base_url = "file:1"`+"\n"+`history_days = 3`+"\n")
	t.Setenv("LIFTLOG_BASE_URL", "env:2")
	t.Setenv("LIFTLOG_HISTORY_DAYS", "14")
	t.Setenv("LIFTLOG_HEADER_X_API_KEY", "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "env:2" {
		t.Fatalf("BaseURL = %q, want env:2", cfg.BaseURL)
	}
	if cfg.HistoryDays != 14 {
		t.Fatalf("HistoryDays = %d, want 14", cfg.HistoryDays)
	}
	if cfg.Headers["x-api-key"] != "secret" {
		t.Fatalf("Headers = %v, want x-api-key=secret", cfg.Headers)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "config.toml", `
base_url = "   "
timeout = ""
log_level = ""
log_file = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.BaseURL != want.BaseURL || cfg.Timeout != want.Timeout || cfg.LogLevel != want.LogLevel || cfg.LogFile != want.LogFile {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `base_url = [`},
		{"duration", `timeout = "soon"`},
		{"negative duration", `poll_interval = "-1s"`},
		{"log level", `log_level = "loud"`},
		{"history days", `history_days = -2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.toml", tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"LIFTLOG_BASE_URL":       "base_url",
		"LIFTLOG_POLL_INTERVAL":  "poll_interval",
		"LIFTLOG_HEADER_X_TRACE": "headers.x-trace",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Fatalf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
