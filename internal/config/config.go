package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings liftlog needs to reach the backend and run the
// terminal navigator.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	UserID       string
	Headers      map[string]string
	LogLevel     string
	LogFile      string
	MetricsFile  string
	PollInterval time.Duration
	HistoryDays  int
	BasePath     string

	// Source is the config file that was read, or empty when none existed.
	Source string
}

const (
	defaultConfigPath   = "~/.config/liftlog/config.toml"
	defaultBaseURL      = "127.0.0.1:8080"
	defaultTimeout      = 10 * time.Second
	defaultLogLevel     = "info"
	defaultLogFile      = "~/.local/state/liftlog/liftlog.log"
	defaultPollInterval = 15 * time.Second

	envPrefix = "LIFTLOG_"
)

// raw mirrors the file and env keys before defaults and validation apply.
type raw struct {
	BaseURL      string            `koanf:"base_url"`
	Timeout      string            `koanf:"timeout"`
	UserID       string            `koanf:"user_id"`
	Headers      map[string]string `koanf:"headers"`
	LogLevel     string            `koanf:"log_level"`
	LogFile      string            `koanf:"log_file"`
	MetricsFile  string            `koanf:"metrics_file"`
	PollInterval string            `koanf:"poll_interval"`
	HistoryDays  int               `koanf:"history_days"`
	BasePath     string            `koanf:"base_path"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		BaseURL:      defaultBaseURL,
		Timeout:      defaultTimeout,
		LogLevel:     defaultLogLevel,
		LogFile:      mustExpand(defaultLogFile),
		PollInterval: defaultPollInterval,
	}
}

// Load layers defaults, the config file at path (or the default location)
// and LIFTLOG_* environment variables, in that order of precedence.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	k := koanf.New(".")
	source := ""

	if _, err := os.Stat(resolved); err == nil {
		if err := k.Load(file.Provider(resolved), parserFor(resolved)); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		source = resolved
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var r raw
	if err := k.UnmarshalWithConf("", &r, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := r.resolve()
	if err != nil {
		return Config{}, err
	}
	cfg.Source = source
	return cfg, nil
}

// envKey maps LIFTLOG_BASE_URL to base_url and LIFTLOG_HEADER_X_TENANT to
// headers.x-tenant.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if name, ok := strings.CutPrefix(s, "header_"); ok {
		return "headers." + strings.ReplaceAll(name, "_", "-")
	}
	return s
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return tomlParser{}
	}
}

func (r raw) resolve() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(r.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	cfg.UserID = strings.TrimSpace(r.UserID)
	cfg.BasePath = strings.TrimSpace(r.BasePath)

	if v := strings.ToLower(strings.TrimSpace(r.LogLevel)); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			return Config{}, fmt.Errorf("parse config: log_level %q is not one of debug, info, warn, error", v)
		}
	}

	if v := strings.TrimSpace(r.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(r.MetricsFile); v != "" {
		cfg.MetricsFile = mustExpand(v)
	}

	var err error
	if cfg.Timeout, err = parseDuration("timeout", r.Timeout, defaultTimeout); err != nil {
		return Config{}, err
	}
	if cfg.PollInterval, err = parseDuration("poll_interval", r.PollInterval, defaultPollInterval); err != nil {
		return Config{}, err
	}

	if r.HistoryDays < 0 {
		return Config{}, fmt.Errorf("parse config: history_days must not be negative, got %d", r.HistoryDays)
	}
	cfg.HistoryDays = r.HistoryDays

	if len(r.Headers) > 0 {
		cfg.Headers = make(map[string]string, len(r.Headers))
		for name, value := range r.Headers {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cfg.Headers[name] = strings.TrimSpace(value)
		}
	}

	return cfg, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse config: %s must be positive, got %s", key, d)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
