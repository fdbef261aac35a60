// Package config loads liftlog's runtime configuration.
//
// # Resolution Order
//
// Load layers three sources, later ones winning:
//
//  1. Built-in defaults (see Default)
//  2. The config file: the explicit path, or ~/.config/liftlog/config.toml
//  3. LIFTLOG_* environment variables
//
// A missing config file is not an error. Files ending in .yaml or .yml are
// parsed as YAML; everything else is parsed as TOML.
//
// # Keys
//
//	base_url       backend address, host:port or full URL   (127.0.0.1:8080)
//	timeout        per-request timeout                      (10s)
//	user_id        user whose sessions the history view lists
//	headers        table of extra request headers
//	log_level      debug, info, warn or error               (info)
//	log_file       log destination                          (~/.local/state/liftlog/liftlog.log)
//	metrics_file   Prometheus textfile written on exit      (disabled)
//	poll_interval  refresh interval of the active view      (15s)
//	history_days   limit history to the last N days         (0, all sessions)
//	base_path      mount prefix of the route table          (none)
//
// Durations accept Go duration strings; a bare TOML integer is read as
// seconds. String values are trimmed and empty values fall back to the
// defaults. A leading ~ in paths expands to the home directory.
//
// # Environment
//
// LIFTLOG_BASE_URL sets base_url, LIFTLOG_POLL_INTERVAL sets poll_interval and
// so on. Headers use LIFTLOG_HEADER_<NAME>, with underscores in the name
// turned into dashes:
//
//	LIFTLOG_HEADER_X_TENANT=gym-a   ->   X-Tenant: gym-a
//
// # Example
//
//	base_url = "http://localhost:8080"
//	user_id = "64f1c0"
//	history_days = 30
//
//	[headers]
//	X-Tenant = "gym-a"
package config
