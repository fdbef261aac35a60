// Package app is the composition root of liftlog.
//
// # Startup
//
// Run wires the packages together in this order:
//
//  1. config.Load: defaults, config file, LIFTLOG_* env
//  2. the log file logger and the metrics manager
//  3. fitness.NewClient with the configured timeout, headers, logger and
//     the metrics manager as request observer
//  4. the route table, mounted under base_path
//  5. pages.NewLoader with user_id and history_days
//  6. either runOnce (-once) or the poller plus ui.Run
//
// When metrics_file is set the registry is written there as a Prometheus
// textfile on exit.
//
// # Data Flow
//
//	ui ──Resolve──> routes.Table ──Match──> state.Store.Navigate
//	                                            │
//	ui load cmd / poller ──> pages.Loader.Load ─┤
//	                              │             │
//	                       fitness.Client       └──> Store.Update(gen, page, err)
//	                              │
//	                           backend
//
// # Polling
//
// StartPoller reloads the store's current target every poll_interval
// (default 15s, -poll overrides). After a failure the wait doubles per
// consecutive failure, capped at 30s, and resets on the next success. The
// poller only refreshes what is on screen; the API client never caches.
//
// # Once Mode
//
// With -once, Run resolves -path (the exercises route when empty), loads the
// page and prints it as indented JSON on stdout. Route and load errors are
// returned unchanged, so errors.Is works against routes.ErrNotFound,
// pages.ErrNoUser and fitness.StatusError.
//
// # Error Handling
//
// Config, logger, client and route table errors are fatal and returned from
// Run. Load failures while the UI runs are recorded in the store and shown
// in the header; they never stop the program.
package app
