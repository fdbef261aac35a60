package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/five82/liftlog/internal/config"
	"github.com/five82/liftlog/internal/fitness"
	"github.com/five82/liftlog/internal/logging"
	"github.com/five82/liftlog/internal/metrics"
	"github.com/five82/liftlog/internal/pages"
	"github.com/five82/liftlog/internal/prefs"
	"github.com/five82/liftlog/internal/routes"
	"github.com/five82/liftlog/internal/state"
	"github.com/five82/liftlog/internal/ui"
)

// Options configure the liftlog application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/liftlog/prefs.toml
	PollEvery  int    // seconds; zero uses the configured poll_interval
	Path       string // start path; empty reuses the last visited path
	Once       bool   // load Path once, print it as JSON and exit
	Stdout     io.Writer
}

// Run boots liftlog until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	mgr, err := metrics.New()
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer writeMetrics(ctx, cfg, mgr, logger)

	client, err := fitness.NewClient(cfg.BaseURL,
		fitness.WithTimeout(cfg.Timeout),
		fitness.WithHeaders(cfg.Headers),
		fitness.WithLogger(logger.Named("fitness")),
		fitness.WithObserver(mgr),
	)
	if err != nil {
		return fmt.Errorf("init fitness client: %w", err)
	}

	table, err := routes.New(routes.Routes(), routes.WithBase(cfg.BasePath))
	if err != nil {
		return fmt.Errorf("init routes: %w", err)
	}

	loader := pages.NewLoader(client,
		pages.WithUserID(cfg.UserID),
		pages.WithHistoryDays(cfg.HistoryDays),
		pages.WithLogger(logger.Named("pages")),
	)

	logger.Info(ctx, "liftlog starting",
		logging.String("base_url", client.BaseURL()),
		logging.String("config", cfg.Source),
		logging.String("base_path", table.Base()),
	)

	if opts.Once {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		return runOnce(ctx, table, loader, opts.Path, stdout)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn(ctx, "load prefs failed", logging.Err(err))
	}

	start := opts.Path
	if start == "" {
		start = userPrefs.LastPath
	}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	store := &state.Store{}

	// Start background poller
	StartPoller(ctx, store, loader, interval, logger.Named("poller"))

	return ui.Run(ui.Options{
		Context:   ctx,
		Loader:    loader,
		Store:     store,
		Routes:    table,
		StartPath: start,
		BaseURL:   client.BaseURL(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logger.Named("ui"),
	})
}

// runOnce resolves path, loads its page and writes it to w as JSON.
func runOnce(ctx context.Context, table *routes.Table, loader PageLoader, path string, w io.Writer) error {
	if path == "" {
		href, err := table.Href(routes.NameExercises, nil)
		if err != nil {
			return err
		}
		path = href
	}
	match, err := table.Resolve(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	page, err := loader.Load(ctx, match)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	return nil
}

// openLogger opens the configured log file. The terminal UI owns stdout, so
// logs never go there.
func openLogger(cfg config.Config) (logging.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := logging.New(f, cfg.LogLevel)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, func() { _ = f.Close() }, nil
}

func writeMetrics(ctx context.Context, cfg config.Config, mgr *metrics.Manager, logger logging.Logger) {
	if cfg.MetricsFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfg.MetricsFile), 0o755); err != nil {
		logger.Warn(ctx, "create metrics dir failed", logging.Err(err))
		return
	}
	if err := mgr.WriteTextfile(cfg.MetricsFile); err != nil && !errors.Is(err, metrics.ErrNoRegistry) {
		logger.Warn(ctx, "write metrics failed", logging.String("path", cfg.MetricsFile), logging.Err(err))
	}
}
