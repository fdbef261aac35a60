package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftlog/internal/logging"
	"github.com/five82/liftlog/internal/pages"
	"github.com/five82/liftlog/internal/prefs"
	"github.com/five82/liftlog/internal/routes"
	"github.com/five82/liftlog/internal/state"
)

// PageLoader loads the page for a resolved route.
type PageLoader interface {
	Load(ctx context.Context, m routes.Match) (pages.Page, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    PageLoader
	Store     *state.Store
	Routes    *routes.Table
	StartPath string // empty opens the exercises route
	BaseURL   string // shown in the header
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	Logger    logging.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    PageLoader
	store     *state.Store
	table     *routes.Table
	baseURL   string
	prefsPath string
	pollTick  time.Duration
	logger    logging.Logger
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Goto prompt
	prompting bool
	input     textinput.Model

	// Data state
	snapshot  state.Snapshot
	loading   bool
	selected  int
	path      string // last successfully resolved path, as typed
	status    string
	statusErr bool
}

// New creates a new Bubble Tea model and navigates to the start path.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	table := opts.Routes
	if table == nil {
		table = routes.Default()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = "/workout/<id>"
	input.CharLimit = 512

	m := Model{
		ctx:       ctx,
		loader:    opts.Loader,
		store:     store,
		table:     table,
		baseURL:   opts.BaseURL,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		input:     input,
	}

	start := opts.StartPath
	if start == "" {
		start = m.href(routes.NameExercises, nil)
	}
	if !m.navigate(start) {
		// Keep the error visible but land on a real page.
		status := m.status
		m.navigate(m.href(routes.NameExercises, nil))
		m.status, m.statusErr = status, true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if cmd := m.loadCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case loadedMsg:
		snap := m.store.Snapshot()
		if msg.generation == snap.Generation {
			m.loading = false
			if msg.err != nil {
				m.setError(msg.err)
			}
		}
		m.applySnapshot(snap)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.GoExercises):
		return m.goNamed(routes.NameExercises, nil)

	case key.Matches(msg, m.keys.GoHistory):
		return m.goNamed(routes.NameHistory, nil)

	case key.Matches(msg, m.keys.GoManage):
		return m.goNamed(routes.NameManage, nil)

	case key.Matches(msg, m.keys.Goto):
		m.prompting = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}

	rows := len(m.rows())
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < rows-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(rows-1, 0)
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.prompting = false
		m.input.Blur()
		if !m.navigate(m.input.Value()) {
			return m, nil
		}
		return m, m.loadCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// goNamed navigates to a named route.
func (m Model) goNamed(name string, params map[string]string) (tea.Model, tea.Cmd) {
	href, err := m.table.Href(name, params)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if !m.navigate(href) {
		return m, nil
	}
	return m, m.loadCmd()
}

// openSelected opens the highlighted history session in the workout view.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.snapshot.Target.View() != routes.ViewHistory {
		return m, nil
	}
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return m, nil
	}
	id := rows[m.selected].doc.ID()
	if id == "" {
		m.setError(errors.New("selected session has no id"))
		return m, nil
	}
	return m.goNamed(routes.NameWorkout, map[string]string{"id": id})
}

// navigate resolves path and makes it the store's target. Unknown paths set
// the status line and leave the current target untouched.
func (m *Model) navigate(path string) bool {
	match, err := m.table.Resolve(path)
	if err != nil {
		m.setError(err)
		return false
	}
	m.store.Navigate(match)
	m.snapshot = m.store.Snapshot()
	m.selected = 0
	m.loading = true
	m.path = path
	m.status, m.statusErr = "", false
	if match.RedirectedFrom != "" {
		m.status = "redirected from " + match.RedirectedFrom
	}
	return true
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if rows := len(m.rows()); m.selected >= rows {
		m.selected = max(rows-1, 0)
	}
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) href(name string, params map[string]string) string {
	href, err := m.table.Href(name, params)
	if err != nil {
		return "/"
	}
	return href
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, LastPath: m.path}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn(m.ctx, "save prefs failed", logging.String("path", m.prefsPath), logging.Err(err))
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type loadedMsg struct {
	generation uint64
	err        error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// loadCmd loads the store's current target in the background. The target is
// captured now, so a load that finishes after another navigation is dropped.
func (m Model) loadCmd() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	target, gen, ok := m.store.Target()
	if !ok {
		return nil
	}
	ctx, store, loader := m.ctx, m.store, m.loader
	return func() tea.Msg {
		page, err := loader.Load(ctx, target)
		if err != nil {
			store.Update(gen, nil, err)
			return loadedMsg{generation: gen, err: err}
		}
		store.Update(gen, &page, nil)
		return loadedMsg{generation: gen}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		if fm, ok := final.(Model); ok {
			fm.savePrefs()
		}
		return nil
	}
	return err
}
