// Package pages loads the backend data each routed view displays.
package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/five82/liftlog/internal/fitness"
	"github.com/five82/liftlog/internal/logging"
	"github.com/five82/liftlog/internal/routes"
)

// dateLayout is the calendar and session date format the backend expects.
const dateLayout = "2006-01-02"

var (
	// ErrNoUser is returned when a view needs a user id and none is configured.
	ErrNoUser = errors.New("no user id configured")
	// ErrUnknownView is returned for matches whose view has no loader.
	ErrUnknownView = errors.New("unknown view")
)

// Source is the part of the fitness API the views read from.
type Source interface {
	GetExercises(ctx context.Context) ([]fitness.Exercise, error)
	GetCalendarRange(ctx context.Context, start, end string) ([]fitness.CalendarEntry, error)
	GetTemplates(ctx context.Context) ([]fitness.Template, error)
	GetSession(ctx context.Context, id string) (fitness.Session, error)
	GetSessionsByUser(ctx context.Context, userID string) ([]fitness.Session, error)
	GetSessionsByDateRange(ctx context.Context, userID, startDate, endDate string) ([]fitness.Session, error)
}

var _ Source = (fitness.API)(nil)

// Section is one titled list of documents on a page.
type Section struct {
	Title string             `json:"title"`
	Items []fitness.Document `json:"items"`
}

// Page is the loaded content of a routed view.
type Page struct {
	View     routes.View       `json:"view"`
	Path     string            `json:"path"`
	Title    string            `json:"title"`
	Props    map[string]string `json:"props,omitempty"`
	Sections []Section         `json:"sections"`
	LoadedAt time.Time         `json:"loadedAt"`
}

// Section returns the section with the given title.
func (p Page) Section(title string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Loader composes API calls per view.
type Loader struct {
	api         Source
	userID      string
	historyDays int
	now         func() time.Time
	logger      logging.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithUserID sets the user whose sessions the history view lists.
func WithUserID(id string) Option {
	return func(l *Loader) { l.userID = id }
}

// WithHistoryDays limits the history view to the last n days. Zero lists
// every session of the user.
func WithHistoryDays(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.historyDays = n
		}
	}
}

// WithClock overrides the time source used for date ranges.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the loader's logger.
func WithLogger(logger logging.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader builds a Loader reading from api.
func NewLoader(api Source, opts ...Option) *Loader {
	l := &Loader{api: api, now: time.Now, logger: logging.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the data for the view m resolved to. Backend errors are
// returned wrapped with the view name.
func (l *Loader) Load(ctx context.Context, m routes.Match) (Page, error) {
	page := Page{View: m.View(), Path: m.Path, Props: m.Props}

	var err error
	switch m.View() {
	case routes.ViewExercises:
		page.Title = "Exercises"
		page.Sections, err = l.exercises(ctx)
	case routes.ViewHistory:
		page.Title = "History"
		page.Sections, err = l.history(ctx)
	case routes.ViewManage:
		page.Title = "Manage"
		page.Sections, err = l.manage(ctx)
	case routes.ViewWorkout:
		page.Title = "Workout"
		page.Sections, err = l.workout(ctx, m.Props["id"])
	default:
		return Page{}, fmt.Errorf("%w: %q", ErrUnknownView, m.View())
	}
	if err != nil {
		l.logger.Warn(ctx, "page load failed",
			logging.String("view", string(m.View())),
			logging.String("path", m.Path),
			logging.Err(err),
		)
		return Page{}, fmt.Errorf("load %s: %w", m.View(), err)
	}
	page.LoadedAt = l.now()
	return page, nil
}

func (l *Loader) exercises(ctx context.Context) ([]Section, error) {
	exercises, err := l.api.GetExercises(ctx)
	if err != nil {
		return nil, err
	}
	today := l.now()
	entries, err := l.api.GetCalendarRange(ctx, today.Format(dateLayout), today.AddDate(0, 0, 1).Format(dateLayout))
	if err != nil {
		return nil, err
	}
	return []Section{
		{Title: "Today", Items: entries},
		{Title: "Exercises", Items: exercises},
	}, nil
}

func (l *Loader) history(ctx context.Context) ([]Section, error) {
	if l.userID == "" {
		return nil, ErrNoUser
	}
	var (
		sessions []fitness.Session
		err      error
	)
	if l.historyDays > 0 {
		today := l.now()
		start := today.AddDate(0, 0, -l.historyDays)
		sessions, err = l.api.GetSessionsByDateRange(ctx, l.userID, start.Format(dateLayout), today.Format(dateLayout))
	} else {
		sessions, err = l.api.GetSessionsByUser(ctx, l.userID)
	}
	if err != nil {
		return nil, err
	}
	return []Section{{Title: "Sessions", Items: sessions}}, nil
}

func (l *Loader) manage(ctx context.Context) ([]Section, error) {
	templates, err := l.api.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := l.api.GetExercises(ctx)
	if err != nil {
		return nil, err
	}
	return []Section{
		{Title: "Templates", Items: templates},
		{Title: "Exercises", Items: exercises},
	}, nil
}

func (l *Loader) workout(ctx context.Context, id string) ([]Section, error) {
	session, err := l.api.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sections := []Section{{Title: "Session", Items: []fitness.Document{session}}}
	if sets := session.Documents("sets"); len(sets) > 0 {
		sections = append(sections, Section{Title: "Sets", Items: sets})
	}
	return sections, nil
}
