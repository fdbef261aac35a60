package state

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/five82/liftlog/internal/pages"
	"github.com/five82/liftlog/internal/routes"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Target              routes.Match
	HasTarget           bool
	Generation          uint64 // bumped on every Navigate
	Page                pages.Page
	HasPage             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive load failures for the target
}

// IsOffline returns true when the backend has been unreachable for multiple loads.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates the navigation target and the page loaded for it.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Navigate makes m the current target, clears the previous page and returns
// the generation loads for m must report with.
func (s *Store) Navigate(m routes.Match) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.snapshot.Generation + 1
	s.snapshot = Snapshot{
		Target:     cloneMatch(m),
		HasTarget:  true,
		Generation: gen,
	}
	return gen
}

// Target returns the current target and its generation.
func (s *Store) Target() (routes.Match, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMatch(s.snapshot.Target), s.snapshot.Generation, s.snapshot.HasTarget
}

// Update records the result of a load started at generation gen. Results for
// an older generation are dropped and Update reports false. When err is
// non-nil the previous page is kept but the error is recorded for visibility.
func (s *Store) Update(gen uint64, page *pages.Page, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return true
	}

	if page != nil {
		s.snapshot.Page = clonePage(*page)
		s.snapshot.HasPage = true
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Target = cloneMatch(s.snapshot.Target)
	snap.Page = clonePage(s.snapshot.Page)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneMatch(m routes.Match) routes.Match {
	m.Params = maps.Clone(m.Params)
	m.Props = maps.Clone(m.Props)
	if m.Query != nil {
		q := make(map[string][]string, len(m.Query))
		for k, v := range m.Query {
			q[k] = append([]string(nil), v...)
		}
		m.Query = q
	}
	return m
}

func clonePage(p pages.Page) pages.Page {
	p.Props = maps.Clone(p.Props)
	if len(p.Sections) == 0 {
		p.Sections = nil
		return p
	}
	sections := make([]pages.Section, len(p.Sections))
	for i, sec := range p.Sections {
		sections[i] = pages.Section{Title: sec.Title}
		if len(sec.Items) > 0 {
			sections[i].Items = append(sections[i].Items, sec.Items...)
		}
	}
	p.Sections = sections
	return p
}
