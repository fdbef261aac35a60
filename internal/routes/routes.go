// Package routes declares the client-side route table and resolves request
// paths to views.
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// View identifies the page a route renders.
type View string

const (
	ViewExercises View = "ExercisesPage"
	ViewHistory   View = "HistoryPage"
	ViewManage    View = "ManageExercisePage"
	ViewWorkout   View = "WorkoutSessionPage"
)

// Route names.
const (
	NameExercises = "exercises"
	NameHistory   = "history"
	NameManage    = "manage"
	NameWorkout   = "workout"
)

// Route maps a path pattern to a view. Segments starting with ':' capture a
// parameter. A route with Redirect set renders nothing and forwards to the
// redirect target.
type Route struct {
	Path     string
	Name     string
	View     View
	Props    bool // forward path params as view props
	Redirect string
}

// Errors returned by Resolve and Href.
var (
	ErrNotFound     = errors.New("no route matches path")
	ErrRedirectLoop = errors.New("redirect loop")
	ErrUnknownRoute = errors.New("unknown route name")
	ErrMissingParam = errors.New("missing route param")
)

const maxRedirects = 8

var defaultRoutes = []Route{
	{Path: "/", Name: NameExercises, View: ViewExercises},
	{Path: "/exercises", Redirect: "/"},
	{Path: "/history", Name: NameHistory, View: ViewHistory},
	{Path: "/manage", Name: NameManage, View: ViewManage},
	{Path: "/workout/:id", Name: NameWorkout, View: ViewWorkout, Props: true},
}

// Routes returns a copy of the canonical route table in declaration order.
func Routes() []Route {
	return append([]Route(nil), defaultRoutes...)
}

// Table is an immutable, ordered set of routes.
type Table struct {
	routes []compiled
	byName map[string]int
	base   string
}

type compiled struct {
	Route
	segments []string
}

// Option configures a Table.
type Option func(*Table)

// WithBase mounts the table under a path prefix such as "/app/". Resolve
// strips the prefix and Href adds it back.
func WithBase(base string) Option {
	return func(t *Table) {
		t.base = normalizeBase(base)
	}
}

// Default builds the canonical table.
func Default(opts ...Option) *Table {
	t, err := New(defaultRoutes, opts...)
	if err != nil {
		panic(fmt.Sprintf("routes: default table invalid: %v", err))
	}
	return t
}

// New validates routes and builds a Table. Paths must be unique, redirect
// routes must not name a view, and every redirect target must resolve.
func New(routes []Route, opts ...Option) (*Table, error) {
	t := &Table{byName: make(map[string]int)}
	for _, opt := range opts {
		opt(t)
	}

	seen := make(map[string]bool, len(routes))
	for i, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("route %d: path %q must start with /", i, r.Path)
		}
		if seen[r.Path] {
			return nil, fmt.Errorf("route %d: duplicate path %q", i, r.Path)
		}
		seen[r.Path] = true

		if r.Redirect != "" && r.View != "" {
			return nil, fmt.Errorf("route %q: redirect routes cannot render a view", r.Path)
		}
		if r.Redirect == "" && r.View == "" {
			return nil, fmt.Errorf("route %q: needs a view or a redirect", r.Path)
		}
		if r.Name != "" {
			if _, dup := t.byName[r.Name]; dup {
				return nil, fmt.Errorf("route %q: duplicate name %q", r.Path, r.Name)
			}
			t.byName[r.Name] = len(t.routes)
		}
		t.routes = append(t.routes, compiled{Route: r, segments: splitPath(r.Path)})
	}

	for _, r := range t.routes {
		if r.Redirect == "" {
			continue
		}
		if _, err := t.resolve(r.Redirect); err != nil {
			return nil, fmt.Errorf("route %q: redirect target %q: %w", r.Path, r.Redirect, err)
		}
	}
	return t, nil
}

// Routes returns a copy of the table's routes.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Route
	}
	return out
}

// Base returns the mount prefix, or "" when the table is mounted at root.
func (t *Table) Base() string {
	return t.base
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name string) (Route, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[idx].Route, true
}

// Href builds the full path for a named route, escaping params.
func (t *Table) Href(name string, params map[string]string) (string, error) {
	idx, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	r := t.routes[idx]
	parts := make([]string, 0, len(r.segments))
	for _, seg := range r.segments {
		if key, isParam := strings.CutPrefix(seg, ":"); isParam {
			value := params[key]
			if value == "" {
				return "", fmt.Errorf("%w: %q for route %q", ErrMissingParam, key, name)
			}
			parts = append(parts, url.PathEscape(value))
			continue
		}
		parts = append(parts, seg)
	}
	return t.base + "/" + strings.Join(parts, "/"), nil
}

func normalizeBase(base string) string {
	trimmed := strings.Trim(strings.TrimSpace(base), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
