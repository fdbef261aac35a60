package routes

import (
	"fmt"
	"net/url"
	"strings"
)

// Match is the result of resolving a path.
type Match struct {
	Route          Route
	Path           string            // matched path relative to the base, after redirects
	Params         map[string]string // decoded path params
	Props          map[string]string // params forwarded to the view; nil unless Route.Props
	Query          url.Values
	RedirectedFrom string // original path when a redirect was followed
}

// Name returns the matched route's name.
func (m Match) Name() string { return m.Route.Name }

// View returns the matched route's view.
func (m Match) View() View { return m.Route.View }

// Resolve maps a requested path (optionally carrying the mount base, a query
// string and a fragment) to a route, following redirects.
func (t *Table) Resolve(raw string) (Match, error) {
	p, _, _ := strings.Cut(strings.TrimSpace(raw), "#")
	p, rawQuery, _ := strings.Cut(p, "?")

	rel, ok := t.stripBase(p)
	if !ok {
		return Match{}, fmt.Errorf("%w: %q", ErrNotFound, raw)
	}

	m, err := t.resolve(rel)
	if err != nil {
		return Match{}, err
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	m.Query = values
	return m, nil
}

func (t *Table) stripBase(p string) (string, bool) {
	if p == "" {
		p = "/"
	}
	if t.base == "" {
		return p, true
	}
	if p == t.base {
		return "/", true
	}
	rest, ok := strings.CutPrefix(p, t.base+"/")
	if !ok {
		return "", false
	}
	return "/" + rest, true
}

func (t *Table) resolve(p string) (Match, error) {
	origin := p
	visited := make(map[string]bool)
	for hops := 0; ; hops++ {
		r, params, ok := t.match(p)
		if !ok {
			return Match{}, fmt.Errorf("%w: %q", ErrNotFound, p)
		}
		if r.Redirect == "" {
			m := Match{Route: r, Path: p, Params: params}
			if r.Props {
				m.Props = make(map[string]string, len(params))
				for k, v := range params {
					m.Props[k] = v
				}
			}
			if p != origin {
				m.RedirectedFrom = origin
			}
			return m, nil
		}
		if visited[r.Path] || hops >= maxRedirects {
			return Match{}, fmt.Errorf("%w: %q", ErrRedirectLoop, origin)
		}
		visited[r.Path] = true
		p = r.Redirect
	}
}

// match returns the first route, in declaration order, matching p.
func (t *Table) match(p string) (Route, map[string]string, bool) {
	parts := splitPath(p)
	for _, r := range t.routes {
		if len(r.segments) != len(parts) {
			continue
		}
		params := map[string]string{}
		matched := true
		for i, seg := range r.segments {
			part, err := url.PathUnescape(parts[i])
			if err != nil {
				matched = false
				break
			}
			if key, isParam := strings.CutPrefix(seg, ":"); isParam {
				if part == "" {
					matched = false
					break
				}
				params[key] = part
				continue
			}
			if seg != part {
				matched = false
				break
			}
		}
		if matched {
			return r.Route, params, true
		}
	}
	return Route{}, nil, false
}
