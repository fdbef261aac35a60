package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// connectionState summarizes the snapshot for the header badge.
func (m Model) connectionState() string {
	switch {
	case m.snapshot.IsOffline():
		return "offline"
	case m.loading:
		return "loading"
	case m.snapshot.LastError != nil:
		return "stale"
	default:
		return "ok"
	}
}

// renderHeader renders the status bar: logo, current path, view and freshness.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	state := m.connectionState()
	parts := []string{
		bg.Render("liftlog", styles.Logo),
		styles.StatusStyle(state).Render(strings.ToUpper(state)),
	}

	if m.snapshot.HasTarget {
		title := m.snapshot.Page.Title
		if title == "" {
			title = string(m.snapshot.Target.View())
		}
		parts = append(parts,
			bg.Render(title, styles.Text.Bold(true)),
			bg.Render(truncateMiddle(m.path, 40), styles.AccentText),
		)
	}

	if !m.snapshot.LastUpdated.IsZero() {
		age := humanizeDuration(time.Since(m.snapshot.LastUpdated))
		parts = append(parts, bg.Render("updated "+age, styles.MutedText))
	}
	if m.baseURL != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.baseURL, 40), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the key hints, or the goto prompt while it is open.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.prompting {
		return styles.Footer.Width(m.width).Render(m.input.View())
	}

	hints := []struct{ key, desc string }{
		{"1", "Exercises"},
		{"2", "History"},
		{"3", "Manage"},
		{":", "Go to"},
		{"r", "Reload"},
		{"?", "Help"},
		{"q", "Quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render(h.key, styles.WarningText)+bg.Space()+bg.Render(h.desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderStatusLine renders the last navigation or load message.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	if m.status == "" {
		return ""
	}
	style := styles.MutedText
	if m.statusErr {
		style = styles.DangerText
	}
	return lipgloss.NewStyle().Width(m.width).Render(style.Render(truncate(m.status, max(m.width-1, 20))))
}
