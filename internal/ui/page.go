package ui

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/five82/liftlog/internal/fitness"
)

// row is one selectable document on the current page.
type row struct {
	section string
	doc     fitness.Document
}

// rows flattens the page's sections in display order.
func (m Model) rows() []row {
	var out []row
	for _, s := range m.snapshot.Page.Sections {
		for _, doc := range s.Items {
			out = append(out, row{section: s.Title, doc: doc})
		}
	}
	return out
}

// labelKeys are tried in order for a document's headline.
var labelKeys = []string{"name", "title", "exerciseName", "date", "startTime"}

// summarize renders a document as "label  key=value ...", with scalar fields
// in key order. Nested objects and arrays are skipped.
func summarize(doc fitness.Document) string {
	label := ""
	used := map[string]bool{}
	for _, k := range labelKeys {
		if v := doc.String(k); v != "" {
			label = v
			used[k] = true
			break
		}
	}
	if label == "" {
		label = doc.ID()
		used["id"] = true
	}

	var b strings.Builder
	b.WriteString(label)
	for _, k := range slices.Sorted(maps.Keys(doc)) {
		if used[k] {
			continue
		}
		v := doc.String(k)
		if v == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(v)
	}
	return b.String()
}

// renderContent renders the page sections with the selected row highlighted.
func (m Model) renderContent() string {
	styles := m.theme.Styles()

	if !m.snapshot.HasPage {
		switch {
		case m.snapshot.LastError != nil:
			return styles.DangerText.Render("Could not load page: " + m.snapshot.LastError.Error())
		case m.loading:
			return styles.MutedText.Render("Loading...")
		default:
			return styles.MutedText.Render("Nothing loaded")
		}
	}

	width := max(m.width-4, 20)
	var b strings.Builder
	idx := 0
	for i, s := range m.snapshot.Page.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.SectionTitle.Render(s.Title))
		b.WriteString(styles.FaintText.Render("  " + itemCount(len(s.Items))))
		b.WriteString("\n")
		if len(s.Items) == 0 {
			b.WriteString(styles.MutedText.Render("  (empty)"))
			b.WriteString("\n")
		}
		for _, doc := range s.Items {
			line := truncate(summarize(doc), width)
			if idx == m.selected {
				b.WriteString(styles.Selected.Render("> " + line))
			} else {
				b.WriteString(styles.Text.Render("  " + line))
			}
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	if line := m.renderStatusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderContent())
	return b.String()
}
