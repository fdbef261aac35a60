package ui

import (
	"strings"
	"testing"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Dracula", "Nightfox", "Kanagawa", "Slate"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Dracula" {
		t.Fatalf("ThemeNames() should return a copy")
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nightfox" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != defaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %s (fallback)", unknown.Name, defaultThemeName)
	}
}

func TestThemesDefineEveryConnectionState(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, state := range []string{"ok", "loading", "stale", "offline"} {
			if th.StatusColors[state] == "" {
				t.Fatalf("theme %s has no color for %q", name, state)
			}
		}
	}
}

func TestTruncateHelpers(t *testing.T) {
	if got := truncate("  abcdefgh ", 5); got != "ab..." {
		t.Fatalf("truncate = %q, want %q", got, "ab...")
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Fatalf("truncate short = %q, want abc", got)
	}
	got := truncateMiddle("/workout/0123456789", 9)
	if len([]rune(got)) != 9 || !strings.HasPrefix(got, "/wor") || !strings.HasSuffix(got, "6789") {
		t.Fatalf("truncateMiddle = %q, want 9 runes keeping both ends", got)
	}
}
