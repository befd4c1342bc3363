package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/growthlab/growthnav/internal/diagnostics"
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
	"github.com/growthlab/growthnav/internal/skin"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestSidebar(t *testing.T, navigator model.Navigator) (*Sidebar, *diagnostics.Recorder) {
	t.Helper()
	rec := diagnostics.NewRecorder(8)
	s, err := NewSidebar(SidebarDeps{
		Registry:     nav.MustRegistry(model.DefaultSections()),
		Theme:        nav.NewThemeContext(false),
		Navigator:    navigator,
		Reporter:     rec,
		ExternalLink: model.DefaultExternalLink(),
		Title:        model.DefaultTitle,
	})
	if err != nil {
		t.Fatalf("NewSidebar: %v", err)
	}
	return s, rec
}

func rowIndex(t *testing.T, rows []sidebarRow, kind sidebarRowKind, section int) int {
	t.Helper()
	for i, r := range rows {
		if r.kind == kind && (kind != sidebarRowSection || r.section == section) {
			return i
		}
	}
	t.Fatalf("row kind %d section %d not found", kind, section)
	return -1
}

func TestSidebar_SectionKeyEmitsNavigateMsg(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	before := s.Panel().State()

	cmd := s.Update(runeKey("2"))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if diff := cmp.Diff(NavigateMsg{ID: "analytics"}, cmd()); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
	if got := s.Panel().State(); got != before {
		t.Errorf("display state changed: %+v -> %+v", before, got)
	}
}

func TestSidebar_SectionKeyOutOfRangeIgnored(t *testing.T) {
	t.Parallel()

	s, rec := newTestSidebar(t, nil)
	if cmd := s.Update(runeKey("9")); cmd != nil {
		t.Fatal("key beyond the registry should do nothing")
	}
	if rec.Len() != 0 {
		t.Fatalf("reports = %d, want 0", rec.Len())
	}
}

func TestSidebar_CursorActivation(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})

	cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if got := cmd(); got != (NavigateMsg{ID: "predictions"}) {
		t.Fatalf("message = %#v, want predictions", got)
	}
}

func TestSidebar_CursorOnLinkHovers(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	for i := 0; i < 4; i++ {
		s.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if !s.Panel().State().LinkHovered {
		t.Fatal("cursor on the external link should hover it")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s.Panel().State().LinkHovered {
		t.Fatal("moving past the link should clear hover")
	}
}

func TestSidebar_ToggleKeys(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	if s.Width() != sidebarWidthExpanded {
		t.Fatalf("initial width = %d", s.Width())
	}

	s.Update(runeKey("b"))
	if !s.Panel().State().Collapsed || s.Width() != sidebarWidthCollapsed {
		t.Fatal("b should collapse the sidebar")
	}

	s.Update(runeKey("t"))
	state, global := s.Panel().Snapshot()
	if !state.DarkTheme || !global {
		t.Fatalf("t should switch to dark: local=%v global=%v", state.DarkTheme, global)
	}
}

func TestSidebar_MouseClickAndHover(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	const height = 30
	s.View(height, "dashboard", newStyles(skin.Default().Light))
	rows := s.layout(height - 2)

	analytics := rowIndex(t, rows, sidebarRowSection, 1)
	cmd := s.Update(tea.MouseMsg{X: 3, Y: analytics + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil {
		t.Fatal("click on a section should navigate")
	}
	if got := cmd(); got != (NavigateMsg{ID: "analytics"}) {
		t.Fatalf("message = %#v", got)
	}

	link := rowIndex(t, rows, sidebarRowExternal, 0)
	s.Update(tea.MouseMsg{X: 3, Y: link + 1, Action: tea.MouseActionMotion})
	if !s.Panel().State().LinkHovered {
		t.Fatal("pointer over the link should hover it")
	}
	s.Update(tea.MouseMsg{X: sidebarWidthExpanded + 5, Y: link + 1, Action: tea.MouseActionMotion})
	if s.Panel().State().LinkHovered {
		t.Fatal("pointer leaving the sidebar should clear hover")
	}

	collapse := rowIndex(t, rows, sidebarRowCollapse, 0)
	s.Update(tea.MouseMsg{X: 3, Y: collapse + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !s.Panel().State().Collapsed {
		t.Fatal("click on the chevron should collapse")
	}
}

func TestSidebar_LayoutCollapsedHidesLabels(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	s.Panel().ToggleCollapsed()

	for _, row := range s.layout(20) {
		if row.kind == sidebarRowSection && len([]rune(row.text)) > sidebarWidthCollapsed-4 {
			t.Errorf("collapsed row too wide: %q", row.text)
		}
		if row.text == model.DefaultTitle {
			t.Error("title should be hidden when collapsed")
		}
	}
	if s.Tooltip() != "" {
		t.Fatal("tooltip should need hover")
	}
	s.Panel().SetLinkHovered(true)
	if s.Tooltip() != model.DefaultExternalTooltip {
		t.Fatalf("Tooltip() = %q", s.Tooltip())
	}
}

func TestSidebar_LayoutFillsHeight(t *testing.T) {
	t.Parallel()

	s, _ := newTestSidebar(t, nil)
	rows := s.layout(28)
	if len(rows) != 28 {
		t.Fatalf("rows = %d, want 28", len(rows))
	}
	if rows[len(rows)-1].kind != sidebarRowTheme {
		t.Fatal("theme control should be pinned to the bottom")
	}
}

func TestSidebar_OpenLinkWithoutBrowser(t *testing.T) {
	t.Parallel()

	s, rec := newTestSidebar(t, nil)
	if cmd := s.Update(runeKey("o")); cmd != nil {
		t.Fatal("failed navigation should not produce a command")
	}
	last, ok := rec.Last()
	if !ok || last.Kind != diagnostics.KindNavigationUnavailable {
		t.Fatalf("last report = %+v, %v", last, ok)
	}
}

func TestSidebar_OpenLink(t *testing.T) {
	t.Parallel()

	var got []string
	s, _ := newTestSidebar(t, model.NavigatorFunc(func(_ context.Context, url string) error {
		got = append(got, url)
		return nil
	}))

	cmd := s.Update(runeKey("o"))
	if cmd == nil {
		t.Fatal("expected NavigatedAwayMsg command")
	}
	if msg := cmd(); msg != (NavigatedAwayMsg{URL: model.DefaultExternalURL}) {
		t.Fatalf("message = %#v", msg)
	}
	if len(got) != 1 {
		t.Fatalf("navigations = %v", got)
	}
}
