package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 40
	minHeight = 12
)

// View renders the sidebar, the active page, and the status line.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing..."
	}

	if modal := a.TopModal(); modal != nil {
		return modal.View(a.width, a.height)
	}

	if a.width < minWidth || a.height < minHeight {
		return "Terminal too small. Resize to at least 40x12."
	}

	st := a.currentStyles()
	statusLineHeight := 1
	bodyHeight := a.height - statusLineHeight

	sidebar := a.sidebar.View(bodyHeight, a.active, st)
	contentWidth := max(a.width-a.sidebar.Width(), 1)

	page := a.pages[a.active]
	content := page.View(contentWidth, bodyHeight, st.pal)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusLine(st))
}

// renderStatusLine shows the active section, the link tooltip or the latest
// diagnostic, and key hints.
func (a *App) renderStatusLine(st styles) string {
	w := a.width

	left := " "
	if sec, ok := a.registry.Lookup(a.active); ok {
		left = " [" + sec.Label + "]"
	}

	var middle string
	middleStyle := st.statusLine
	if tip := a.sidebar.Tooltip(); tip != "" {
		middle = tip
		middleStyle = st.tooltip
	} else if last, ok := a.recorder.Last(); ok {
		middle = "! " + last.Err.Error()
		middleStyle = st.errorText
	}

	right := "?: Help • q: Quit "
	if w < 60 {
		right = "? q "
	}

	leftR := st.statusLine.Render(left)
	rightR := st.statusLine.Render(right)
	space := w - lipgloss.Width(leftR) - lipgloss.Width(rightR)
	if space < 0 {
		space = 0
	}

	var middleR string
	if middle != "" && space > 4 {
		if lipgloss.Width(middle) > space-2 {
			middle = truncate(middle, space-2)
		}
		middleR = st.statusLine.Render(" ") + middleStyle.Render(middle) + st.statusLine.Render(" ")
	}
	gap := space - lipgloss.Width(middleR)
	if gap < 0 {
		gap = 0
	}

	return leftR + middleR + st.statusLine.Render(strings.Repeat(" ", gap)) + rightR
}

func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "~"
}
