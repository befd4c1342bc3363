package tui

import "github.com/growthlab/growthnav/internal/model"

// NavigateMsg carries a navigation intent from the sidebar to the App,
// which owns the active section.
type NavigateMsg struct {
	ID model.SectionID
}

// NavigatedAwayMsg is sent after the external link replaced the session.
type NavigatedAwayMsg struct {
	URL string
}
