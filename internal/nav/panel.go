package nav

import (
	"context"
	"fmt"
	"sync"

	"github.com/growthlab/growthnav/internal/model"
)

// Deps wires a Panel to its host. Registry is required; everything else has
// a usable zero value.
type Deps struct {
	Registry     *Registry
	Theme        *ThemeContext // shared with sibling components; created if nil
	Navigator    model.Navigator
	Reporter     model.Reporter
	ExternalLink model.ExternalLink
	// OnNavigate receives navigation intents. The host owns the active
	// section and decides what to do with them.
	OnNavigate func(model.SectionID)
}

// Entry is one rendered section row.
type Entry struct {
	Section model.SectionDescriptor
	Active  bool
}

// Panel is the navigation panel core: it validates and forwards section
// requests, owns the display state, and performs the external navigation.
type Panel struct {
	registry   *Registry
	theme      *ThemeContext
	navigator  model.Navigator
	reporter   model.Reporter
	link       model.ExternalLink
	onNavigate func(model.SectionID)

	mu    sync.Mutex
	state model.DisplayState
}

// NewPanel creates a panel in the initial display state. The local theme bit
// starts at the shared flag's value so the two never disagree.
func NewPanel(deps Deps) (*Panel, error) {
	if deps.Registry == nil {
		return nil, &ConfigurationError{Reason: "panel has no section registry"}
	}
	theme := deps.Theme
	if theme == nil {
		theme = NewThemeContext(false)
	}
	reporter := deps.Reporter
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Panel{
		registry:   deps.Registry,
		theme:      theme,
		navigator:  deps.Navigator,
		reporter:   reporter,
		link:       deps.ExternalLink,
		onNavigate: deps.OnNavigate,
		state:      model.DisplayState{DarkTheme: theme.Dark()},
	}, nil
}

func (p *Panel) Registry() *Registry { return p.registry }
func (p *Panel) Theme() *ThemeContext { return p.theme }
func (p *Panel) ExternalLink() model.ExternalLink { return p.link }

// SelectSection emits one navigation intent for id. Unknown ids are reported
// and returned as *InvalidSectionError without emitting anything. Repeated
// requests for the same id are not deduplicated.
func (p *Panel) SelectSection(id model.SectionID) error {
	if !p.registry.Contains(id) {
		err := &InvalidSectionError{ID: id}
		p.reporter.Report(err)
		return err
	}
	if p.onNavigate != nil {
		p.onNavigate(id)
	}
	return nil
}

// OpenExternalLink asks the navigator to replace the current browsing context
// with the configured destination. It is attempted exactly once per call.
// Failures are reported and returned as *NavigationUnavailableError; they
// never panic.
func (p *Panel) OpenExternalLink(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	url := p.link.URL
	if p.navigator == nil {
		return p.unavailable(url, ErrNoBrowsingContext)
	}
	if url == "" {
		return p.unavailable(url, fmt.Errorf("no destination configured"))
	}
	if err := p.navigate(ctx, url); err != nil {
		return p.unavailable(url, err)
	}
	return nil
}

func (p *Panel) navigate(ctx context.Context, url string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("navigator panicked: %v", r)
		}
	}()
	return p.navigator.NavigateAway(ctx, url)
}

func (p *Panel) unavailable(url string, cause error) error {
	err := &NavigationUnavailableError{URL: url, Err: cause}
	p.reporter.Report(err)
	return err
}

// ToggleCollapsed flips the collapsed flag and returns the new value.
func (p *Panel) ToggleCollapsed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Collapsed = !p.state.Collapsed
	return p.state.Collapsed
}

// ToggleTheme flips the shared theme flag and mirrors it into the local bit
// inside one critical section. It returns the new value.
func (p *Panel) ToggleTheme() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.DarkTheme = p.theme.Toggle()
	return p.state.DarkTheme
}

func (p *Panel) SetLinkHovered(hovered bool) {
	p.mu.Lock()
	p.state.LinkHovered = hovered
	p.mu.Unlock()
}

// State returns a copy of the display state.
func (p *Panel) State() model.DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Snapshot returns the display state together with the shared theme flag,
// read under the same lock ToggleTheme holds.
func (p *Panel) Snapshot() (model.DisplayState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.theme.Dark()
}

// Entries returns one row per registered section, highlighting active.
func (p *Panel) Entries(active model.SectionID) []Entry {
	entries := make([]Entry, 0, p.registry.Len())
	for _, s := range p.registry.sections {
		entries = append(entries, Entry{Section: s, Active: s.ID == active})
	}
	return entries
}

type discardReporter struct{}

func (discardReporter) Report(error) {}
