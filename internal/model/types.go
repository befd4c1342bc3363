package model

// SectionID identifies a top-level navigable area of the host application.
// Only ids present in the section registry are valid.
type SectionID string

// IconRef is an opaque icon tag. Hosts resolve it to a glyph, an SVG, or
// whatever asset their surface can draw.
type IconRef string

// Icon tags used by the default sections and the panel chrome.
const (
	IconDashboard    IconRef = "layout-dashboard"
	IconAnalytics    IconRef = "bar-chart-2"
	IconPredictions  IconRef = "brain"
	IconInventory    IconRef = "package"
	IconHome         IconRef = "home"
	IconChevronLeft  IconRef = "chevron-left"
	IconChevronRight IconRef = "chevron-right"
	IconMoon         IconRef = "moon"
	IconSun          IconRef = "sun"
)

// SectionDescriptor describes one entry of the navigation panel.
// Slice order is display order and carries no other meaning.
type SectionDescriptor struct {
	ID    SectionID `mapstructure:"id" yaml:"id" json:"id"`
	Label string    `mapstructure:"label" yaml:"label" json:"label"`
	Icon  IconRef   `mapstructure:"icon" yaml:"icon" json:"icon"`
}

// DisplayState is the panel-local, purely cosmetic state. The zero value is
// the initial state: expanded, light theme, link not hovered.
type DisplayState struct {
	Collapsed   bool `json:"collapsed"`
	DarkTheme   bool `json:"dark_theme"`
	LinkHovered bool `json:"link_hovered"`
}

// ExternalLink is the destination of the panel's external-navigation control.
type ExternalLink struct {
	URL     string `mapstructure:"url" json:"url"`
	Label   string `mapstructure:"label" json:"label"`
	Tooltip string `mapstructure:"tooltip" json:"tooltip"`
}
