package model

// Shared defaults used by both the terminal and browser binaries.
const (
	DefaultTitle           = "Predictive Business Analysis for Growth"
	DefaultExternalURL     = "https://garuda-sastra.netlify.app/"
	DefaultExternalLabel   = "Home"
	DefaultExternalTooltip = "Open Cricbuzz"
	DefaultSkin            = "default"
	DefaultLogLevel        = "info"
	DefaultAPIAddr         = "127.0.0.1:3000"
)

// DefaultSections returns the sections of the growth dashboard in display order.
func DefaultSections() []SectionDescriptor {
	return []SectionDescriptor{
		{ID: "dashboard", Label: "Dashboard", Icon: IconDashboard},
		{ID: "analytics", Label: "Analytics", Icon: IconAnalytics},
		{ID: "predictions", Label: "Predictions", Icon: IconPredictions},
		{ID: "inventory", Label: "Demand & Inventory", Icon: IconInventory},
	}
}

// DefaultExternalLink returns the external-navigation destination used when
// none is configured.
func DefaultExternalLink() ExternalLink {
	return ExternalLink{
		URL:     DefaultExternalURL,
		Label:   DefaultExternalLabel,
		Tooltip: DefaultExternalTooltip,
	}
}
