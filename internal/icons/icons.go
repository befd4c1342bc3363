// Package icons resolves the opaque icon tags carried by section
// descriptors into something a host can draw.
package icons

import "github.com/growthlab/growthnav/internal/model"

// Fallback is drawn for tags the resolver does not know.
const Fallback = "•"

// Resolver maps icon tags to renderable assets.
type Resolver interface {
	Resolve(ref model.IconRef) string
}

// Set is a static tag → asset table.
type Set map[model.IconRef]string

// Resolve returns the asset for ref, or Fallback.
func (s Set) Resolve(ref model.IconRef) string {
	if g, ok := s[ref]; ok {
		return g
	}
	return Fallback
}

// Glyphs returns single-cell glyphs suitable for terminals and plain HTML.
func Glyphs() Set {
	return Set{
		model.IconDashboard:    "▦",
		model.IconAnalytics:    "▥",
		model.IconPredictions:  "✦",
		model.IconInventory:    "▣",
		model.IconHome:         "⌂",
		model.IconChevronLeft:  "«",
		model.IconChevronRight: "»",
		model.IconMoon:         "☾",
		model.IconSun:          "☀",
	}
}
