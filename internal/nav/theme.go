package nav

import "sync"

// ThemeContext holds the application-wide dark-mode flag. One instance is
// shared by reference between the panel and every other presentation
// component; it is safe for concurrent use.
type ThemeContext struct {
	mu   sync.RWMutex
	dark bool
}

// NewThemeContext returns a context whose flag starts at dark.
func NewThemeContext(dark bool) *ThemeContext {
	return &ThemeContext{dark: dark}
}

func (t *ThemeContext) Dark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

func (t *ThemeContext) SetDark(dark bool) {
	t.mu.Lock()
	t.dark = dark
	t.mu.Unlock()
}

// Toggle flips the flag and returns the new value.
func (t *ThemeContext) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	return t.dark
}
