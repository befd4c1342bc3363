package tui

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/browser"

	"github.com/growthlab/growthnav/internal/nav"
)

// BrowserNavigator hands the URL to the system browser. A terminal session
// can only be replaced once: after a successful hand-off the App quits and
// further calls report nav.ErrContextReplaced.
type BrowserNavigator struct {
	open func(url string) error

	mu    sync.Mutex
	spent bool
}

// NewBrowserNavigator opens URLs with the platform opener. The opener's own
// output is discarded so it cannot corrupt the terminal UI.
func NewBrowserNavigator() *BrowserNavigator {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserNavigator{open: browser.OpenURL}
}

func (b *BrowserNavigator) NavigateAway(ctx context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.spent {
		return nav.ErrContextReplaced
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.open(url); err != nil {
		return err
	}
	b.spent = true
	return nil
}
