package model

import "context"

// Navigator replaces the current browsing context with url. It is the only
// capability through which the panel leaves the application.
type Navigator interface {
	NavigateAway(ctx context.Context, url string) error
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(ctx context.Context, url string) error

func (f NavigatorFunc) NavigateAway(ctx context.Context, url string) error {
	return f(ctx, url)
}

// Reporter receives recoverable failures (invalid section requests,
// unavailable navigation) for diagnostics. Implementations must not block.
type Reporter interface {
	Report(err error)
}

// ThemeReader exposes the shared dark-mode flag to presentation code.
type ThemeReader interface {
	Dark() bool
}
