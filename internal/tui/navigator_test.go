package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/growthlab/growthnav/internal/nav"
)

func TestBrowserNavigator_OnlyOnce(t *testing.T) {
	t.Parallel()

	var opened []string
	b := &BrowserNavigator{open: func(url string) error {
		opened = append(opened, url)
		return nil
	}}

	if err := b.NavigateAway(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("first NavigateAway: %v", err)
	}
	if err := b.NavigateAway(context.Background(), "https://example.com"); !errors.Is(err, nav.ErrContextReplaced) {
		t.Fatalf("second NavigateAway = %v, want ErrContextReplaced", err)
	}
	if len(opened) != 1 {
		t.Fatalf("opened = %v, want one", opened)
	}
}

func TestBrowserNavigator_OpenerFailureCanRetry(t *testing.T) {
	t.Parallel()

	fail := true
	b := &BrowserNavigator{open: func(string) error {
		if fail {
			return errors.New("xdg-open not found")
		}
		return nil
	}}

	if err := b.NavigateAway(context.Background(), "u"); err == nil {
		t.Fatal("expected opener error")
	}
	fail = false
	if err := b.NavigateAway(context.Background(), "u"); err != nil {
		t.Fatalf("later click should still work: %v", err)
	}
}

func TestBrowserNavigator_CanceledContext(t *testing.T) {
	t.Parallel()

	called := false
	b := &BrowserNavigator{open: func(string) error {
		called = true
		return nil
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := b.NavigateAway(ctx, "u"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if called {
		t.Fatal("opener must not run on a canceled context")
	}
}
