package nav

import (
	"errors"
	"fmt"

	"github.com/growthlab/growthnav/internal/model"
)

// Causes wrapped by NavigationUnavailableError.
var (
	// ErrNoBrowsingContext means there is nothing to navigate: no navigator
	// was injected, or the request carries no browsing context.
	ErrNoBrowsingContext = errors.New("no browsing context")
	// ErrContextReplaced means the browsing context already navigated away.
	ErrContextReplaced = errors.New("browsing context already replaced")
)

// ConfigurationError reports a malformed section registry. It is fatal at
// startup.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid section registry: " + e.Reason
}

// InvalidSectionError reports a navigation request for an id that is not in
// the registry.
type InvalidSectionError struct {
	ID model.SectionID
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", string(e.ID))
}

// NavigationUnavailableError reports that the external-navigation side effect
// could not run.
type NavigationUnavailableError struct {
	URL string
	Err error
}

func (e *NavigationUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("navigation to %s unavailable", e.URL)
	}
	return fmt.Sprintf("navigation to %s unavailable: %v", e.URL, e.Err)
}

func (e *NavigationUnavailableError) Unwrap() error { return e.Err }
