package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/growthlab/growthnav/internal/nav"
)

type browsingContextKey struct{}

// withBrowsingContext attaches the request's response writer as the browsing
// context the panel may replace.
func withBrowsingContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, browsingContextKey{}, c)
}

// redirectNavigator replaces the browser's current page with a 303 redirect
// on the same request, so no new tab is created.
type redirectNavigator struct{}

func (redirectNavigator) NavigateAway(ctx context.Context, url string) error {
	c, ok := ctx.Value(browsingContextKey{}).(*gin.Context)
	if !ok || c == nil {
		return nav.ErrNoBrowsingContext
	}
	if c.Writer.Written() {
		return nav.ErrContextReplaced
	}
	c.Redirect(http.StatusSeeOther, url)
	return nil
}
