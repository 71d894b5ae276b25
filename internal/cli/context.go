package cli

import (
	"time"

	"github.com/nateharris/habitflow/internal/storage"
)

// Context carries the dependencies every command runs against. Now is a
// function so tests can pin the clock.
type Context struct {
	Store storage.Provider
	Now   func() time.Time
}

// FormatRelativeTime renders a millisecond timestamp as a short relative
// string ("Just now", "5m ago", "Yesterday", "12d ago").
func (c *Context) FormatRelativeTime(ts int64) string {
	return formatRelativeTime(ts, c.Now())
}
