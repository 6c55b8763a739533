// Package render defines the capability contract for a controllable
// page-rendering agent, and ships a Chrome DevTools implementation of it.
// The resolution state machine and the source discovery client depend only
// on the contract, never on a concrete automation engine.
package render

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=render.go -destination=mocks/mock.go -package=mocks

var (
	// ErrNotFound is returned when a locator matches nothing on the page.
	ErrNotFound = errors.New("render: locator not found")
	// ErrNoWindow is returned by WaitForNewWindow when no window appeared
	// within the wait.
	ErrNoWindow = errors.New("render: no new window")
)

// Window is a browser window or tab opened as a side effect of a click.
type Window interface {
	URL() string
}

// Session is a live rendering session. Sessions are expensive; callers
// acquire them through a bounded pool and must Close them when done.
type Session interface {
	// Navigate loads the given URL and waits for the document to load.
	Navigate(ctx context.Context, url string) error

	// CurrentURL reports the URL of the page currently loaded.
	CurrentURL() string

	// Click clicks the first element matching the locator. Returns
	// ErrNotFound when the locator matches nothing.
	Click(ctx context.Context, locator string) error

	// WaitForNewWindow blocks until a new window opens or the timeout
	// elapses, in which case it returns ErrNoWindow.
	WaitForNewWindow(ctx context.Context, timeout time.Duration) (Window, error)

	// CloseWindow closes a window previously returned by WaitForNewWindow.
	CloseWindow(ctx context.Context, w Window) error

	// ReadAttribute reads an attribute from the first element matching the
	// locator. Returns ErrNotFound when the locator matches nothing.
	ReadAttribute(ctx context.Context, locator, attr string) (string, error)

	// ReadText reads the text content of the first element matching the
	// locator. Returns ErrNotFound when the locator matches nothing.
	ReadText(ctx context.Context, locator string) (string, error)

	// ReadAttributeAll reads an attribute from every element matching the
	// locator, in document order.
	ReadAttributeAll(ctx context.Context, locator, attr string) ([]string, error)

	// ReadTextAll reads the text content of every element matching the
	// locator, in document order.
	ReadTextAll(ctx context.Context, locator string) ([]string, error)

	// ObservedRequests returns the URLs of network requests observed so far
	// whose URL matches the pattern, most recent last.
	ObservedRequests(pattern string) []string

	// Close tears the session down and releases its resources.
	Close(ctx context.Context) error
}

// Factory creates sessions on demand.
type Factory interface {
	NewSession(ctx context.Context) (Session, error)
}
