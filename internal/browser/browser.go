// Package browser owns the browser session: launching Chromium, attaching a
// page, and settling navigation. The engine talks to the session only
// through the driver capability surface.
package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Options configures the session.
type Options struct {
	Width      int
	Height     int
	Headless   bool
	ProfileDir string // Chrome/Chromium profile for authenticated sessions
	Timeout    time.Duration
}

// Session wraps a connected browser and its page for reuse.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
}

// Open launches a browser, navigates to url, and waits for the page to
// settle (load event plus a bounded network-idle window).
func Open(url string, opts Options) (*Session, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	path, _ := launcher.LookPath()
	l := launcher.New().Bin(path).Headless(opts.Headless)
	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		b.Close()
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	if err := page.Timeout(opts.Timeout).WaitLoad(); err != nil {
		b.Close()
		return nil, fmt.Errorf("wait load: %w", err)
	}
	// Bounded idle wait; persistent connections must not hang the run.
	page.Timeout(5 * time.Second).WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()

	return &Session{browser: b, page: page}, nil
}

// Page returns the attached rod page.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Close releases the page and browser.
func (s *Session) Close() {
	if s.page != nil {
		s.page.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
}
