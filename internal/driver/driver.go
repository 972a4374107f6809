// Package driver defines the browser capability surface the execution engine
// consumes, with a rod-backed implementation and a deterministic fake for
// tests. The engine never touches a browser library directly.
package driver

import (
	"errors"
	"strings"
	"time"

	"github.com/v0xg/stepwise/internal/action"
)

// Error kinds surfaced by driver implementations. The engine never branches
// on these; they exist so failure messages stay classifiable.
var (
	ErrNotFound        = errors.New("element not found")
	ErrTimeout         = errors.New("timed out")
	ErrNotInteractable = errors.New("element not interactable")
)

// IsXPath classifies a selector string's addressing scheme. Selectors
// starting with // or (// are node-path queries; everything else is CSS.
func IsXPath(selector string) bool {
	return strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "(//")
}

// Element is a handle to a located page element.
type Element interface {
	ScrollIntoView() error
	// MoveAndClick moves the pointer to the element center displaced by the
	// given offset, then synthesizes a click.
	MoveAndClick(offsetX, offsetY float64) error
	// TypeRune synthesizes a single keystroke into the element's document.
	TypeRune(r rune) error
	// Clear removes the element's current text content.
	Clear() error
	Text() (string, error)
	Visible() (bool, error)
}

// ScriptResult is the return value of an executed script: a printable form
// plus its JavaScript truthiness.
type ScriptResult struct {
	Value  string
	Truthy bool
}

// Driver is the capability surface of a browser-automation session.
type Driver interface {
	// Locate resolves a selector to an element, waiting up to timeout for it
	// to appear. Returns an error wrapping ErrNotFound when it never does.
	Locate(selector string, timeout time.Duration) (Element, error)
	Exists(selector string) (bool, error)
	Visible(selector string) (bool, error)
	CurrentURL() (string, error)
	RunScript(expr string) (ScriptResult, error)
	// PressEnter synthesizes an Enter keypress to whatever holds focus.
	PressEnter() error
	// WaitElement blocks until the element reaches the given state or the
	// timeout elapses, in which case an error wrapping ErrTimeout returns.
	WaitElement(selector string, state action.ElementState, timeout time.Duration) error
	// WaitEvent blocks until the document reaches the given lifecycle event.
	WaitEvent(event action.PageEvent, timeout time.Duration) error
	// WaitURLChange blocks until the page URL differs from fromURL.
	WaitURLChange(fromURL string, timeout time.Duration) error
}
