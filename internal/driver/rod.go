package driver

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"

	"github.com/v0xg/stepwise/internal/action"
)

// pollInterval is the re-check cadence for bounded waits.
const pollInterval = 200 * time.Millisecond

// Rod implements Driver on top of a rod page.
type Rod struct {
	page *rod.Page
}

// NewRod wraps an attached page. The caller owns the browser lifecycle.
func NewRod(page *rod.Page) *Rod {
	return &Rod{page: page}
}

// has performs a single non-waiting lookup in the selector's scheme.
func (d *Rod) has(selector string) (bool, *rod.Element, error) {
	if IsXPath(selector) {
		return d.page.HasX(selector)
	}
	return d.page.Has(selector)
}

func (d *Rod) Locate(selector string, timeout time.Duration) (Element, error) {
	var found *rod.Element
	err := waitUntil(timeout, func() (bool, error) {
		ok, el, err := d.has(selector)
		if err != nil {
			// Transient DOM churn during navigation; retry until deadline.
			return false, nil
		}
		found = el
		return ok, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return &rodElement{page: d.page, el: found}, nil
}

func (d *Rod) Exists(selector string) (bool, error) {
	ok, _, err := d.has(selector)
	return ok, err
}

func (d *Rod) Visible(selector string) (bool, error) {
	ok, el, err := d.has(selector)
	if err != nil || !ok {
		return false, err
	}
	return el.Visible()
}

func (d *Rod) CurrentURL() (string, error) {
	info, err := d.page.Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

func (d *Rod) RunScript(expr string) (ScriptResult, error) {
	obj, err := d.page.Eval(expr)
	if err != nil {
		return ScriptResult{}, fmt.Errorf("script failed: %w", err)
	}
	val := obj.Value.Val()
	return ScriptResult{
		Value:  fmt.Sprintf("%v", val),
		Truthy: truthy(val),
	}, nil
}

func (d *Rod) PressEnter() error {
	return d.page.Keyboard.Press(input.Enter)
}

func (d *Rod) WaitElement(selector string, state action.ElementState, timeout time.Duration) error {
	err := waitUntil(timeout, func() (bool, error) {
		ok, el, err := d.has(selector)
		if err != nil {
			return false, nil
		}
		switch state {
		case action.StateVisible:
			if !ok {
				return false, nil
			}
			visible, err := el.Visible()
			return err == nil && visible, nil
		case action.StateHidden:
			if !ok {
				return true, nil
			}
			visible, err := el.Visible()
			return err == nil && !visible, nil
		default: // present
			return ok, nil
		}
	})
	if err != nil {
		return fmt.Errorf("%w waiting for element %s to be %s", ErrTimeout, selector, state)
	}
	return nil
}

func (d *Rod) WaitEvent(event action.PageEvent, timeout time.Duration) error {
	err := waitUntil(timeout, func() (bool, error) {
		obj, err := d.page.Eval(`document.readyState`)
		if err != nil {
			return false, nil
		}
		state := obj.Value.Str()
		if event == action.EventLoad {
			return state == "complete", nil
		}
		return state == "interactive" || state == "complete", nil
	})
	if err != nil {
		return fmt.Errorf("%w waiting for %s event", ErrTimeout, event)
	}
	return nil
}

func (d *Rod) WaitURLChange(fromURL string, timeout time.Duration) error {
	err := waitUntil(timeout, func() (bool, error) {
		url, err := d.CurrentURL()
		if err != nil {
			return false, nil
		}
		return url != fromURL, nil
	})
	if err != nil {
		return fmt.Errorf("%w waiting for URL change from %s", ErrTimeout, fromURL)
	}
	return nil
}

type rodElement struct {
	page *rod.Page
	el   *rod.Element
}

func (e *rodElement) ScrollIntoView() error {
	return e.el.ScrollIntoView()
}

func (e *rodElement) MoveAndClick(offsetX, offsetY float64) error {
	x, y, err := elementCenter(e.el)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotInteractable, err)
	}
	if err := e.page.Mouse.MoveTo(proto.NewPoint(x+offsetX, y+offsetY)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInteractable, err)
	}
	if err := e.page.Mouse.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInteractable, err)
	}
	return nil
}

func (e *rodElement) TypeRune(r rune) error {
	return e.page.Keyboard.Type(input.Key(r))
}

func (e *rodElement) Clear() error {
	if err := e.el.SelectAllText(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInteractable, err)
	}
	return e.page.Keyboard.Press(input.Backspace)
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

func (e *rodElement) Visible() (bool, error) {
	return e.el.Visible()
}

// elementCenter averages the corners of the first content quad.
func elementCenter(el *rod.Element) (float64, float64, error) {
	shape, err := el.Shape()
	if err != nil {
		return 0, 0, err
	}
	if len(shape.Quads) == 0 {
		return 0, 0, fmt.Errorf("element has no shape")
	}
	quad := shape.Quads[0]
	x := (quad[0] + quad[2] + quad[4] + quad[6]) / 4
	y := (quad[1] + quad[3] + quad[5] + quad[7]) / 4
	return x, y, nil
}

// truthy maps a script return value onto JavaScript truthiness.
func truthy(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// waitUntil polls check until it reports done or the timeout elapses.
func waitUntil(timeout time.Duration, check func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		done, err := check()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(pollInterval)
	}
}
