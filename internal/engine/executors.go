package engine

import (
	"fmt"
	"time"

	"github.com/v0xg/stepwise/internal/action"
)

// execWait blocks on the action's wait spec. The first matching variant
// applies; a spec that matches nothing falls back to a fixed short sleep.
func (e *Engine) execWait(a action.Action) (string, error) {
	w := action.WaitFor{Kind: action.WaitDefault}
	if a.For != nil {
		w = *a.For
	}

	switch w.Kind {
	case action.WaitDuration:
		time.Sleep(time.Duration(w.Time) * time.Millisecond)
		return fmt.Sprintf("Waited %dms", w.Time), nil

	case action.WaitElement:
		switch w.State {
		case action.StateVisible, action.StateHidden, action.StatePresent:
		default:
			// Unknown state: degrade to the default wait rather than fail.
			return e.defaultWait()
		}
		if err := e.driver.WaitElement(w.Selector, w.State, w.Deadline()); err != nil {
			return "", err
		}
		return fmt.Sprintf("Waited for element %s to be %s", w.Selector, w.State), nil

	case action.WaitEvent:
		switch w.Event {
		case action.EventLoad:
			if err := e.driver.WaitEvent(w.Event, w.Deadline()); err != nil {
				return "", err
			}
			return "Waited for page load", nil
		case action.EventDOMContentLoaded:
			if err := e.driver.WaitEvent(w.Event, w.Deadline()); err != nil {
				return "", err
			}
			return "Waited for DOM content loaded", nil
		default:
			return e.defaultWait()
		}

	case action.WaitURLChange:
		from, err := e.driver.CurrentURL()
		if err != nil {
			return "", err
		}
		if err := e.driver.WaitURLChange(from, w.Deadline()); err != nil {
			return "", err
		}
		return fmt.Sprintf("Waited for URL change from %s", from), nil

	default:
		return e.defaultWait()
	}
}

func (e *Engine) defaultWait() (string, error) {
	time.Sleep(action.DefaultWaitSleep)
	return "Default wait executed", nil
}

// execClick resolves the target, settles, then clicks with a small random
// pixel offset from the element center so repeated clicks do not land on
// the exact same coordinate.
func (e *Engine) execClick(a action.Action) (string, error) {
	el, err := e.driver.Locate(a.Selector, a.LocateTimeout())
	if err != nil {
		return "", err
	}
	if err := el.ScrollIntoView(); err != nil {
		return "", err
	}
	e.pacer.Sleep(scrollSettleMin, scrollSettleMax)

	dx, dy := e.pacer.Offset(clickOffsetMax)
	if err := el.MoveAndClick(dx, dy); err != nil {
		return "", err
	}
	return fmt.Sprintf("Clicked element %s", a.Selector), nil
}

// execType resolves the target, clicks it to grant focus, then synthesizes
// keystrokes one character at a time with randomized pauses so the page's
// input-event listeners fire the way they do for a real user.
func (e *Engine) execType(a action.Action) (string, error) {
	el, err := e.driver.Locate(a.Selector, a.LocateTimeout())
	if err != nil {
		return "", err
	}
	if err := el.ScrollIntoView(); err != nil {
		return "", err
	}
	e.pacer.Sleep(focusSettleMin, focusSettleMax)

	if a.ClearFirst() {
		if err := el.Clear(); err != nil {
			return "", err
		}
		e.pacer.Sleep(clearSettleMin, clearSettleMax)
	}

	if err := el.MoveAndClick(0, 0); err != nil {
		return "", err
	}
	for _, r := range a.Value {
		if err := el.TypeRune(r); err != nil {
			return "", err
		}
		e.pacer.Sleep(keystrokeMin, keystrokeMax)
	}
	return fmt.Sprintf("Typed into %s", a.Selector), nil
}

// execPressEnter sends Enter to a specific element, or to whatever holds
// focus when no selector is given.
func (e *Engine) execPressEnter(a action.Action) (string, error) {
	if a.Selector == "" {
		if err := e.driver.PressEnter(); err != nil {
			return "", err
		}
		return "Pressed Enter on active element", nil
	}

	el, err := e.driver.Locate(a.Selector, a.LocateTimeout())
	if err != nil {
		return "", err
	}
	if err := el.ScrollIntoView(); err != nil {
		return "", err
	}
	e.pacer.Sleep(focusSettleMin, focusSettleMax)

	if err := el.MoveAndClick(0, 0); err != nil {
		return "", err
	}
	e.pacer.Sleep(clearSettleMin, clearSettleMax)
	if err := e.driver.PressEnter(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Pressed Enter on %s", a.Selector), nil
}

// execScript runs an opaque script expression and reports its value.
func (e *Engine) execScript(a action.Action) (string, error) {
	res, err := e.driver.RunScript(a.Script)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Executed script, result: %s", res.Value), nil
}
