package action

import (
	"encoding/json"
	"time"
)

// WaitKind enumerates the wait variants.
type WaitKind int

const (
	// WaitDefault is the fallback when the wait spec matches no variant:
	// a fixed short sleep.
	WaitDefault WaitKind = iota
	WaitDuration
	WaitElement
	WaitEvent
	WaitURLChange
)

// ElementState is the state an element wait blocks for.
type ElementState string

const (
	StateVisible ElementState = "visible"
	StateHidden  ElementState = "hidden"
	StatePresent ElementState = "present"
)

// PageEvent is a document lifecycle event a wait can block for.
type PageEvent string

const (
	EventLoad             PageEvent = "load"
	EventDOMContentLoaded PageEvent = "DOMContentLoaded"
)

// Default deadlines per wait variant, in ms.
const (
	defaultElementWaitMS = 10000
	defaultEventWaitMS   = 30000
	defaultURLWaitMS     = 10000

	// DefaultWaitSleep is used by WaitDefault.
	DefaultWaitSleep = 500 * time.Millisecond
)

// WaitFor describes what a wait action blocks on. Exactly one variant is
// populated, selected by Kind.
type WaitFor struct {
	Kind     WaitKind
	Time     int // ms, WaitDuration
	Selector string
	State    ElementState
	Event    PageEvent
	Timeout  int // ms, deadline for element/event/url waits
}

// Deadline returns the wait's timeout with the per-variant default applied.
func (w WaitFor) Deadline() time.Duration {
	if w.Timeout > 0 {
		return time.Duration(w.Timeout) * time.Millisecond
	}
	switch w.Kind {
	case WaitEvent:
		return defaultEventWaitMS * time.Millisecond
	case WaitURLChange:
		return defaultURLWaitMS * time.Millisecond
	default:
		return defaultElementWaitMS * time.Millisecond
	}
}

type waitJSON struct {
	Time      int          `json:"time,omitempty"`
	Selector  string       `json:"selector,omitempty"`
	State     ElementState `json:"state,omitempty"`
	Event     PageEvent    `json:"event,omitempty"`
	URLChange bool         `json:"urlChange,omitempty"`
	Timeout   int          `json:"timeout,omitempty"`
}

// UnmarshalJSON selects the variant by which keys are present, in precedence
// order: time, selector, event, urlChange. Anything else is the default wait.
func (w *WaitFor) UnmarshalJSON(data []byte) error {
	var raw waitJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Time > 0:
		*w = WaitFor{Kind: WaitDuration, Time: raw.Time}
	case raw.Selector != "":
		state := raw.State
		if state == "" {
			state = StateVisible
		}
		*w = WaitFor{Kind: WaitElement, Selector: raw.Selector, State: state, Timeout: raw.Timeout}
	case raw.Event != "":
		*w = WaitFor{Kind: WaitEvent, Event: raw.Event, Timeout: raw.Timeout}
	case raw.URLChange:
		*w = WaitFor{Kind: WaitURLChange, Timeout: raw.Timeout}
	default:
		*w = WaitFor{Kind: WaitDefault}
	}
	return nil
}

// MarshalJSON restores the keyed wire shape.
func (w WaitFor) MarshalJSON() ([]byte, error) {
	var raw waitJSON
	switch w.Kind {
	case WaitDuration:
		raw.Time = w.Time
	case WaitElement:
		raw.Selector = w.Selector
		raw.State = w.State
		raw.Timeout = w.Timeout
	case WaitEvent:
		raw.Event = w.Event
		raw.Timeout = w.Timeout
	case WaitURLChange:
		raw.URLChange = true
		raw.Timeout = w.Timeout
	}
	return json.Marshal(raw)
}
