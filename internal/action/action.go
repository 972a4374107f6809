// Package action defines the declarative script model: single actions,
// action groups, and the condition/wait variants that gate and pace them.
package action

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies what an action does.
type Kind string

const (
	KindWait       Kind = "wait"
	KindClick      Kind = "click"
	KindType       Kind = "type"
	KindPressEnter Kind = "press_enter"
	KindScript     Kind = "execute_script"
)

// DefaultTimeout applies when an action does not set its own timeout.
const DefaultTimeout = 10000 * time.Millisecond

// Action is a single declarative step. Immutable once submitted to the engine.
type Action struct {
	Type            Kind       `json:"type"`
	Selector        string     `json:"selector,omitempty"`
	Value           string     `json:"value,omitempty"`
	Script          string     `json:"script,omitempty"`
	For             *WaitFor   `json:"for,omitempty"`
	Timeout         int        `json:"timeout,omitempty"`   // ms
	WaitAfter       int        `json:"waitAfter,omitempty"` // ms, post-action delay
	Clear           *bool      `json:"clear,omitempty"`     // type action: clear field first (default true)
	Condition       *Condition `json:"condition,omitempty"`
	ContinueOnError *bool      `json:"continueOnError,omitempty"`
}

// LocateTimeout returns the element-lookup deadline for this action.
func (a Action) LocateTimeout() time.Duration {
	if a.Timeout > 0 {
		return time.Duration(a.Timeout) * time.Millisecond
	}
	return DefaultTimeout
}

// ClearFirst reports whether a type action should clear the field before typing.
func (a Action) ClearFirst() bool {
	return a.Clear == nil || *a.Clear
}

// Group is an ordered sequence of actions executed as a unit. The group
// condition gates all steps at once, and ContinueOnError is the default for
// member steps that do not carry their own flag.
type Group struct {
	Steps           []Action   `json:"steps"`
	Condition       *Condition `json:"condition,omitempty"`
	ContinueOnError bool       `json:"continueOnError,omitempty"`
}

// Entry is one top-level script element: either a single action or a group.
// Exactly one of Action and Group is set.
type Entry struct {
	Action *Action
	Group  *Group
}

// StepCount returns how many flattened steps this entry declares.
func (e Entry) StepCount() int {
	if e.Group != nil {
		return len(e.Group.Steps)
	}
	return 1
}

// UnmarshalJSON distinguishes groups from single actions by the presence of
// a "steps" key, matching the wire format consumed by the run coordinator.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var probe struct {
		Steps json.RawMessage `json:"steps"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Steps != nil {
		var g Group
		if err := json.Unmarshal(data, &g); err != nil {
			return err
		}
		e.Group = &g
		e.Action = nil
		return nil
	}
	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	e.Action = &a
	e.Group = nil
	return nil
}

// MarshalJSON writes the entry back in the same shape it was read from.
func (e Entry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Group != nil:
		return json.Marshal(e.Group)
	case e.Action != nil:
		return json.Marshal(e.Action)
	default:
		return nil, fmt.Errorf("entry has neither action nor group")
	}
}
