package driver

import (
	"fmt"
	"time"

	"github.com/v0xg/stepwise/internal/action"
)

// Fake is a scripted Driver for tests. Every field maps a selector (or
// expression) to a canned response; Calls journals the capability calls in
// order so tests can assert what the engine did and did not touch.
type Fake struct {
	Existing  map[string]bool
	Visibles  map[string]bool
	Texts     map[string]string
	URL       string
	Scripts   map[string]ScriptResult
	ScriptErr map[string]error

	// Per-selector injected failures.
	ClickErr  map[string]error
	WaitErr   map[string]error
	EventErr  map[action.PageEvent]error
	URLErr    error
	ExistsErr map[string]error

	Typed map[string]string // text typed per selector
	Calls []string
}

// NewFake returns an empty fake; selectors not configured do not exist.
func NewFake() *Fake {
	return &Fake{
		Existing:  map[string]bool{},
		Visibles:  map[string]bool{},
		Texts:     map[string]string{},
		Scripts:   map[string]ScriptResult{},
		ScriptErr: map[string]error{},
		ClickErr:  map[string]error{},
		WaitErr:   map[string]error{},
		EventErr:  map[action.PageEvent]error{},
		ExistsErr: map[string]error{},
		Typed:     map[string]string{},
	}
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *Fake) Locate(selector string, timeout time.Duration) (Element, error) {
	f.record("locate %s", selector)
	if !f.Existing[selector] {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return &fakeElement{fake: f, selector: selector}, nil
}

func (f *Fake) Exists(selector string) (bool, error) {
	f.record("exists %s", selector)
	if err := f.ExistsErr[selector]; err != nil {
		return false, err
	}
	return f.Existing[selector], nil
}

func (f *Fake) Visible(selector string) (bool, error) {
	f.record("visible %s", selector)
	if err := f.ExistsErr[selector]; err != nil {
		return false, err
	}
	return f.Visibles[selector], nil
}

func (f *Fake) CurrentURL() (string, error) {
	f.record("url")
	return f.URL, nil
}

func (f *Fake) RunScript(expr string) (ScriptResult, error) {
	f.record("script %s", expr)
	if err := f.ScriptErr[expr]; err != nil {
		return ScriptResult{}, err
	}
	if res, ok := f.Scripts[expr]; ok {
		return res, nil
	}
	return ScriptResult{Value: "undefined", Truthy: false}, nil
}

func (f *Fake) PressEnter() error {
	f.record("press enter")
	return nil
}

func (f *Fake) WaitElement(selector string, state action.ElementState, timeout time.Duration) error {
	f.record("wait element %s %s", selector, state)
	return f.WaitErr[selector]
}

func (f *Fake) WaitEvent(event action.PageEvent, timeout time.Duration) error {
	f.record("wait event %s", event)
	return f.EventErr[event]
}

func (f *Fake) WaitURLChange(fromURL string, timeout time.Duration) error {
	f.record("wait url change")
	return f.URLErr
}

type fakeElement struct {
	fake     *Fake
	selector string
}

func (e *fakeElement) ScrollIntoView() error {
	e.fake.record("scroll %s", e.selector)
	return nil
}

func (e *fakeElement) MoveAndClick(offsetX, offsetY float64) error {
	e.fake.record("click %s", e.selector)
	return e.fake.ClickErr[e.selector]
}

func (e *fakeElement) TypeRune(r rune) error {
	e.fake.Typed[e.selector] += string(r)
	return nil
}

func (e *fakeElement) Clear() error {
	e.fake.record("clear %s", e.selector)
	e.fake.Typed[e.selector] = ""
	return nil
}

func (e *fakeElement) Text() (string, error) {
	return e.fake.Texts[e.selector], nil
}

func (e *fakeElement) Visible() (bool, error) {
	return e.fake.Visibles[e.selector], nil
}
