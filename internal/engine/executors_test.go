package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/v0xg/stepwise/internal/action"
	"github.com/v0xg/stepwise/internal/driver"
)

func TestExecWait(t *testing.T) {
	t.Run("fixed duration", func(t *testing.T) {
		f := driver.NewFake()
		e := newTestEngine(f)
		msg, err := e.execWait(action.Action{
			Type: action.KindWait,
			For:  &action.WaitFor{Kind: action.WaitDuration, Time: 5},
		})
		if err != nil {
			t.Fatalf("execWait: %v", err)
		}
		if msg != "Waited 5ms" {
			t.Errorf("message = %q", msg)
		}
	})

	t.Run("element visible", func(t *testing.T) {
		f := driver.NewFake()
		e := newTestEngine(f)
		msg, err := e.execWait(action.Action{
			Type: action.KindWait,
			For:  &action.WaitFor{Kind: action.WaitElement, Selector: ".spinner", State: action.StateVisible},
		})
		if err != nil {
			t.Fatalf("execWait: %v", err)
		}
		if msg != "Waited for element .spinner to be visible" {
			t.Errorf("message = %q", msg)
		}
		if f.Calls[0] != "wait element .spinner visible" {
			t.Errorf("driver calls = %v", f.Calls)
		}
	})

	t.Run("element wait timeout is a failure", func(t *testing.T) {
		f := driver.NewFake()
		f.WaitErr[".spinner"] = driver.ErrTimeout
		e := newTestEngine(f)
		_, err := e.execWait(action.Action{
			Type: action.KindWait,
			For:  &action.WaitFor{Kind: action.WaitElement, Selector: ".spinner", State: action.StateHidden},
		})
		if !errors.Is(err, driver.ErrTimeout) {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("page load event", func(t *testing.T) {
		f := driver.NewFake()
		e := newTestEngine(f)
		msg, err := e.execWait(action.Action{
			Type: action.KindWait,
			For:  &action.WaitFor{Kind: action.WaitEvent, Event: action.EventLoad},
		})
		if err != nil {
			t.Fatalf("execWait: %v", err)
		}
		if msg != "Waited for page load" {
			t.Errorf("message = %q", msg)
		}
	})

	t.Run("url change records starting url", func(t *testing.T) {
		f := driver.NewFake()
		f.URL = "https://app.test/login"
		e := newTestEngine(f)
		msg, err := e.execWait(action.Action{
			Type: action.KindWait,
			For:  &action.WaitFor{Kind: action.WaitURLChange},
		})
		if err != nil {
			t.Fatalf("execWait: %v", err)
		}
		if msg != "Waited for URL change from https://app.test/login" {
			t.Errorf("message = %q", msg)
		}
	})

	t.Run("no spec falls back to default wait", func(t *testing.T) {
		f := driver.NewFake()
		e := newTestEngine(f)
		msg, err := e.execWait(action.Action{Type: action.KindWait})
		if err != nil {
			t.Fatalf("execWait: %v", err)
		}
		if msg != "Default wait executed" {
			t.Errorf("message = %q", msg)
		}
		if len(f.Calls) != 0 {
			t.Errorf("default wait should not touch the driver: %v", f.Calls)
		}
	})
}

func TestExecClick(t *testing.T) {
	t.Run("scrolls then clicks", func(t *testing.T) {
		f := driver.NewFake()
		f.Existing[".btn"] = true
		e := newTestEngine(f)

		msg, err := e.execClick(action.Action{Type: action.KindClick, Selector: ".btn"})
		if err != nil {
			t.Fatalf("execClick: %v", err)
		}
		if msg != "Clicked element .btn" {
			t.Errorf("message = %q", msg)
		}
		want := []string{"locate .btn", "scroll .btn", "click .btn"}
		if strings.Join(f.Calls, ",") != strings.Join(want, ",") {
			t.Errorf("driver calls = %v, want %v", f.Calls, want)
		}
	})

	t.Run("missing element", func(t *testing.T) {
		f := driver.NewFake()
		e := newTestEngine(f)
		_, err := e.execClick(action.Action{Type: action.KindClick, Selector: ".gone"})
		if !errors.Is(err, driver.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("interaction failure propagates", func(t *testing.T) {
		f := driver.NewFake()
		f.Existing[".btn"] = true
		f.ClickErr[".btn"] = driver.ErrNotInteractable
		e := newTestEngine(f)
		_, err := e.execClick(action.Action{Type: action.KindClick, Selector: ".btn"})
		if !errors.Is(err, driver.ErrNotInteractable) {
			t.Fatalf("expected ErrNotInteractable, got %v", err)
		}
	})
}

func TestExecType(t *testing.T) {
	t.Run("clears then types per character", func(t *testing.T) {
		f := driver.NewFake()
		f.Existing["#q"] = true
		f.Typed["#q"] = "old text"
		e := newTestEngine(f)

		msg, err := e.execType(action.Action{Type: action.KindType, Selector: "#q", Value: "hello"})
		if err != nil {
			t.Fatalf("execType: %v", err)
		}
		if msg != "Typed into #q" {
			t.Errorf("message = %q", msg)
		}
		if f.Typed["#q"] != "hello" {
			t.Errorf("typed %q, want %q", f.Typed["#q"], "hello")
		}
		joined := strings.Join(f.Calls, ",")
		if !strings.Contains(joined, "clear #q") {
			t.Errorf("expected a clear call: %v", f.Calls)
		}
	})

	t.Run("clear false keeps existing content", func(t *testing.T) {
		f := driver.NewFake()
		f.Existing["#q"] = true
		f.Typed["#q"] = "old"
		e := newTestEngine(f)

		no := false
		_, err := e.execType(action.Action{Type: action.KindType, Selector: "#q", Value: "!", Clear: &no})
		if err != nil {
			t.Fatalf("execType: %v", err)
		}
		if f.Typed["#q"] != "old!" {
			t.Errorf("typed %q, want %q", f.Typed["#q"], "old!")
		}
	})
}

func TestExecPressEnter(t *testing.T) {
	t.Run("with selector focuses the element first", func(t *testing.T) {
		f := driver.NewFake()
		f.Existing["#search"] = true
		e := newTestEngine(f)

		msg, err := e.execPressEnter(action.Action{Type: action.KindPressEnter, Selector: "#search"})
		if err != nil {
			t.Fatalf("execPressEnter: %v", err)
		}
		if msg != "Pressed Enter on #search" {
			t.Errorf("message = %q", msg)
		}
		want := []string{"locate #search", "scroll #search", "click #search", "press enter"}
		if strings.Join(f.Calls, ",") != strings.Join(want, ",") {
			t.Errorf("driver calls = %v, want %v", f.Calls, want)
		}
	})

	t.Run("without selector targets the focused element", func(t *testing.T) {
		f := driver.NewFake()
		e := newTestEngine(f)

		msg, err := e.execPressEnter(action.Action{Type: action.KindPressEnter})
		if err != nil {
			t.Fatalf("execPressEnter: %v", err)
		}
		if msg != "Pressed Enter on active element" {
			t.Errorf("message = %q", msg)
		}
		if len(f.Calls) != 1 || f.Calls[0] != "press enter" {
			t.Errorf("driver calls = %v", f.Calls)
		}
	})
}

func TestExecScript(t *testing.T) {
	t.Run("reports the return value", func(t *testing.T) {
		f := driver.NewFake()
		f.Scripts["document.title"] = driver.ScriptResult{Value: "Dashboard", Truthy: true}
		e := newTestEngine(f)

		msg, err := e.execScript(action.Action{Type: action.KindScript, Script: "document.title"})
		if err != nil {
			t.Fatalf("execScript: %v", err)
		}
		if msg != "Executed script, result: Dashboard" {
			t.Errorf("message = %q", msg)
		}
	})

	t.Run("script errors propagate", func(t *testing.T) {
		f := driver.NewFake()
		f.ScriptErr["boom()"] = errors.New("ReferenceError: boom is not defined")
		e := newTestEngine(f)

		_, err := e.execScript(action.Action{Type: action.KindScript, Script: "boom()"})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
