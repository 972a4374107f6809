package ai

import (
	"testing"

	"github.com/v0xg/stepwise/internal/action"
)

func TestParseScriptResponse(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		entries, err := parseScriptResponse(`[{"type": "click", "selector": ".btn"}]`)
		if err != nil {
			t.Fatalf("parseScriptResponse: %v", err)
		}
		if len(entries) != 1 || entries[0].Action.Type != action.KindClick {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("array surrounded by prose", func(t *testing.T) {
		response := "Here is the script:\n```json\n" +
			`[{"steps": [{"type": "type", "selector": "#q", "value": "hi"}]}]` +
			"\n```\nLet me know if you need changes."
		entries, err := parseScriptResponse(response)
		if err != nil {
			t.Fatalf("parseScriptResponse: %v", err)
		}
		if len(entries) != 1 || entries[0].Group == nil {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("nested arrays balance", func(t *testing.T) {
		entries, err := parseScriptResponse(
			`output: [{"steps": [{"type": "press_enter"}], "continueOnError": true}] done`)
		if err != nil {
			t.Fatalf("parseScriptResponse: %v", err)
		}
		if len(entries) != 1 || len(entries[0].Group.Steps) != 1 {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("no array at all", func(t *testing.T) {
		if _, err := parseScriptResponse("I cannot help with that."); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unterminated array", func(t *testing.T) {
		if _, err := parseScriptResponse(`[{"type": "click"`); err == nil {
			t.Fatal("expected error")
		}
	})
}
