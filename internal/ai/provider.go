// Package ai generates action scripts from a natural language goal and a
// page snapshot, via Claude or OpenAI.
package ai

import (
	"fmt"

	"github.com/v0xg/stepwise/internal/action"
	"github.com/v0xg/stepwise/internal/browser"
)

// Provider turns a page snapshot and a goal into an executable script.
type Provider interface {
	GenerateScript(snap *browser.Snapshot, goal string) ([]action.Entry, error)
}

// NewProvider selects a provider by name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}
