package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/v0xg/stepwise/internal/action"
	"github.com/v0xg/stepwise/internal/browser"
)

// ClaudeProvider generates scripts with Anthropic's Claude.
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

// NewClaudeProvider reads the API key from the environment.
func NewClaudeProvider(model string) (*ClaudeProvider, error) {
	apiKey := os.Getenv("STEPWISE_ANTHROPIC_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("STEPWISE_ANTHROPIC_KEY or ANTHROPIC_API_KEY environment variable required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}
	return &ClaudeProvider{client: &client, model: model}, nil
}

// GenerateScript asks Claude for an action script targeting the snapshot.
func (p *ClaudeProvider) GenerateScript(snap *browser.Snapshot, goal string) ([]action.Entry, error) {
	snapJSON, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	resp, err := p.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 2048,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(string(snapJSON), goal))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Claude API error: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("empty response from Claude")
	}

	entries, err := parseScriptResponse(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w\nResponse: %s", err, responseText)
	}
	return entries, nil
}
