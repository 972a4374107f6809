package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/v0xg/stepwise/internal/action"
	"github.com/v0xg/stepwise/internal/browser"
)

// OpenAIProvider generates scripts with OpenAI chat models.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider reads the API key from the environment.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("STEPWISE_OPENAI_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("STEPWISE_OPENAI_KEY or OPENAI_API_KEY environment variable required")
	}

	client := openai.NewClient(apiKey)
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIProvider{client: client, model: model}, nil
}

// GenerateScript asks OpenAI for an action script targeting the snapshot.
func (p *OpenAIProvider) GenerateScript(snap *browser.Snapshot, goal string) ([]action.Entry, error) {
	snapJSON, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(string(snapJSON), goal)},
			},
			MaxTokens: 2048,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	entries, err := parseScriptResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response: %w\nResponse: %s", err, resp.Choices[0].Message.Content)
	}
	return entries, nil
}
