package ai

import (
	"fmt"
	"strings"

	"github.com/v0xg/stepwise/internal/action"
)

// parseScriptResponse decodes the model output, tolerating prose or markdown
// fences around the JSON array.
func parseScriptResponse(response string) ([]action.Entry, error) {
	if entries, err := action.ParseScript([]byte(response)); err == nil {
		return entries, nil
	}

	start := strings.Index(response, "[")
	if start == -1 {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	depth := 0
	end := -1
	for i := start; i < len(response) && end == -1; i++ {
		switch response[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
	}
	if end == -1 {
		return nil, fmt.Errorf("no matching closing bracket found")
	}

	return action.ParseScript([]byte(response[start:end]))
}
