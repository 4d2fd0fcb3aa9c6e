package mugshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Describer produces a short text description of a mugshot.
type Describer interface {
	// Describe returns a one or two sentence description of the person in img.
	Describe(ctx context.Context, img Image) (string, error)
	// Close releases any resources held by the describer.
	Close() error
}

// describePrompt is shared by every model provider.
const describePrompt = `You are looking at a booking photo from a roleplay police report. Describe the visible person or avatar in one or two short sentences: clothing, hair, distinguishing marks and anything they are holding.

Return ONLY valid JSON in this exact format:
{
  "description": "..."
}

Important:
- Describe only what is visible, never guess identity, age or ethnicity
- Do not include any text before or after the JSON
- Do not use markdown code blocks`

type caption struct {
	Description string `json:"description"`
}

// parseCaption extracts the description from a model response, tolerating
// markdown fences and surrounding chatter.
func parseCaption(text string) (string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", fmt.Errorf("invalid JSON object in response")
	}

	var c caption
	if err := json.Unmarshal([]byte(text[start:end+1]), &c); err != nil {
		return "", fmt.Errorf("unmarshaling json: %w", err)
	}

	desc := strings.Join(strings.Fields(c.Description), " ")
	if desc == "" {
		return "", fmt.Errorf("empty description in response")
	}
	return desc, nil
}
