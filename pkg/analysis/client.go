package analysis

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

const maxTokens = 2048

// Client wraps the OpenAI API for CV analysis. Configured once at startup
// and shared read-only across requests.
type Client struct {
	*openai.Client
	model   string
	timeout time.Duration
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		Client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Analyze sends the ordered page images with the fixed extraction prompt and
// returns the parsed result. A reply that cannot be parsed is returned as a
// degraded Result, not an error; only transport/model failures fail.
func (c *Client) Analyze(ctx context.Context, pageImages [][]byte) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	parts := make([]openai.ChatMessagePart, 0, len(pageImages)+1)
	for _, img := range pageImages {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(img),
				Detail: openai.ImageURLDetailHigh,
			},
		})
	}
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: userPrompt,
	})

	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	result := ParseResult(resp.Choices[0].Message.Content)
	return &result, nil
}
