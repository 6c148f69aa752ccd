package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured.
const DefaultGeminiModel = "gemini-flash-lite-latest"

// GeminiClient adapts the Gemini API to TextGenerator.
type GeminiClient struct {
	modelName string
	gClient   *genai.Client
}

// NewGeminiClient creates a Gemini-backed generator.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{modelName: modelName, gClient: gClient}, nil
}

// GenerateText implements TextGenerator.
func (c *GeminiClient) GenerateText(ctx context.Context, req Request) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: req.Prompt}},
		Role:  "user",
	}}

	var config *genai.GenerateContentConfig
	if req.System != "" || req.Temperature > 0 || req.MaxTokens > 0 {
		config = &genai.GenerateContentConfig{}
		if req.System != "" {
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: req.System}},
			}
		}
		if req.Temperature > 0 {
			temp := float32(req.Temperature)
			config.Temperature = &temp
		}
		if req.MaxTokens > 0 {
			config.MaxOutputTokens = int32(req.MaxTokens)
		}
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}
