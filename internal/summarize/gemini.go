package summarize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/startwise/eventscribe/internal/logger"
)

// Output bounds for one chunk summary, in tokens. The upper bound is
// enforced by the generation config; the lower bound is prompt guidance.
const (
	minSummaryTokens = 30
	maxSummaryTokens = 300
)

const chunkPrompt = `Summarize the following meeting transcript excerpt in %d to %d tokens. Plain prose, no headings, no bullet points. Keep names, decisions and action items.

Transcript excerpt:
---
%s
---`

// GeminiGenerator implements Generator against the Gemini API, rotating
// through the supplied API keys on quota errors. Generation is
// deterministic: temperature zero, bounded output length.
type GeminiGenerator struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGeminiGenerator creates a Generator using the given model and keys.
func NewGeminiGenerator(model string, apiKeys []string, log logger.Logger) (*GeminiGenerator, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &GeminiGenerator{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}

func (g *GeminiGenerator) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty chunk text")
	}

	prompt := fmt.Sprintf(chunkPrompt, minSummaryTokens, maxSummaryTokens, text)

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0),
			MaxOutputTokens: maxSummaryTokens,
		})
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return strings.TrimSpace(out), nil
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *GeminiGenerator) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
