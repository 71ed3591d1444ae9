package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured
var ErrMissingAPIKey = errors.New("gemini api key not configured")

// GeminiProvider implements Provider on top of the Gemini API client
type GeminiProvider struct {
	client      *genai.Client
	temperature *float32
}

// GeminiOption is a functional option for GeminiProvider
type GeminiOption func(*GeminiProvider)

// GeminiWithTemperature sets the sampling temperature for every generation
func GeminiWithTemperature(t float32) GeminiOption {
	return func(p *GeminiProvider) {
		p.temperature = &t
	}
}

// NewGeminiProvider creates a Gemini client authenticated with apiKey
func NewGeminiProvider(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	p := &GeminiProvider{client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Close releases the underlying client
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// ListModels returns every model visible to the API key, in listing order
func (p *GeminiProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	it := p.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		models = append(models, ModelInfo{
			Name:             m.Name,
			SupportedMethods: m.SupportedGenerationMethods,
		})
	}
	return models, nil
}

// Generate sends prompt to the named model and concatenates the text parts
// of every returned candidate
func (p *GeminiProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	gm := p.client.GenerativeModel(model)
	if p.temperature != nil {
		gm.SetTemperature(*p.temperature)
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", &GenerationError{
			Model: model,
			Kind:  KindBlocked,
			Err:   fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason),
		}
	}

	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}
