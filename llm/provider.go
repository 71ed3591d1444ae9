// Package llm talks to the hosted language model: it discovers usable models,
// tries candidates in order and classifies provider failures.
package llm

import "context"

// GenerateContentMethod is the capability a model must advertise to be used
const GenerateContentMethod = "generateContent"

// ModelInfo describes one model returned by the provider's listing call
type ModelInfo struct {
	Name             string
	SupportedMethods []string
}

// Supports reports whether the model advertises the given generation method
func (m ModelInfo) Supports(method string) bool {
	for _, s := range m.SupportedMethods {
		if s == method {
			return true
		}
	}
	return false
}

// ModelLister lists the models available to the configured credential
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Generator produces a completion for a prompt with the named model
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Provider is the full surface of an LLM backend
type Provider interface {
	ModelLister
	Generator
}
