package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"batas-backend/logging"
)

// Completion is the text produced by the first model that succeeded
type Completion struct {
	Model string
	Text  string
}

// Invoker tries candidate models in order until one produces a completion
type Invoker struct {
	generator Generator
	fallback  []string
	logger    *slog.Logger
}

// NewInvoker creates an invoker whose candidate list ends with fallback
func NewInvoker(generator Generator, fallback []string, logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{
		generator: generator,
		fallback:  fallback,
		logger:    logger,
	}
}

// Candidates returns preferred (when set) followed by the fallback list,
// without blanks or duplicates
func (i *Invoker) Candidates(preferred string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	add(preferred)
	for _, name := range i.fallback {
		add(name)
	}
	return out
}

// Invoke makes one attempt per candidate and stops at the first success.
// When every candidate fails it returns an *ExhaustedError naming all of
// them and carrying the last failure.
func (i *Invoker) Invoke(ctx context.Context, prompt, preferred string) (*Completion, error) {
	logger := logging.FromContext(ctx, i.logger)
	candidates := i.Candidates(preferred)
	if len(candidates) == 0 {
		return nil, &ExhaustedError{Last: ErrNoCandidates}
	}

	var attempted []string
	var lastErr error
	for _, model := range candidates {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		attempted = append(attempted, model)
		start := time.Now()
		text, err := i.generator.Generate(ctx, model, prompt)
		if err != nil {
			genErr := Classify(model, err)
			logger.Warn("model generation failed",
				"model", model,
				"kind", genErr.Kind,
				"status", genErr.StatusCode,
				"error", genErr.Err,
				"duration", time.Since(start),
			)
			lastErr = genErr
			continue
		}

		logger.Info("model generation succeeded",
			"model", model,
			"attempt", len(attempted),
			"duration", time.Since(start),
		)
		return &Completion{Model: model, Text: text}, nil
	}

	return nil, &ExhaustedError{Attempted: attempted, Last: lastErr}
}
