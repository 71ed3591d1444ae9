package llm

import (
	"context"
	"log/slog"
	"strings"

	"batas-backend/logging"
)

// Resolver picks one model that supports content generation
type Resolver struct {
	lister    ModelLister
	preferred []string
	logger    *slog.Logger
}

// NewResolver creates a resolver that favours models whose name contains one
// of the preferred fragments
func NewResolver(lister ModelLister, preferred []string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		lister:    lister,
		preferred: preferred,
		logger:    logger,
	}
}

// Resolve returns a bare model identifier (no "models/" prefix), or "" when
// discovery fails or nothing suitable is listed. It never returns an error.
func (r *Resolver) Resolve(ctx context.Context) string {
	if r.lister == nil {
		return ""
	}

	logger := logging.FromContext(ctx, r.logger)
	models, err := r.lister.ListModels(ctx)
	if err != nil {
		logger.Warn("model discovery failed, using fallback candidates", "error", err)
		return ""
	}

	var firstCapable string
	for _, m := range models {
		if m.Name == "" || !m.Supports(GenerateContentMethod) {
			continue
		}
		name := stripModelPrefix(m.Name)
		if name == "" {
			continue
		}
		if r.isPreferred(name) {
			logger.Debug("resolved preferred model", "model", name)
			return name
		}
		if firstCapable == "" {
			firstCapable = name
		}
	}

	if firstCapable != "" {
		logger.Debug("no preferred model listed, using first capable model", "model", firstCapable)
	} else {
		logger.Warn("no listed model supports content generation", "listed", len(models))
	}
	return firstCapable
}

func (r *Resolver) isPreferred(name string) bool {
	lower := strings.ToLower(name)
	for _, fragment := range r.preferred {
		fragment = strings.ToLower(strings.TrimSpace(fragment))
		if fragment != "" && strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// stripModelPrefix turns "models/gemini-pro" into "gemini-pro"
func stripModelPrefix(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
