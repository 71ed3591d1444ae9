package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"batas-backend/llm"
	"batas-backend/logging"
	"batas-backend/models"
	"batas-backend/repository"
)

var (
	ErrInvalidInput         = errors.New("description is required")
	ErrNotConfigured        = errors.New("language model provider not configured")
	ErrReferenceUnavailable = errors.New("reference data unavailable")
)

var (
	// DefaultPreferredModels are name fragments the resolver favours
	DefaultPreferredModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash", "gemini-pro"}

	// DefaultFallbackModels are tried, in order, after the resolved model
	DefaultFallbackModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}
)

// AnalysisService runs the resolve, prompt, invoke and normalize pipeline
type AnalysisService struct {
	provider    llm.Provider
	store       repository.ReferenceStore
	preferred   []string
	fallback    []string
	locale      Locale
	lawyerLimit int
	lawLimit    int
	logger      *slog.Logger
	now         func() time.Time

	resolver   *llm.Resolver
	invoker    *llm.Invoker
	normalizer *Normalizer
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithProvider sets the language model provider
func AnalysisWithProvider(p llm.Provider) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.provider = p
	}
}

// AnalysisWithReferenceStore sets where laws and lawyers are read from
func AnalysisWithReferenceStore(store repository.ReferenceStore) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.store = store
	}
}

// AnalysisWithPreferredModels sets the model name fragments the resolver favours
func AnalysisWithPreferredModels(fragments []string) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.preferred = fragments
	}
}

// AnalysisWithFallbackModels sets the candidates tried after the resolved model
func AnalysisWithFallbackModels(names []string) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.fallback = names
	}
}

// AnalysisWithLocale sets the output language
func AnalysisWithLocale(locale Locale) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.locale = locale
	}
}

// AnalysisWithLawyerLimit caps recommended lawyers
func AnalysisWithLawyerLimit(n int) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.lawyerLimit = n
	}
}

// AnalysisWithLawLimit caps relevant laws; 0 means no cap
func AnalysisWithLawLimit(n int) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.lawLimit = n
	}
}

// AnalysisWithLogger sets the logger
func AnalysisWithLogger(logger *slog.Logger) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.logger = logger
	}
}

// AnalysisWithClock overrides the time source used for deadline math
func AnalysisWithClock(now func() time.Time) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.now = now
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{
		preferred:   DefaultPreferredModels,
		fallback:    DefaultFallbackModels,
		locale:      DefaultLocale(),
		lawyerLimit: DefaultLawyerLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.store == nil {
		s.store = repository.NewStaticReferenceStore(nil, nil)
	}
	if s.provider != nil {
		s.resolver = llm.NewResolver(s.provider, s.preferred, s.logger)
		s.invoker = llm.NewInvoker(s.provider, s.fallback, s.logger)
	}
	s.normalizer = NewNormalizer(s.locale, s.lawyerLimit, s.lawLimit, s.now)
	return s
}

// AnalyzeRequest represents one submitted situation
type AnalyzeRequest struct {
	Description string
	Attachments []models.Attachment
}

// AnalyzeResult represents the outcome of one analysis
type AnalyzeResult struct {
	Analysis *models.CaseAnalysis
	// Model is the candidate that produced the completion
	Model string
	// Fallback is set when the completion could not be parsed and the
	// keyword analyzer produced the result
	Fallback    bool
	Attachments []models.Attachment
}

// ValidateDescription rejects blank descriptions
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Ready reports ErrNotConfigured when no provider is set, so callers can
// fail before doing other work for the request
func (s *AnalysisService) Ready() error {
	if s.provider == nil {
		return ErrNotConfigured
	}
	return nil
}

// Analyze validates the request, then resolves a model, builds the prompt,
// invokes candidates and normalizes the completion. Generation failure across
// every candidate is returned as an error wrapping llm.ErrUpstreamExhausted;
// an unparseable completion is not an error.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	if err := ValidateDescription(req.Description); err != nil {
		return nil, err
	}
	if err := s.Ready(); err != nil {
		return nil, err
	}

	description := req.Description

	ref, err := s.loadReference(ctx)
	if err != nil {
		return nil, err
	}

	preferred := s.resolver.Resolve(ctx)
	prompt := BuildPrompt(description, ref.Laws, s.locale)

	completion, err := s.invoker.Invoke(ctx, prompt, preferred)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	analysis, fallback := s.normalizer.Normalize(completion.Text, description, ref)
	if fallback {
		logging.FromContext(ctx, s.logger).Warn("completion could not be parsed, using keyword analysis",
			"model", completion.Model,
			"case_type", analysis.CaseType,
			"completion_bytes", len(completion.Text),
		)
	}

	return &AnalyzeResult{
		Analysis:    analysis,
		Model:       completion.Model,
		Fallback:    fallback,
		Attachments: req.Attachments,
	}, nil
}

func (s *AnalysisService) loadReference(ctx context.Context) (Reference, error) {
	laws, err := s.store.Laws(ctx)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: laws: %v", ErrReferenceUnavailable, err)
	}
	lawyers, err := s.store.Lawyers(ctx)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: lawyers: %v", ErrReferenceUnavailable, err)
	}
	return Reference{Laws: laws, Lawyers: lawyers}, nil
}
