package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"batas-backend/llm"
	"batas-backend/models"
	"batas-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateCall struct {
	model  string
	prompt string
}

type fakeProvider struct {
	mu        sync.Mutex
	models    []llm.ModelInfo
	listErr   error
	responses map[string]string
	errs      map[string]error
	listCalls int
	calls     []generateCall
}

func (f *fakeProvider) ListModels(ctx context.Context) ([]llm.ModelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.models, f.listErr
}

func (f *fakeProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, generateCall{model: model, prompt: prompt})
	if err, ok := f.errs[model]; ok {
		return "", err
	}
	if text, ok := f.responses[model]; ok {
		return text, nil
	}
	return "", errors.New("model not found")
}

func (f *fakeProvider) attempted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.model
	}
	return out
}

type fakeStore struct {
	lawsErr    error
	lawyersErr error
	calls      int
}

func (f *fakeStore) Laws(ctx context.Context) ([]models.RelevantLaw, error) {
	f.calls++
	if f.lawsErr != nil {
		return nil, f.lawsErr
	}
	return repository.DefaultLaws(), nil
}

func (f *fakeStore) Lawyers(ctx context.Context) ([]models.Lawyer, error) {
	f.calls++
	if f.lawyersErr != nil {
		return nil, f.lawyersErr
	}
	return repository.DefaultLawyers(), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAnalysisService(p llm.Provider, store repository.ReferenceStore, opts ...AnalysisServiceOption) *AnalysisService {
	base := []AnalysisServiceOption{
		AnalysisWithReferenceStore(store),
		AnalysisWithLogger(discardLogger()),
		AnalysisWithClock(func() time.Time { return fixedNow }),
	}
	if p != nil {
		base = append(base, AnalysisWithProvider(p))
	}
	return NewAnalysisService(append(base, opts...)...)
}

const propertyCompletion = `{
  "caseType": "Property",
  "severity": {"rating": "high", "complexity": 15},
  "timeline": {"statuteOfLimitations": {"applicable": true, "deadline": "2025-04-15", "daysRemaining": 999}},
  "relevantLaws": [{"title": "Extraordinary Prescription", "law": "Article 1137"}]
}`

func TestAnalyze_RejectsBlankDescription(t *testing.T) {
	provider := &fakeProvider{}
	store := &fakeStore{}
	svc := newTestAnalysisService(provider, store)

	for _, description := range []string{"", "   ", "\n\t"} {
		result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: description})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, result)
	}

	assert.Zero(t, provider.listCalls)
	assert.Empty(t, provider.calls)
	assert.Zero(t, store.calls)
}

func TestAnalyze_NotConfigured(t *testing.T) {
	svc := newTestAnalysisService(nil, &fakeStore{})

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: "may problema ako sa lupa"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, svc.Ready(), ErrNotConfigured)

	assert.NoError(t, newTestAnalysisService(&fakeProvider{}, &fakeStore{}).Ready())
}

func TestAnalyze_ReferenceUnavailable(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestAnalysisService(provider, &fakeStore{lawyersErr: errors.New("connection refused")})

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: "may problema ako sa lupa"})
	assert.ErrorIs(t, err, ErrReferenceUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, provider.calls)
}

func TestAnalyze_Success(t *testing.T) {
	provider := &fakeProvider{
		models: []llm.ModelInfo{
			{Name: "models/embedding-001", SupportedMethods: []string{"embedContent"}},
			{Name: "models/gemini-2.0-flash", SupportedMethods: []string{llm.GenerateContentMethod}},
		},
		responses: map[string]string{"gemini-2.0-flash": "```json\n" + propertyCompletion + "\n```"},
	}
	svc := newTestAnalysisService(provider, &fakeStore{})
	description := "I've farmed this land for 20 years, the owner died, someone now claims it"
	attachments := []models.Attachment{{Filename: "tax-declaration.pdf"}}

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: description, Attachments: attachments})
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", result.Model)
	assert.False(t, result.Fallback)
	assert.Equal(t, attachments, result.Attachments)
	assert.Equal(t, []string{"gemini-2.0-flash"}, provider.attempted(), "resolved model is tried first")

	require.Len(t, provider.calls, 1)
	assert.Contains(t, provider.calls[0].prompt, description)
	assert.Contains(t, provider.calls[0].prompt, "Civil Code of the Philippines, Article 1134")

	a := result.Analysis
	assert.Equal(t, models.CaseTypeProperty, a.CaseType)
	assert.Equal(t, 10, a.Severity.Complexity)
	require.NotNil(t, a.Timeline.StatuteOfLimitations.DaysRemaining)
	assert.Equal(t, 45, *a.Timeline.StatuteOfLimitations.DaysRemaining)
	require.NotNil(t, a.Timeline.StatuteOfLimitations.Warning)
	assert.Equal(t, "Ang preskripsyon ay mag-e-expire sa 45 araw", *a.Timeline.StatuteOfLimitations.Warning)
	require.Len(t, a.RelevantLaws, 1)
	assert.Equal(t, repository.DefaultLaws()[1], a.RelevantLaws[0])
	require.Len(t, a.Lawyers, 3)
	for _, l := range a.Lawyers {
		assert.Regexp(t, `(?i)property|real estate`, l.Specialization)
	}
}

func TestAnalyze_FallsThroughCandidates(t *testing.T) {
	provider := &fakeProvider{
		models: []llm.ModelInfo{
			{Name: "models/gemini-2.5-flash", SupportedMethods: []string{llm.GenerateContentMethod}},
		},
		errs: map[string]error{
			"gemini-2.5-flash": errors.New("429 quota exceeded"),
		},
		responses: map[string]string{"gemini-2.0-flash": `{"caseType":"Labor"}`},
	}
	svc := newTestAnalysisService(provider, &fakeStore{})

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: "hindi binayaran ang sahod ko"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", result.Model)
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.0-flash"}, provider.attempted())
	assert.Equal(t, models.CaseTypeLabor, result.Analysis.CaseType)
}

func TestAnalyze_DiscoveryFailureStillTriesFallbackList(t *testing.T) {
	provider := &fakeProvider{
		listErr:   errors.New("permission denied"),
		responses: map[string]string{"gemini-1.5-flash": `{"caseType":"Civil"}`},
	}
	svc := newTestAnalysisService(provider, &fakeStore{})

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: "utang"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", result.Model)
	assert.Equal(t, DefaultFallbackModels, provider.attempted())
}

func TestAnalyze_UpstreamExhausted(t *testing.T) {
	provider := &fakeProvider{
		models: []llm.ModelInfo{
			{Name: "models/gemini-pro", SupportedMethods: []string{llm.GenerateContentMethod}},
		},
		errs: map[string]error{
			"gemini-pro":       errors.New("deadline exceeded"),
			"gemini-2.5-flash": errors.New("quota exceeded"),
			"gemini-2.0-flash": errors.New("billing account disabled"),
			"gemini-1.5-flash": errors.New("model not found"),
		},
	}
	svc := newTestAnalysisService(provider, &fakeStore{})

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: "Kinuha ng employer ang lupa ko"})
	require.Error(t, err)
	assert.Nil(t, result, "exhaustion is never turned into a fallback analysis")
	assert.ErrorIs(t, err, llm.ErrUpstreamExhausted)

	var exhausted *llm.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, []string{"gemini-pro", "gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}, exhausted.Attempted)

	var last *llm.GenerationError
	require.ErrorAs(t, err, &last)
	assert.Equal(t, "gemini-1.5-flash", last.Model)
	assert.Equal(t, llm.KindUnsupportedModel, last.Kind)
}

func TestAnalyze_UnparseableCompletionFallsBack(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string]string{"gemini-2.5-flash": "I cannot help with that."},
	}
	svc := newTestAnalysisService(provider, &fakeStore{})
	description := "Ang lupa ng lolo ko ay inaangkin ng pinsan ko"

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: description})
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, "gemini-2.5-flash", result.Model)

	expected := NewFallbackAnalyzer(DefaultLocale(), DefaultLawyerLimit).Analyze(description, repository.DefaultLawyers())
	assert.Equal(t, expected, result.Analysis)
}

func TestAnalyze_EnglishLocale(t *testing.T) {
	en, err := LocaleFor("en")
	require.NoError(t, err)

	provider := &fakeProvider{responses: map[string]string{"gemini-2.5-flash": `{}`}}
	svc := newTestAnalysisService(provider, &fakeStore{}, AnalysisWithLocale(en))

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Description: "my landlord kept my deposit"})
	require.NoError(t, err)
	assert.Contains(t, provider.calls[0].prompt, languagePin(en))
	assert.Equal(t, en.Rights, result.Analysis.Rights)
}
