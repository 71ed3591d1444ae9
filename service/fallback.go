package service

import (
	"strings"

	"batas-backend/models"
)

// caseKeywords is checked in order; the first category with a hit wins
var caseKeywords = []struct {
	caseType models.CaseType
	keywords []string
}{
	{models.CaseTypeProperty, []string{"farm", "land", "property", "lupa", "sakahan", "bukid"}},
	{models.CaseTypeCriminal, []string{"rape", "crime", "criminal", "krimen", "pagnanakaw"}},
	{models.CaseTypeLabor, []string{"labor", "employee", "work", "trabaho", "empleyado", "sahod"}},
	{models.CaseTypeFamilyLaw, []string{"annulment", "custody", "divorce", "kasal", "asawa"}},
}

// ClassifyCaseType picks a category from keywords alone, defaulting to Civil
func ClassifyCaseType(description string) models.CaseType {
	lower := strings.ToLower(description)
	for _, c := range caseKeywords {
		if containsAny(lower, c.keywords) {
			return c.caseType
		}
	}
	return models.CaseTypeCivil
}

// FallbackAnalyzer builds a conservative analysis without any model output
type FallbackAnalyzer struct {
	locale      Locale
	lawyerLimit int
}

// NewFallbackAnalyzer creates a fallback analyzer
func NewFallbackAnalyzer(locale Locale, lawyerLimit int) *FallbackAnalyzer {
	return &FallbackAnalyzer{locale: locale, lawyerLimit: lawyerLimit}
}

// Analyze is deterministic in description and lawyers
func (f *FallbackAnalyzer) Analyze(description string, lawyers []models.Lawyer) *models.CaseAnalysis {
	caseType := ClassifyCaseType(description)
	costs := f.locale.FallbackCosts

	return &models.CaseAnalysis{
		CaseType: caseType,
		Severity: models.Severity{
			Rating:          models.LevelMedium,
			Complexity:      defaultComplexity,
			FinancialImpact: f.locale.FinancialImpact[models.LevelMedium],
			TimeSensitivity: f.locale.TimeSensitivity[models.LevelMedium],
		},
		Timeline: models.Timeline{
			IssueDuration: f.locale.UnknownDuration,
			StatuteOfLimitations: models.StatuteOfLimitations{
				Applicable: true,
			},
			EstimatedResolution: f.locale.Resolution[models.LevelMedium],
			Milestones:          []models.Milestone{},
		},
		RelevantLaws:       []models.RelevantLaw{},
		Rights:             orDefaultList(nil, f.locale.Rights),
		Lawyers:            MatchLawyers(caseType, lawyers, f.lawyerLimit),
		EssentialDocuments: orDefaultList(nil, f.locale.Documents),
		NextSteps: []models.NextStep{
			{Action: f.locale.FallbackStep, Priority: models.LevelHigh},
		},
		EstimatedCosts: &costs,
	}
}
