package service

import (
	"strings"
	"testing"

	"batas-backend/models"
	"batas-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_IncludesDescriptionAndEveryLaw(t *testing.T) {
	description := "  Inaangkin ng pamangkin ang lupang\nsinasaka ko nang 20 taon.  "
	laws := repository.DefaultLaws()

	prompt := BuildPrompt(description, laws, DefaultLocale())

	assert.Contains(t, prompt, description, "description must be embedded verbatim")
	for _, law := range laws {
		assert.Contains(t, prompt, law.Title)
		assert.Contains(t, prompt, law.Law)
		assert.Contains(t, prompt, law.Description)
	}
}

func TestBuildPrompt_LanguagePinnedAtStartAndEnd(t *testing.T) {
	for _, code := range []string{"fil", "en"} {
		t.Run(code, func(t *testing.T) {
			locale, err := LocaleFor(code)
			require.NoError(t, err)

			prompt := BuildPrompt("May utang sa akin ang kapitbahay ko", repository.DefaultLaws(), locale)
			pin := languagePin(locale)

			assert.GreaterOrEqual(t, strings.Count(prompt, pin), 2)

			first := strings.Index(prompt, pin)
			last := strings.LastIndex(prompt, pin)
			situation := strings.Index(prompt, promptTexts[locale.Code].situation)
			require.GreaterOrEqual(t, situation, 0)
			assert.Less(t, first, situation, "pin precedes the situation")
			assert.Greater(t, last, strings.Index(prompt, promptTexts[locale.Code].instructions), "pin repeated among the instructions")
		})
	}
}

func TestBuildPrompt_SchemaCoversEveryField(t *testing.T) {
	prompt := BuildPrompt("desc", nil, DefaultLocale())

	for _, field := range []string{
		`"caseType"`, `"severity"`, `"complexity"`, `"statuteOfLimitations"`,
		`"milestones"`, `"relevantLaws"`, `"rights"`, `"essentialDocuments"`,
		`"nextSteps"`, `"estimatedCosts"`, `"riskAssessment"`,
		`"governmentAgencies"`, `"evidenceGuide"`,
	} {
		assert.Contains(t, prompt, field)
	}
	for _, ct := range models.CaseTypes {
		assert.Contains(t, prompt, string(ct))
	}
	assert.NotContains(t, prompt, "{{")
}

func TestBuildPrompt_NumberedInstructions(t *testing.T) {
	prompt := BuildPrompt("desc", repository.DefaultLaws(), DefaultLocale())
	steps := promptTexts["fil"].steps

	for i := range steps {
		assert.Contains(t, prompt, steps[i])
	}
	assert.Contains(t, prompt, "15. "+languagePin(DefaultLocale()))
}

func TestBuildPrompt_UnknownLocaleUsesFilipinoText(t *testing.T) {
	locale := DefaultLocale()
	locale.Code = "xx"

	prompt := BuildPrompt("desc", nil, locale)
	assert.True(t, strings.HasPrefix(prompt, promptTexts["fil"].intro))
}
