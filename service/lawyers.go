package service

import (
	"strings"

	"batas-backend/models"
)

// DefaultLawyerLimit is how many lawyers an analysis recommends
const DefaultLawyerLimit = 3

// specialization keywords per case type; unlisted types match every lawyer
var lawyerKeywords = map[models.CaseType][]string{
	models.CaseTypeProperty:  {"property", "real estate"},
	models.CaseTypeCriminal:  {"criminal"},
	models.CaseTypeLabor:     {"labor"},
	models.CaseTypeFamilyLaw: {"family"},
}

// MatchLawyers keeps directory order and returns at most limit lawyers whose
// specialization fits caseType. The result is never nil.
func MatchLawyers(caseType models.CaseType, lawyers []models.Lawyer, limit int) []models.Lawyer {
	if limit <= 0 {
		limit = DefaultLawyerLimit
	}

	keywords := lawyerKeywords[canonicalCaseType(string(caseType))]
	matched := make([]models.Lawyer, 0, limit)
	for _, l := range lawyers {
		if len(matched) == limit {
			break
		}
		if len(keywords) == 0 || containsAny(strings.ToLower(l.Specialization), keywords) {
			matched = append(matched, l)
		}
	}
	return matched
}

// canonicalCaseType maps "property" to "Property"; unknown values are kept
func canonicalCaseType(s string) models.CaseType {
	s = strings.TrimSpace(s)
	for _, ct := range models.CaseTypes {
		if strings.EqualFold(s, string(ct)) {
			return ct
		}
	}
	return models.CaseType(s)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
