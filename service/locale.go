package service

import (
	"fmt"
	"strings"

	"batas-backend/models"
)

// Locale holds the output language and every canned text the pipeline
// substitutes when the model leaves a field out
type Locale struct {
	Code     string
	Language string

	FinancialImpact map[models.Level]string
	TimeSensitivity map[models.Level]string
	UrgentTime      string
	Resolution      map[models.Level]string

	// WarningFormat takes the number of days remaining
	WarningFormat  string
	ExpiredWarning string

	ConsultationMilestone string
	DeadlineMilestone     string
	UnknownDuration       string

	LawTitlePlaceholder    string
	LawCitationPlaceholder string

	Rights    []string
	Documents []string

	ConsultStep   string
	GatherStep    string
	FallbackStep  string
	FallbackCosts models.EstimatedCosts
}

// Warning renders the statute-of-limitations warning for days remaining
func (l Locale) Warning(days int) string {
	if days <= 0 {
		return l.ExpiredWarning
	}
	return fmt.Sprintf(l.WarningFormat, days)
}

var filipino = Locale{
	Code:     "fil",
	Language: "Tagalog/Filipino",
	FinancialImpact: map[models.Level]string{
		models.LevelHigh:   "Mataas - Maaaring may kasamang malaking halaga ng property o malubhang kahihinatnan",
		models.LevelMedium: "Katamtaman - Maaaring may kasamang katamtamang financial o personal na epekto",
		models.LevelLow:    "Mababa - Relatibong menor na epekto ang inaasahan",
	},
	TimeSensitivity: map[models.Level]string{
		models.LevelHigh:   "Mataas - Kailangang kumilos sa lalong madaling panahon",
		models.LevelMedium: "Katamtaman - Dapat kumilos sa loob ng makatwirang panahon",
		models.LevelLow:    "Mababa - May sapat na panahon para maghanda",
	},
	UrgentTime: "Urgent - Malapit na ang statute of limitations",
	Resolution: map[models.Level]string{
		models.LevelHigh:   "6-12 buwan (maaaring mag-iba)",
		models.LevelMedium: "3-6 buwan (maaaring mag-iba)",
		models.LevelLow:    "1-3 buwan (maaaring mag-iba)",
	},
	WarningFormat:          "Ang preskripsyon ay mag-e-expire sa %d araw",
	ExpiredWarning:         "Maaaring lumipas na ang panahon ng preskripsyon",
	ConsultationMilestone:  "Paunang konsultasyon sa abogado",
	DeadlineMilestone:      "Deadline ng preskripsyon",
	UnknownDuration:        "Hindi alam",
	LawTitlePlaceholder:    "Relevant Law",
	LawCitationPlaceholder: "Philippine Law",
	Rights: []string{
		"Mayroon kayong karapatan sa due process sa ilalim ng batas",
		"Mayroon kayong karapatan sa legal representation",
		"Mayroon kayong karapatan na magharap ng ebidensya para sa inyong pabor",
	},
	Documents: []string{
		"Lahat ng kaugnay na dokumento tungkol sa inyong kaso",
		"Valid identification",
		"Ebidensya na sumusuporta sa inyong claim",
	},
	ConsultStep:  "Konsultahin ang isang kwalipikadong abogado na dalubhasa sa inyong uri ng kaso sa lalong madaling panahon",
	GatherStep:   "Tipunin at ayusin ang lahat ng mahahalagang dokumento tungkol sa inyong kaso",
	FallbackStep: "Konsultahin ang isang kwalipikadong abogado na dalubhasa sa inyong uri ng kaso",
	FallbackCosts: models.EstimatedCosts{
		ConsultationFee: "₱3,000 - ₱5,000",
		FilingFees:      "₱5,000 - ₱15,000",
		TotalEstimated:  "₱10,000 - ₱50,000",
		PaymentPlan:     "Karamihan ng mga abogado ay nag-aalok ng payment plan",
		AdditionalCosts: "Maaaring may iba pang gastos tulad ng notary fees, courier fees, at iba pa",
		CostBreakdown:   "Konsultasyon: ₱3,000-₱5,000 | Filing fees: ₱5,000-₱15,000 | Iba pang gastos: ₱2,000-₱10,000",
	},
}

var english = Locale{
	Code:     "en",
	Language: "English",
	FinancialImpact: map[models.Level]string{
		models.LevelHigh:   "High - May involve significant property value or serious consequences",
		models.LevelMedium: "Moderate - May involve moderate financial or personal impact",
		models.LevelLow:    "Low - Relatively minor impact expected",
	},
	TimeSensitivity: map[models.Level]string{
		models.LevelHigh:   "High - Act as soon as possible",
		models.LevelMedium: "Moderate - Act within a reasonable time",
		models.LevelLow:    "Low - There is enough time to prepare",
	},
	UrgentTime: "Urgent - The statute of limitations is close",
	Resolution: map[models.Level]string{
		models.LevelHigh:   "6-12 months (may vary)",
		models.LevelMedium: "3-6 months (may vary)",
		models.LevelLow:    "1-3 months (may vary)",
	},
	WarningFormat:          "The prescriptive period expires in %d days",
	ExpiredWarning:         "The prescriptive period may already have lapsed",
	ConsultationMilestone:  "Initial consultation with a lawyer",
	DeadlineMilestone:      "Prescription deadline",
	UnknownDuration:        "Unknown",
	LawTitlePlaceholder:    "Relevant Law",
	LawCitationPlaceholder: "Philippine Law",
	Rights: []string{
		"You have the right to due process under the law",
		"You have the right to legal representation",
		"You have the right to present evidence in your favor",
	},
	Documents: []string{
		"All documents related to your case",
		"Valid identification",
		"Evidence supporting your claim",
	},
	ConsultStep:  "Consult a qualified lawyer who handles your type of case as soon as possible",
	GatherStep:   "Gather and organize all important documents about your case",
	FallbackStep: "Consult a qualified lawyer who handles your type of case",
	FallbackCosts: models.EstimatedCosts{
		ConsultationFee: "₱3,000 - ₱5,000",
		FilingFees:      "₱5,000 - ₱15,000",
		TotalEstimated:  "₱10,000 - ₱50,000",
		PaymentPlan:     "Most lawyers offer payment plans",
		AdditionalCosts: "There may be other costs such as notary fees, courier fees and similar",
		CostBreakdown:   "Consultation: ₱3,000-₱5,000 | Filing fees: ₱5,000-₱15,000 | Other costs: ₱2,000-₱10,000",
	},
}

// DefaultLocale is Filipino
func DefaultLocale() Locale {
	return filipino
}

// LocaleFor returns the locale for a language code such as "fil", "tl" or "en"
func LocaleFor(code string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "fil", "tl", "tagalog", "filipino":
		return filipino, nil
	case "en", "english":
		return english, nil
	default:
		return Locale{}, fmt.Errorf("unsupported output language: %q", code)
	}
}
