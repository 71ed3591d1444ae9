package service

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"batas-backend/models"
)

const (
	// warnings are synthesized below this many days remaining
	warningThresholdDays = 60
	defaultComplexity    = 5
	minComplexity        = 1
	maxComplexity        = 10
	consultationLead     = 7 * 24 * time.Hour
)

var codeFence = regexp.MustCompile("(?i)```(?:json)?")

// deadline layouts accepted from the model, all read as UTC
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Reference is the catalog snapshot one analysis is built against
type Reference struct {
	Laws    []models.RelevantLaw
	Lawyers []models.Lawyer
}

// Normalizer turns raw completion text into a CaseAnalysis
type Normalizer struct {
	locale      Locale
	lawyerLimit int
	lawLimit    int
	now         func() time.Time
	fallback    *FallbackAnalyzer
}

// NewNormalizer creates a normalizer. lawLimit 0 keeps every law the model
// cites; now defaults to time.Now.
func NewNormalizer(locale Locale, lawyerLimit, lawLimit int, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{
		locale:      locale,
		lawyerLimit: lawyerLimit,
		lawLimit:    lawLimit,
		now:         now,
		fallback:    NewFallbackAnalyzer(locale, lawyerLimit),
	}
}

// Normalize never fails. If no JSON object can be decoded from raw it returns
// the fallback analysis of description and reports true; otherwise every
// field is reconciled against defaults and the reference catalog.
func (n *Normalizer) Normalize(raw, description string, ref Reference) (*models.CaseAnalysis, bool) {
	obj, ok := decodeCompletion(raw)
	if !ok {
		return n.fallback.Analyze(description, ref.Lawyers), true
	}

	now := n.now().UTC()

	caseType := canonicalCaseType(stringField(obj, "caseType"))
	if caseType == "" {
		caseType = models.CaseTypeCivil
	}

	severity := mapField(obj, "severity")
	rating := parseLevel(stringField(severity, "rating"), models.LevelMedium)

	timeline := mapField(obj, "timeline")
	statute := mapField(timeline, "statuteOfLimitations")

	deadline := parseDeadline(stringField(statute, "deadline"))
	var daysRemaining *int
	if deadline != nil {
		days := daysUntil(*deadline, now)
		daysRemaining = &days
	}
	urgent := daysRemaining != nil && *daysRemaining < warningThresholdDays

	var warning *string
	if urgent {
		w := n.locale.Warning(*daysRemaining)
		warning = &w
	} else if w := stringField(statute, "warning"); w != "" {
		warning = &w
	}

	applicable := true
	if b, ok := statute["applicable"].(bool); ok {
		applicable = b
	}

	timeSensitivity := stringField(severity, "timeSensitivity")
	if timeSensitivity == "" {
		if urgent {
			timeSensitivity = n.locale.UrgentTime
		} else {
			timeSensitivity = n.locale.TimeSensitivity[rating]
		}
	}

	milestones := parseMilestones(timeline["milestones"])
	if len(milestones) == 0 && deadline != nil {
		milestones = []models.Milestone{
			{
				Date:  now.Add(consultationLead).Format(time.RFC3339),
				Event: n.locale.ConsultationMilestone,
				Type:  models.MilestoneMilestone,
			},
			{
				Date:  deadline.Format(time.RFC3339),
				Event: n.locale.DeadlineMilestone,
				Type:  models.MilestoneDeadline,
			},
		}
	}

	nextSteps := parseNextSteps(obj["nextSteps"])
	if len(nextSteps) == 0 {
		var first *string
		if deadline != nil {
			d := deadline.Format(time.RFC3339)
			first = &d
		}
		nextSteps = []models.NextStep{
			{Action: n.locale.ConsultStep, Priority: models.LevelHigh, Deadline: first},
			{Action: n.locale.GatherStep, Priority: models.LevelHigh},
		}
	}

	return &models.CaseAnalysis{
		CaseType: caseType,
		Severity: models.Severity{
			Rating:          rating,
			Complexity:      parseComplexity(severity["complexity"]),
			FinancialImpact: orDefault(stringField(severity, "financialImpact"), n.locale.FinancialImpact[rating]),
			TimeSensitivity: timeSensitivity,
		},
		Timeline: models.Timeline{
			IssueDuration: orDefault(stringField(timeline, "issueDuration"), n.locale.UnknownDuration),
			StatuteOfLimitations: models.StatuteOfLimitations{
				Applicable:    applicable,
				Deadline:      deadline,
				DaysRemaining: daysRemaining,
				Warning:       warning,
			},
			EstimatedResolution: orDefault(stringField(timeline, "estimatedResolution"), n.locale.Resolution[rating]),
			Milestones:          milestones,
		},
		RelevantLaws:       n.reconcileLaws(obj["relevantLaws"], ref.Laws),
		Rights:             orDefaultList(stringList(obj["rights"]), n.locale.Rights),
		Lawyers:            MatchLawyers(caseType, ref.Lawyers, n.lawyerLimit),
		EssentialDocuments: orDefaultList(stringList(obj["essentialDocuments"]), n.locale.Documents),
		NextSteps:          nextSteps,
		EstimatedCosts:     parseCosts(obj["estimatedCosts"]),
		RiskAssessment:     parseRisk(obj["riskAssessment"]),
		GovernmentAgencies: parseAgencies(obj["governmentAgencies"]),
		EvidenceGuide:      parseEvidence(obj["evidenceGuide"]),
	}, false
}

// decodeCompletion strips code fences and decodes the span from the first
// "{" to the last "}". Anything that is not a JSON object fails.
func decodeCompletion(raw string) (map[string]any, bool) {
	text := strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// reconcileLaws swaps each cited law for the stored record it matches, or
// keeps the model's entry with placeholders filled in
func (n *Normalizer) reconcileLaws(v any, stored []models.RelevantLaw) []models.RelevantLaw {
	laws := make([]models.RelevantLaw, 0)
	for _, item := range listOf(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if n.lawLimit > 0 && len(laws) == n.lawLimit {
			break
		}

		title := stringField(m, "title")
		citation := stringField(m, "law")
		if match, ok := matchLaw(title, citation, stored); ok {
			laws = append(laws, match)
			continue
		}

		description := stringField(m, "description")
		if description == "" {
			description = citation
		}
		laws = append(laws, models.RelevantLaw{
			Title:       orDefault(title, n.locale.LawTitlePlaceholder),
			Law:         orDefault(citation, n.locale.LawCitationPlaceholder),
			Description: description,
			Relevance:   parseLevel(stringField(m, "relevance"), models.LevelMedium),
		})
	}
	return laws
}

// matchLaw finds the first stored law whose title or citation contains, or is
// contained in, the given one. Blank values never match.
func matchLaw(title, citation string, stored []models.RelevantLaw) (models.RelevantLaw, bool) {
	title = strings.ToLower(title)
	citation = strings.ToLower(citation)
	for _, law := range stored {
		if overlaps(strings.ToLower(law.Title), title) || overlaps(strings.ToLower(law.Law), citation) {
			return law, true
		}
	}
	return models.RelevantLaw{}, false
}

func overlaps(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func parseComplexity(v any) int {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return defaultComplexity
		}
		f = parsed
	default:
		return defaultComplexity
	}
	if math.IsNaN(f) {
		return defaultComplexity
	}
	f = math.Round(f)
	if f < minComplexity {
		return minComplexity
	}
	if f > maxComplexity {
		return maxComplexity
	}
	return int(f)
}

func parseDeadline(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func parseLevel(s string, def models.Level) models.Level {
	l := models.Level(strings.ToLower(s))
	if l.Valid() {
		return l
	}
	return def
}

func parseMilestones(v any) []models.Milestone {
	milestones := make([]models.Milestone, 0)
	for _, item := range listOf(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		date := stringField(m, "date")
		event := stringField(m, "event")
		if date == "" || event == "" {
			continue
		}
		kind := models.MilestoneType(strings.ToLower(stringField(m, "type")))
		switch kind {
		case models.MilestoneDeadline, models.MilestoneMilestone, models.MilestoneWarning:
		default:
			kind = models.MilestoneMilestone
		}
		milestones = append(milestones, models.Milestone{Date: date, Event: event, Type: kind})
	}
	return milestones
}

func parseNextSteps(v any) []models.NextStep {
	var steps []models.NextStep
	for _, item := range listOf(v) {
		switch t := item.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				steps = append(steps, models.NextStep{Action: s, Priority: models.LevelMedium})
			}
		case map[string]any:
			action := stringField(t, "action")
			if action == "" {
				continue
			}
			step := models.NextStep{
				Action:   action,
				Priority: parseLevel(stringField(t, "priority"), models.LevelMedium),
			}
			if d := stringField(t, "deadline"); d != "" {
				step.Deadline = &d
			}
			steps = append(steps, step)
		}
	}
	return steps
}

func parseCosts(v any) *models.EstimatedCosts {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	costs := &models.EstimatedCosts{
		ConsultationFee: stringField(m, "consultationFee"),
		FilingFees:      stringField(m, "filingFees"),
		TotalEstimated:  stringField(m, "totalEstimated"),
		PaymentPlan:     stringField(m, "paymentPlan"),
		AdditionalCosts: stringField(m, "additionalCosts"),
		CostBreakdown:   stringField(m, "costBreakdown"),
	}
	if costs.ConsultationFee == "" || costs.FilingFees == "" || costs.TotalEstimated == "" {
		return nil
	}
	return costs
}

func parseRisk(v any) *models.RiskAssessment {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	risk := &models.RiskAssessment{
		InactionRisks:  orDefaultList(stringList(m["inactionRisks"]), nil),
		ActionBenefits: orDefaultList(stringList(m["actionBenefits"]), nil),
		UrgencyLevel:   stringField(m, "urgencyLevel"),
	}
	if len(risk.InactionRisks) == 0 && len(risk.ActionBenefits) == 0 && risk.UrgencyLevel == "" {
		return nil
	}
	return risk
}

func parseAgencies(v any) []models.GovernmentAgency {
	var agencies []models.GovernmentAgency
	for _, item := range listOf(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := stringField(m, "name")
		if name == "" {
			continue
		}
		agencies = append(agencies, models.GovernmentAgency{
			Name:    name,
			Purpose: stringField(m, "purpose"),
			Contact: stringField(m, "contact"),
			Website: stringField(m, "website"),
		})
	}
	return agencies
}

func parseEvidence(v any) []models.EvidenceItem {
	var items []models.EvidenceItem
	for _, entry := range listOf(v) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := stringField(m, "item")
		if item == "" {
			continue
		}
		importance := models.Importance(strings.ToLower(stringField(m, "importance")))
		switch importance {
		case models.ImportanceCritical, models.ImportanceImportant, models.ImportanceHelpful:
		default:
			importance = models.ImportanceImportant
		}
		items = append(items, models.EvidenceItem{
			Item:        item,
			Description: stringField(m, "description"),
			Importance:  importance,
		})
	}
	return items
}

func mapField(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func listOf(v any) []any {
	l, _ := v.([]any)
	return l
}

func stringList(v any) []string {
	var out []string
	for _, item := range listOf(v) {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// orDefaultList returns list, or a copy of def when list is empty. The
// result is never nil.
func orDefaultList(list, def []string) []string {
	if len(list) > 0 {
		return list
	}
	return append(make([]string, 0, len(def)), def...)
}

// daysUntil is ceil((deadline-now)/24h). It works from Unix seconds because
// time.Duration saturates for deadlines centuries away.
func daysUntil(deadline, now time.Time) int {
	secs := float64(deadline.Unix()-now.Unix()) +
		float64(deadline.Nanosecond()-now.Nanosecond())/float64(time.Second)
	return int(math.Ceil(secs / (24 * 60 * 60)))
}
