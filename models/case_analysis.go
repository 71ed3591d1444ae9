package models

import "time"

// CaseType is the category a situation is classified into
type CaseType string

const (
	CaseTypeCivil     CaseType = "Civil"
	CaseTypeCriminal  CaseType = "Criminal"
	CaseTypeProperty  CaseType = "Property"
	CaseTypeLabor     CaseType = "Labor"
	CaseTypeFamilyLaw CaseType = "Family Law"
	CaseTypeAdmin     CaseType = "Administrative"
	CaseTypeTax       CaseType = "Tax"
	CaseTypeCorporate CaseType = "Corporate"
)

// CaseTypes lists every category the classifier may produce, in the order
// they are presented to the model.
var CaseTypes = []CaseType{
	CaseTypeProperty,
	CaseTypeCriminal,
	CaseTypeLabor,
	CaseTypeFamilyLaw,
	CaseTypeCivil,
	CaseTypeAdmin,
	CaseTypeTax,
	CaseTypeCorporate,
}

// Level is a low/medium/high scale shared by severity, relevance and priority
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Valid reports whether l is one of the three known levels
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// MilestoneType marks how a timeline entry should be rendered
type MilestoneType string

const (
	MilestoneDeadline  MilestoneType = "deadline"
	MilestoneMilestone MilestoneType = "milestone"
	MilestoneWarning   MilestoneType = "warning"
)

// Importance ranks an evidence item
type Importance string

const (
	ImportanceCritical  Importance = "critical"
	ImportanceImportant Importance = "important"
	ImportanceHelpful   Importance = "helpful"
)

// CaseAnalysis is the result returned for one submitted description.
// It is built once per request and never mutated afterwards.
type CaseAnalysis struct {
	CaseType           CaseType           `json:"caseType"`
	Severity           Severity           `json:"severity"`
	Timeline           Timeline           `json:"timeline"`
	RelevantLaws       []RelevantLaw      `json:"relevantLaws"`
	Rights             []string           `json:"rights"`
	Lawyers            []Lawyer           `json:"lawyers"`
	EssentialDocuments []string           `json:"essentialDocuments"`
	NextSteps          []NextStep         `json:"nextSteps"`
	EstimatedCosts     *EstimatedCosts    `json:"estimatedCosts,omitempty"`
	RiskAssessment     *RiskAssessment    `json:"riskAssessment,omitempty"`
	GovernmentAgencies []GovernmentAgency `json:"governmentAgencies,omitempty"`
	EvidenceGuide      []EvidenceItem     `json:"evidenceGuide,omitempty"`
}

// Severity describes how serious and how complex a case is
type Severity struct {
	Rating          Level  `json:"rating"`
	Complexity      int    `json:"complexity"`
	FinancialImpact string `json:"financialImpact"`
	TimeSensitivity string `json:"timeSensitivity"`
}

// Timeline groups duration estimates and dated milestones
type Timeline struct {
	IssueDuration        string               `json:"issueDuration"`
	StatuteOfLimitations StatuteOfLimitations `json:"statuteOfLimitations"`
	EstimatedResolution  string               `json:"estimatedResolution"`
	Milestones           []Milestone          `json:"milestones"`
}

// StatuteOfLimitations holds the filing deadline, if any.
// DaysRemaining is always derived from Deadline at normalization time.
type StatuteOfLimitations struct {
	Applicable    bool       `json:"applicable"`
	Deadline      *time.Time `json:"deadline"`
	DaysRemaining *int       `json:"daysRemaining"`
	Warning       *string    `json:"warning"`
}

// Milestone is one dated entry on the timeline
type Milestone struct {
	Date  string        `json:"date"`
	Event string        `json:"event"`
	Type  MilestoneType `json:"type"`
}

// NextStep is a recommended action
type NextStep struct {
	Action   string  `json:"action"`
	Priority Level   `json:"priority"`
	Deadline *string `json:"deadline"`
}

// EstimatedCosts is a rough cost breakdown in pesos
type EstimatedCosts struct {
	ConsultationFee string `json:"consultationFee"`
	FilingFees      string `json:"filingFees"`
	TotalEstimated  string `json:"totalEstimated"`
	PaymentPlan     string `json:"paymentPlan,omitempty"`
	AdditionalCosts string `json:"additionalCosts,omitempty"`
	CostBreakdown   string `json:"costBreakdown,omitempty"`
}

// RiskAssessment contrasts acting with doing nothing
type RiskAssessment struct {
	InactionRisks  []string `json:"inactionRisks"`
	ActionBenefits []string `json:"actionBenefits"`
	UrgencyLevel   string   `json:"urgencyLevel"`
}

// GovernmentAgency is an office the user may contact
type GovernmentAgency struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Contact string `json:"contact"`
	Website string `json:"website,omitempty"`
}

// EvidenceItem is one piece of evidence worth collecting
type EvidenceItem struct {
	Item        string     `json:"item"`
	Description string     `json:"description"`
	Importance  Importance `json:"importance"`
}
