package service

import (
	"fmt"
	"strings"

	"batas-backend/models"
)

// responseSchema is the JSON shape the model must return. {{LANG}} marks the
// fields that must be written in the output language.
const responseSchema = `{
  "caseType": "{{CASE_TYPES}}",
  "severity": {
    "rating": "low|medium|high",
    "complexity": <number 1-10>,
    "financialImpact": "<detailed description{{LANG}}>",
    "timeSensitivity": "<detailed description{{LANG}}>"
  },
  "timeline": {
    "issueDuration": "<extracted duration{{LANG}}>",
    "statuteOfLimitations": {
      "applicable": <boolean>,
      "deadline": "<ISO date string or null>",
      "daysRemaining": <number or null>,
      "warning": "<warning message{{LANG}} or null>"
    },
    "estimatedResolution": "<estimated timeline{{LANG}}>",
    "milestones": [
      {
        "date": "<ISO date string>",
        "event": "<event{{LANG}}>",
        "type": "deadline|milestone|warning"
      }
    ]
  },
  "relevantLaws": [
    {
      "title": "<law title>",
      "law": "<law citation>",
      "description": "<how it applies{{LANG}}>",
      "relevance": "high|medium|low"
    }
  ],
  "rights": [
    "<specific right 1{{LANG}}>",
    "<specific right 2{{LANG}}>",
    "<specific right 3{{LANG}}>",
    "... (more if applicable)"
  ],
  "essentialDocuments": [
    "<document 1 needed{{LANG}}>",
    "<document 2 needed{{LANG}}>",
    "<document 3 needed{{LANG}}>",
    "... (more if applicable)"
  ],
  "nextSteps": [
    {
      "action": "<action item{{LANG}}>",
      "priority": "high|medium|low",
      "deadline": "<ISO date string or null>"
    }
  ],
  "estimatedCosts": {
    "consultationFee": "<estimated consultation fee range in PHP, e.g. '₱3,000 - ₱5,000'>",
    "filingFees": "<estimated filing fees range in PHP, e.g. '₱5,000 - ₱15,000'>",
    "totalEstimated": "<total estimated cost range in PHP, e.g. '₱10,000 - ₱50,000'>",
    "paymentPlan": "<optional note about payment plans{{LANG}}>",
    "additionalCosts": "<optional: other costs such as notary fees or court fees{{LANG}}>",
    "costBreakdown": "<optional: detailed breakdown of costs{{LANG}}>"
  },
  "riskAssessment": {
    "inactionRisks": ["<risk of doing nothing{{LANG}}>"],
    "actionBenefits": ["<benefit of acting now{{LANG}}>"],
    "urgencyLevel": "<urgency summary{{LANG}}>"
  },
  "governmentAgencies": [
    {
      "name": "<agency name>",
      "purpose": "<why to contact this agency{{LANG}}>",
      "contact": "<phone number or contact info>",
      "website": "<optional website URL>"
    }
  ],
  "evidenceGuide": [
    {
      "item": "<evidence to collect{{LANG}}>",
      "description": "<why it matters and how to get it{{LANG}}>",
      "importance": "critical|important|helpful"
    }
  ]
}`

type promptText struct {
	intro        string
	situation    string
	references   string
	schemaIntro  string
	langHint     string
	instructions string
	steps        []string
	closing      string
}

var promptTexts = map[string]promptText{
	"fil": {
		intro:        "Ikaw ay isang legal na eksperto na dalubhasa sa batas ng Pilipinas. Suriin ang sumusunod na legal na sitwasyon at magbigay ng komprehensibong pagsusuri.",
		situation:    "SITWASYON NG USER:",
		references:   "MGA AVAILABLE NA BATAS NG PILIPINAS PARA SA REFERENCE:",
		schemaIntro:  "Pakiusap na suriin ang kasong ito at magbigay ng JSON response gamit ang sumusunod na structure.",
		langHint:     " sa Tagalog",
		instructions: "IMPORTANT INSTRUCTIONS (LAHAT NG RESPONSE AY DAPAT NASA TAGALOG):",
		steps: []string{
			"I-extract ang case type batay sa sitwasyong inilarawan",
			"Suriin ang severity batay sa legal complexity, financial impact, at urgency",
			"Tukuyin ang LAHAT ng kaugnay na batas ng Pilipinas mula sa provided list - isama ang lahat ng applicable (walang limit, maging comprehensive)",
			"I-extract o infer ang duration ng issue mula sa description",
			"Tukuyin kung applicable ang statute of limitations at kalkulahin ang deadlines kung applicable",
			"Magbigay ng LAHAT ng specific, actionable na karapatan batay sa batas ng Pilipinas - isama ang lahat ng applicable (walang limit)",
			"Listahin ang essential documents na kailangan para sa specific na kasong ito",
			"Gumawa ng prioritized next steps na may deadlines kung applicable",
			"Tantiyahin ang realistic costs batay sa Philippine legal fees (consultation fees typically ₱3,000-₱10,000, filing fees vary by case type). Isama ang detailed breakdown ng lahat ng potential costs.",
			"Tukuyin ang relevant Philippine government agencies (e.g., DOJ, DSWD, DOLE, LRA, etc.) na makakatulong",
			"Ihambing ang panganib ng hindi pagkilos at ang benepisyo ng agarang pagkilos sa riskAssessment",
			"Gumawa ng evidenceGuide: mga ebidensyang dapat tipunin, bakit mahalaga, at gaano kahalaga",
			"Gamitin ang actual Philippine legal principles at i-cite ang specific laws kapag posible",
			"Magbalik ng valid JSON LAMANG, walang additional text o markdown formatting",
		},
		closing: "Suriin ang kaso ngayon at ibalik ang JSON response:",
	},
	"en": {
		intro:        "You are a legal expert specializing in Philippine law. Analyze the following legal situation and provide a comprehensive assessment.",
		situation:    "USER SITUATION:",
		references:   "AVAILABLE PHILIPPINE LAWS FOR REFERENCE:",
		schemaIntro:  "Analyze this case and return a JSON response using the following structure.",
		langHint:     " in English",
		instructions: "IMPORTANT INSTRUCTIONS:",
		steps: []string{
			"Extract the case type from the situation described",
			"Assess severity based on legal complexity, financial impact and urgency",
			"Identify ALL related Philippine laws from the provided list - include every applicable one (no limit, be comprehensive)",
			"Extract or infer the duration of the issue from the description",
			"Determine whether a statute of limitations applies and compute the deadline when it can be derived",
			"List ALL specific, actionable rights under Philippine law - include every applicable one (no limit)",
			"List the essential documents needed for this specific case",
			"Produce prioritized next steps with deadlines where relevant",
			"Estimate realistic costs based on Philippine legal fees (consultation fees typically ₱3,000-₱10,000, filing fees vary by case type). Include a detailed breakdown of all potential costs.",
			"Identify relevant Philippine government agencies (e.g., DOJ, DSWD, DOLE, LRA) that can help",
			"Contrast the risks of inaction with the benefits of acting now in riskAssessment",
			"Produce an evidenceGuide: evidence to collect, why it matters and how important it is",
			"Use actual Philippine legal principles and cite specific laws where possible",
			"Return valid JSON ONLY, with no additional text or markdown formatting",
		},
		closing: "Analyze the case now and return the JSON response:",
	},
}

// BuildPrompt renders the situation description, every reference law and the
// response schema into one instruction prompt. The output language is pinned
// near the start and again at the end.
func BuildPrompt(description string, laws []models.RelevantLaw, locale Locale) string {
	text, ok := promptTexts[locale.Code]
	if !ok {
		text = promptTexts[filipino.Code]
	}
	pin := languagePin(locale)

	caseTypes := make([]string, len(models.CaseTypes))
	for i, ct := range models.CaseTypes {
		caseTypes[i] = string(ct)
	}
	schema := strings.NewReplacer(
		"{{CASE_TYPES}}", strings.Join(caseTypes, "|"),
		"{{LANG}}", text.langHint,
	).Replace(responseSchema)

	var b strings.Builder
	b.WriteString(text.intro)
	b.WriteString("\n")
	b.WriteString(pin)
	b.WriteString("\n\n")

	b.WriteString(text.situation)
	b.WriteString("\n")
	b.WriteString(description)
	b.WriteString("\n\n")

	b.WriteString(text.references)
	b.WriteString("\n")
	b.WriteString(renderLaws(laws))
	b.WriteString("\n\n")

	b.WriteString(text.schemaIntro)
	b.WriteString(" ")
	b.WriteString(pin)
	b.WriteString("\n")
	b.WriteString(schema)
	b.WriteString("\n\n")

	b.WriteString(text.instructions)
	b.WriteString("\n")
	for i, step := range text.steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "%d. %s\n\n", len(text.steps)+1, pin)

	b.WriteString(text.closing)
	return b.String()
}

// languagePin is the non-negotiable output language rule
func languagePin(locale Locale) string {
	if locale.Code == english.Code {
		return "IMPORTANT: ALL TEXT IN THE RESPONSE MUST BE IN ENGLISH ONLY."
	}
	return fmt.Sprintf("IMPORTANTE: LAHAT NG TEKSTO SA RESPONSE AY DAPAT NASA %s LAMANG.", strings.ToUpper(locale.Language))
}

func renderLaws(laws []models.RelevantLaw) string {
	parts := make([]string, 0, len(laws))
	for _, law := range laws {
		parts = append(parts, fmt.Sprintf("- %s: %s\n  %s", law.Title, law.Law, law.Description))
	}
	return strings.Join(parts, "\n\n")
}
