package models

// RelevantLaw is a statute cited in an analysis.
// Law holds the citation, e.g. "Civil Code, Article 1134".
type RelevantLaw struct {
	Title       string `json:"title"`
	Law         string `json:"law"`
	Description string `json:"description"`
	Relevance   Level  `json:"relevance"`
}

// Lawyer represents a lawyer directory entry
type Lawyer struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Location        string   `json:"location"`
	Contact         string   `json:"contact"`
	Email           string   `json:"email,omitempty"`
	StartingPrice   string   `json:"startingPrice,omitempty"`
	Distance        string   `json:"distance,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	Experience      string   `json:"experience,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Education       []string `json:"education,omitempty"`
	BarMembership   string   `json:"barMembership,omitempty"`
	PracticeAreas   []string `json:"practiceAreas,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	OfficeAddress   string   `json:"officeAddress,omitempty"`
	ConsultationFee string   `json:"consultationFee,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	CasesHandled    *int     `json:"casesHandled,omitempty"`
	SuccessRate     string   `json:"successRate,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}
