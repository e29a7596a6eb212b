package models

// SentimentLabel is the emotional polarity of a message.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// ConfidenceTier describes how much to trust a sentiment score.
// Only an external classifier can produce a high tier.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

type SentimentResult struct {
	Label      SentimentLabel `json:"label"`
	Score      float64        `json:"score"`
	Confidence ConfidenceTier `json:"confidence"`
}

// ConcernCategory is the closed set of concern categories the pipeline
// knows how to respond to. External classifiers may emit labels outside
// this set; the response catalog falls back to the general pool for those.
type ConcernCategory string

const (
	ConcernAnxiety       ConcernCategory = "anxiety"
	ConcernDepression    ConcernCategory = "depression"
	ConcernStress        ConcernCategory = "stress"
	ConcernTrauma        ConcernCategory = "trauma"
	ConcernRelationships ConcernCategory = "relationships"
	ConcernFinancial     ConcernCategory = "financial"
	ConcernGeneral       ConcernCategory = "general"
)

type MentalStateResult struct {
	Category   ConcernCategory `json:"category"`
	Confidence float64         `json:"confidence"`
}

// CrisisLevel grades a detected crisis.
type CrisisLevel string

const (
	CrisisModerate CrisisLevel = "moderate"
	CrisisHigh     CrisisLevel = "high"
)

// ContactRecord is a static crisis contact entry. Loaded once at process
// start and never mutated.
type ContactRecord struct {
	Name         string `json:"name"`
	Number       string `json:"number"`
	Availability string `json:"availability"`
	Type         string `json:"type"`
}

// CrisisResult is the outcome of crisis detection. All fields besides
// IsCrisis and Score are populated only when IsCrisis is true.
type CrisisResult struct {
	IsCrisis          bool            `json:"is_crisis"`
	Level             CrisisLevel     `json:"crisis_level,omitempty"`
	Score             float64         `json:"-"`
	Message           string          `json:"message,omitempty"`
	DetectedKeywords  []string        `json:"detected_keywords,omitempty"`
	EmergencyContacts []ContactRecord `json:"emergency_contacts,omitempty"`
	ImmediateActions  []string        `json:"immediate_actions,omitempty"`
}

// ResponseType records which path produced the reply text.
type ResponseType string

const (
	ResponseAIGenerated ResponseType = "ai_generated"
	ResponseTemplate    ResponseType = "template"
	ResponseFallback    ResponseType = "fallback"
)

// ChatAnalysis is the pipeline's complete answer for one user message.
// The caller always receives a well-formed ChatAnalysis, never an error.
type ChatAnalysis struct {
	Message           string             `json:"message"`
	IsCrisis          bool               `json:"is_crisis"`
	CrisisLevel       CrisisLevel        `json:"crisis_level,omitempty"`
	DetectedKeywords  []string           `json:"detected_keywords,omitempty"`
	EmergencyContacts []ContactRecord    `json:"emergency_contacts,omitempty"`
	ImmediateActions  []string           `json:"immediate_actions,omitempty"`
	Sentiment         *SentimentResult   `json:"sentiment,omitempty"`
	MentalState       *MentalStateResult `json:"mental_state,omitempty"`
	Suggestions       []string           `json:"suggestions"`
	Confidence        float64            `json:"confidence"`
	ResponseType      ResponseType       `json:"response_type,omitempty"`
}
