package domain

// Severity is the backend's triage level for a symptom check.
type Severity string

const (
	SeverityMild      Severity = "mild"
	SeverityModerate  Severity = "moderate"
	SeveritySevere    Severity = "severe"
	SeverityEmergency Severity = "emergency"
)

type SymptomCheck struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	SessionID     string   `json:"session_id"`
	Symptoms      string   `json:"symptoms"`
	Guidance      string   `json:"guidance"`
	SeverityLevel Severity `json:"severity_level,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type SymptomGuidance struct {
	Guidance        string   `json:"guidance"`
	EducationalInfo string   `json:"educationalInfo"`
	WhenToSeekHelp  string   `json:"whenToSeekHelp"`
	SeverityLevel   Severity `json:"severityLevel"`
	Disclaimer      string   `json:"disclaimer"`
}
