package domain

import "time"

// Warnings names the sections of a page load that failed while the rest
// still loaded, with the failure message of each.
type Warnings map[string]string

// Add records err under section; a nil err is ignored.
func (w Warnings) Add(section string, err error) {
	if err != nil {
		w[section] = err.Error()
	}
}

// ClassDetails is the roster view of one class.
type ClassDetails struct {
	Class    *Class            `json:"class,omitempty"`
	Students []ClassStudent    `json:"students"`
	Stats    []StudentActivity `json:"stats"`
	Warnings Warnings          `json:"warnings,omitempty"`
}

// StudentOverview is everything the student page shows on load.
type StudentOverview struct {
	Classes        []StudentClass `json:"classes"`
	ChatSessions   []ChatSession  `json:"chat_sessions"`
	Pods           []StudyPod     `json:"pods"`
	Notes          []Note         `json:"notes"`
	SymptomHistory []SymptomCheck `json:"symptom_history"`
	Warnings       Warnings       `json:"warnings,omitempty"`
}

// SessionClaims is the decoded, unverified payload of the session token.
type SessionClaims struct {
	Subject   string     `json:"sub,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}
