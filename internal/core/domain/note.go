package domain

type Note struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	AISummary     string   `json:"ai_summary,omitempty"`
	AIExplanation string   `json:"ai_explanation,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type NoteSummary struct {
	Summary       string   `json:"summary"`
	KeyPoints     []string `json:"keyPoints"`
	SuggestedTags []string `json:"suggestedTags"`
}

type NoteExplanation struct {
	Explanation string   `json:"explanation"`
	Concepts    []string `json:"concepts"`
}
