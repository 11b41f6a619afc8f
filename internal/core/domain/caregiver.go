package domain

// ChildRef is the child account projection embedded in a CaregiverChild.
type ChildRef struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name,omitempty"`
	SimplifiedMode bool   `json:"simplified_mode"`
}

type CaregiverChild struct {
	ID          string    `json:"id"`
	CaregiverID string    `json:"caregiver_id"`
	ChildID     string    `json:"child_id"`
	CreatedAt   string    `json:"created_at"`
	Child       *ChildRef `json:"child,omitempty"`
}

// ActivityItem is one line of a child's recent activity feed.
type ActivityItem struct {
	Type        string `json:"type"` // chat, note, class or image
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type ChildActivity struct {
	ChildID           string         `json:"child_id"`
	ChildName         string         `json:"child_name,omitempty"`
	ChildEmail        string         `json:"child_email"`
	ClassesCount      int            `json:"classes_count"`
	NotesCount        int            `json:"notes_count"`
	ChatSessionsCount int            `json:"chat_sessions_count"`
	LastActive        *string        `json:"last_active"`
	RecentActivity    []ActivityItem `json:"recent_activity"`
}
