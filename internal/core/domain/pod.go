package domain

type PodRole string

const (
	PodRoleMember PodRole = "member"
	PodRoleAdmin  PodRole = "admin"
)

// StudyPod is a small group chat for students studying together.
type StudyPod struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	CreatedBy   string      `json:"created_by"`
	CreatedAt   string      `json:"created_at"`
	Members     []PodMember `json:"members,omitempty"`
	MemberCount int         `json:"memberCount,omitempty"`
}

type PodMember struct {
	ID       string   `json:"id"`
	PodID    string   `json:"pod_id"`
	UserID   string   `json:"user_id"`
	Role     PodRole  `json:"role"`
	JoinedAt string   `json:"joined_at"`
	User     *UserRef `json:"user,omitempty"`
}

type PodMessage struct {
	ID         string   `json:"id"`
	PodID      string   `json:"pod_id"`
	UserID     string   `json:"user_id"`
	Content    string   `json:"content"`
	AIGuidance string   `json:"ai_guidance,omitempty"`
	CreatedAt  string   `json:"created_at"`
	User       *UserRef `json:"user,omitempty"`
}
