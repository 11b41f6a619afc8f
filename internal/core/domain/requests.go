package domain

// Request payloads sent by the façades. The validate tags are checked by the
// page controllers before anything goes over the wire.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name,omitempty"`
	Role     Role   `json:"role" validate:"required,oneof=student teacher caregiver"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateClassRequest struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject,omitempty"`
}

type JoinClassRequest struct {
	ClassCode string `json:"classCode" validate:"required"`
}

type CreateChatSessionRequest struct {
	Subject string `json:"subject,omitempty"`
}

type ChatMessageRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Language  string `json:"language,omitempty"`
}

type ImageQuestionRequest struct {
	Question string `json:"question" validate:"required"`
}

type SynthesizeRequest struct {
	Text      string `json:"text" validate:"required"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

type CreatePodRequest struct {
	Name string `json:"name" validate:"required"`
}

type PodMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags,omitempty"`
}

type UpdateNoteRequest struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type SymptomCheckRequest struct {
	Symptoms       string `json:"symptoms" validate:"required"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

type LinkChildRequest struct {
	ChildEmail string `json:"childEmail" validate:"required,email"`
}
