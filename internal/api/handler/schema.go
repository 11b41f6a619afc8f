package handler

import "github.com/studycare/studycare-client/internal/core/domain"

// Request bodies accepted by the dashboard API. Fields the controllers trim
// and check themselves carry no validate tag.

type createClassRequest struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject"`
}

type joinClassRequest struct {
	Code string `json:"code" validate:"required"`
}

type chatSessionRequest struct {
	Subject string `json:"subject"`
}

type chatMessageRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type createPodRequest struct {
	Name string `json:"name" validate:"required"`
}

type podMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type linkChildRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type sessionResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect,omitempty"`
}

type chatMessagesResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type podMessagesResponse struct {
	Messages []domain.PodMessage `json:"messages"`
}

type classesResponse struct {
	Classes []domain.Class `json:"classes"`
}

type childrenResponse struct {
	Children []domain.CaregiverChild `json:"children"`
}
