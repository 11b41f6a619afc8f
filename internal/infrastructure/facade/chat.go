package facade

import (
	"context"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

type Chat struct {
	r apiclient.Requester
}

func (c *Chat) CreateSession(ctx context.Context, req domain.CreateChatSessionRequest) domain.Response[domain.ChatSession] {
	return apiclient.Post[domain.ChatSession](ctx, c.r, "/chat/session", req)
}

func (c *Chat) SendMessage(ctx context.Context, req domain.ChatMessageRequest) domain.Response[domain.ChatReply] {
	return apiclient.Post[domain.ChatReply](ctx, c.r, "/chat/message", req)
}

func (c *Chat) Session(ctx context.Context, sessionID string) domain.Response[domain.ChatTranscript] {
	return apiclient.Get[domain.ChatTranscript](ctx, c.r, path("/chat/session/%s", sessionID))
}

func (c *Chat) Sessions(ctx context.Context) domain.Response[[]domain.ChatSession] {
	return apiclient.Get[[]domain.ChatSession](ctx, c.r, "/chat/sessions")
}

func (c *Chat) DeleteSession(ctx context.Context, sessionID string) domain.Response[domain.ActionResult] {
	return apiclient.Delete[domain.ActionResult](ctx, c.r, path("/chat/session/%s", sessionID))
}
