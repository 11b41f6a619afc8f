package facade

import (
	"context"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

type Notes struct {
	r apiclient.Requester
}

func (n *Notes) Create(ctx context.Context, req domain.CreateNoteRequest) domain.Response[domain.Note] {
	return apiclient.Post[domain.Note](ctx, n.r, "/notes", req)
}

func (n *Notes) List(ctx context.Context) domain.Response[[]domain.Note] {
	return apiclient.Get[[]domain.Note](ctx, n.r, "/notes")
}

func (n *Notes) Get(ctx context.Context, noteID string) domain.Response[domain.Note] {
	return apiclient.Get[domain.Note](ctx, n.r, path("/notes/%s", noteID))
}

func (n *Notes) Update(ctx context.Context, noteID string, req domain.UpdateNoteRequest) domain.Response[domain.Note] {
	return apiclient.Put[domain.Note](ctx, n.r, path("/notes/%s", noteID), req)
}

func (n *Notes) Delete(ctx context.Context, noteID string) domain.Response[domain.ActionResult] {
	return apiclient.Delete[domain.ActionResult](ctx, n.r, path("/notes/%s", noteID))
}

func (n *Notes) Summarize(ctx context.Context, noteID string) domain.Response[domain.NoteSummary] {
	return apiclient.Post[domain.NoteSummary](ctx, n.r, path("/notes/%s/summarize", noteID), empty)
}

func (n *Notes) Explain(ctx context.Context, noteID string) domain.Response[domain.NoteExplanation] {
	return apiclient.Post[domain.NoteExplanation](ctx, n.r, path("/notes/%s/explain", noteID), empty)
}

func (n *Notes) Organize(ctx context.Context, noteID string) domain.Response[domain.Note] {
	return apiclient.Post[domain.Note](ctx, n.r, path("/notes/%s/organize", noteID), empty)
}
