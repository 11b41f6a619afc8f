package facade

import (
	"context"
	"io"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

// Image uploads homework photos and queries their analysis.
type Image struct {
	r apiclient.Requester
}

func (i *Image) Upload(ctx context.Context, filename string, image io.Reader) domain.Response[domain.ImageUpload] {
	form := apiclient.NewFormData().AppendFile("image", filename, image)
	return apiclient.PostForm[domain.ImageUpload](ctx, i.r, "/image/upload", form)
}

func (i *Image) Analysis(ctx context.Context, sessionID string) domain.Response[domain.ImageAnalysis] {
	return apiclient.Get[domain.ImageAnalysis](ctx, i.r, path("/image/%s", sessionID))
}

func (i *Image) Sessions(ctx context.Context) domain.Response[[]domain.ImageSession] {
	return apiclient.Get[[]domain.ImageSession](ctx, i.r, "/image/sessions")
}

func (i *Image) Ask(ctx context.Context, sessionID, question string) domain.Response[domain.ImageAnswer] {
	return apiclient.Post[domain.ImageAnswer](ctx, i.r, path("/image/%s/ask", sessionID), domain.ImageQuestionRequest{Question: question})
}

func (i *Image) Delete(ctx context.Context, sessionID string) domain.Response[domain.ActionResult] {
	return apiclient.Delete[domain.ActionResult](ctx, i.r, path("/image/%s", sessionID))
}

// Voice handles recorded audio. Optional fields are only added to the form
// when set.
type Voice struct {
	r apiclient.Requester
}

func (v *Voice) Transcribe(ctx context.Context, filename string, audio io.Reader, sessionID string) domain.Response[domain.VoiceTranscription] {
	form := apiclient.NewFormData().AppendFile("audio", filename, audio)
	if sessionID != "" {
		form.Append("sessionId", sessionID)
	}
	return apiclient.PostForm[domain.VoiceTranscription](ctx, v.r, "/voice/transcribe", form)
}

func (v *Voice) Synthesize(ctx context.Context, req domain.SynthesizeRequest) domain.Response[domain.VoiceSynthesis] {
	return apiclient.Post[domain.VoiceSynthesis](ctx, v.r, "/voice/synthesize", req)
}

func (v *Voice) Chat(ctx context.Context, filename string, audio io.Reader, language, sessionID string) domain.Response[domain.VoiceChatResponse] {
	form := apiclient.NewFormData().AppendFile("audio", filename, audio)
	if language != "" {
		form.Append("language", language)
	}
	if sessionID != "" {
		form.Append("sessionId", sessionID)
	}
	return apiclient.PostForm[domain.VoiceChatResponse](ctx, v.r, "/voice/chat", form)
}
