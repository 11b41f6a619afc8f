package ports

import (
	"context"
	"io"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// The interfaces below are the backend façades as seen by the page
// controllers. Every call resolves to an envelope; none of them return Go errors.

type AuthAPI interface {
	Register(ctx context.Context, req domain.RegisterRequest) domain.Response[domain.AuthResult]
	Login(ctx context.Context, req domain.LoginRequest) domain.Response[domain.AuthResult]
	Profile(ctx context.Context) domain.Response[domain.User]
	UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) domain.Response[domain.User]
}

type TeacherAPI interface {
	CreateClass(ctx context.Context, req domain.CreateClassRequest) domain.Response[domain.Class]
	Classes(ctx context.Context) domain.Response[[]domain.Class]
	ClassStudents(ctx context.Context, classID string) domain.Response[[]domain.ClassStudent]
	ClassStats(ctx context.Context, classID string) domain.Response[[]domain.StudentActivity]
}

type StudentAPI interface {
	JoinClass(ctx context.Context, classCode string) domain.Response[domain.StudentClass]
	Classes(ctx context.Context) domain.Response[[]domain.StudentClass]
}

type ChatAPI interface {
	CreateSession(ctx context.Context, req domain.CreateChatSessionRequest) domain.Response[domain.ChatSession]
	SendMessage(ctx context.Context, req domain.ChatMessageRequest) domain.Response[domain.ChatReply]
	Session(ctx context.Context, sessionID string) domain.Response[domain.ChatTranscript]
	Sessions(ctx context.Context) domain.Response[[]domain.ChatSession]
	DeleteSession(ctx context.Context, sessionID string) domain.Response[domain.ActionResult]
}

type ImageAPI interface {
	Upload(ctx context.Context, filename string, image io.Reader) domain.Response[domain.ImageUpload]
	Analysis(ctx context.Context, sessionID string) domain.Response[domain.ImageAnalysis]
	Sessions(ctx context.Context) domain.Response[[]domain.ImageSession]
	Ask(ctx context.Context, sessionID, question string) domain.Response[domain.ImageAnswer]
	Delete(ctx context.Context, sessionID string) domain.Response[domain.ActionResult]
}

type VoiceAPI interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader, sessionID string) domain.Response[domain.VoiceTranscription]
	Synthesize(ctx context.Context, req domain.SynthesizeRequest) domain.Response[domain.VoiceSynthesis]
	Chat(ctx context.Context, filename string, audio io.Reader, language, sessionID string) domain.Response[domain.VoiceChatResponse]
}

type PodAPI interface {
	Create(ctx context.Context, req domain.CreatePodRequest) domain.Response[domain.StudyPod]
	List(ctx context.Context) domain.Response[[]domain.StudyPod]
	Get(ctx context.Context, podID string) domain.Response[domain.StudyPod]
	Join(ctx context.Context, podID string) domain.Response[domain.PodMember]
	Leave(ctx context.Context, podID string) domain.Response[domain.ActionResult]
	SendMessage(ctx context.Context, podID, content string) domain.Response[domain.PodMessage]
	Messages(ctx context.Context, podID string, limit int) domain.Response[[]domain.PodMessage]
	Delete(ctx context.Context, podID string) domain.Response[domain.ActionResult]
}

type NoteAPI interface {
	Create(ctx context.Context, req domain.CreateNoteRequest) domain.Response[domain.Note]
	List(ctx context.Context) domain.Response[[]domain.Note]
	Get(ctx context.Context, noteID string) domain.Response[domain.Note]
	Update(ctx context.Context, noteID string, req domain.UpdateNoteRequest) domain.Response[domain.Note]
	Delete(ctx context.Context, noteID string) domain.Response[domain.ActionResult]
	Summarize(ctx context.Context, noteID string) domain.Response[domain.NoteSummary]
	Explain(ctx context.Context, noteID string) domain.Response[domain.NoteExplanation]
	Organize(ctx context.Context, noteID string) domain.Response[domain.Note]
}

type SymptomAPI interface {
	Check(ctx context.Context, req domain.SymptomCheckRequest) domain.Response[domain.SymptomGuidance]
	History(ctx context.Context) domain.Response[[]domain.SymptomCheck]
}

type CaregiverAPI interface {
	LinkChild(ctx context.Context, req domain.LinkChildRequest) domain.Response[domain.CaregiverChild]
	Children(ctx context.Context) domain.Response[[]domain.CaregiverChild]
	ChildActivity(ctx context.Context, childID string) domain.Response[domain.ChildActivity]
	UnlinkChild(ctx context.Context, childID string) domain.Response[domain.ActionResult]
}
