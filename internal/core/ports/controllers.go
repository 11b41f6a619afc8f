package ports

import (
	"context"
	"io"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// Page controllers as consumed by the dashboard server and the CLI. Failures
// are Go errors here: domain sentinels for local checks and *domain.APIError
// for backend failures. Operations on a chat session, pod or note take its id,
// so concurrent callers never act on each other's resource.

type SessionController interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
	Logout(ctx context.Context)
	Profile(ctx context.Context) (*domain.User, error)
	Guard(ctx context.Context, role domain.Role) (*domain.User, error)
	ToggleSimplifiedMode(ctx context.Context) (*domain.User, error)
	Claims() (*domain.SessionClaims, error)
}

type TeacherController interface {
	Load(ctx context.Context) ([]domain.Class, error)
	CreateClass(ctx context.Context, name, subject string) (*domain.Class, error)
	SelectClass(ctx context.Context, classID string) (*domain.ClassDetails, error)
}

type StudentController interface {
	Load(ctx context.Context) (*domain.StudentOverview, error)
	JoinClass(ctx context.Context, code string) (*domain.StudentClass, error)

	CreateChatSession(ctx context.Context, subject string) (*domain.ChatSession, error)
	SelectChatSession(ctx context.Context, sessionID string) (*domain.ChatTranscript, error)
	SendChatMessage(ctx context.Context, sessionID, text string) ([]domain.ChatMessage, error)

	CreatePod(ctx context.Context, name string) (*domain.StudyPod, error)
	SelectPod(ctx context.Context, podID string) ([]domain.PodMessage, error)
	SendPodMessage(ctx context.Context, podID, content string) (*domain.PodMessage, error)
	JoinPod(ctx context.Context, podID string) (*domain.PodMember, error)

	CreateNote(ctx context.Context, req domain.CreateNoteRequest) (*domain.Note, error)
	SelectNote(ctx context.Context, noteID string) (*domain.Note, error)
	UpdateNote(ctx context.Context, noteID string, req domain.UpdateNoteRequest) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID string) (*domain.ActionResult, error)
	SummarizeNote(ctx context.Context, noteID string) (*domain.NoteSummary, error)
	ExplainNote(ctx context.Context, noteID string) (*domain.NoteExplanation, error)
	OrganizeNote(ctx context.Context, noteID string) (*domain.Note, error)

	UploadImage(ctx context.Context, filename string, image io.Reader) (*domain.ImageUpload, error)
	VoiceChat(ctx context.Context, filename string, audio io.Reader, language string) (*domain.VoiceChatResponse, error)
	CheckSymptoms(ctx context.Context, req domain.SymptomCheckRequest) (*domain.SymptomGuidance, error)
}

type CaregiverController interface {
	Load(ctx context.Context) ([]domain.CaregiverChild, error)
	LinkChild(ctx context.Context, email string) (*domain.CaregiverChild, error)
	SelectChild(ctx context.Context, childID string) (*domain.ChildActivity, error)
	UnlinkChild(ctx context.Context, childID string) (*domain.ActionResult, error)
}
