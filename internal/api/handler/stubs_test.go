package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/pkg/validation"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubSession struct {
	registerFn func(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error)
	loginFn    func(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
	profileFn  func(ctx context.Context) (*domain.User, error)
	toggleFn   func(ctx context.Context) (*domain.User, error)
	claimsFn   func() (*domain.SessionClaims, error)
	loggedOut  bool
}

func (s *stubSession) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	return s.registerFn(ctx, req)
}

func (s *stubSession) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	return s.loginFn(ctx, req)
}

func (s *stubSession) Logout(context.Context) { s.loggedOut = true }

func (s *stubSession) Profile(ctx context.Context) (*domain.User, error) {
	return s.profileFn(ctx)
}

func (s *stubSession) Guard(ctx context.Context, _ domain.Role) (*domain.User, error) {
	return s.profileFn(ctx)
}

func (s *stubSession) ToggleSimplifiedMode(ctx context.Context) (*domain.User, error) {
	return s.toggleFn(ctx)
}

func (s *stubSession) Claims() (*domain.SessionClaims, error) {
	return s.claimsFn()
}

type stubTeacher struct {
	classes  []domain.Class
	details  *domain.ClassDetails
	err      error
	created  [2]string
	selected string
}

func (s *stubTeacher) Load(context.Context) ([]domain.Class, error) {
	return s.classes, s.err
}

func (s *stubTeacher) CreateClass(_ context.Context, name, subject string) (*domain.Class, error) {
	s.created = [2]string{name, subject}
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Class{ID: "c1", Name: name, Subject: subject}, nil
}

func (s *stubTeacher) SelectClass(_ context.Context, classID string) (*domain.ClassDetails, error) {
	s.selected = classID
	return s.details, s.err
}

// stubStudent records the calls it receives in order.
type stubStudent struct {
	calls    []string
	err      error
	upload   string
	language string
}

func (s *stubStudent) record(call string) { s.calls = append(s.calls, call) }

func (s *stubStudent) Load(context.Context) (*domain.StudentOverview, error) {
	s.record("Load")
	return &domain.StudentOverview{Notes: []domain.Note{{ID: "n1"}}}, s.err
}

func (s *stubStudent) JoinClass(_ context.Context, code string) (*domain.StudentClass, error) {
	s.record("JoinClass:" + code)
	return &domain.StudentClass{ID: "e1"}, s.err
}

func (s *stubStudent) CreateChatSession(_ context.Context, subject string) (*domain.ChatSession, error) {
	s.record("CreateChatSession:" + subject)
	return &domain.ChatSession{ID: "s1"}, s.err
}

func (s *stubStudent) SelectChatSession(_ context.Context, id string) (*domain.ChatTranscript, error) {
	s.record("SelectChatSession:" + id)
	return &domain.ChatTranscript{}, s.err
}

func (s *stubStudent) SendChatMessage(_ context.Context, sessionID, text string) ([]domain.ChatMessage, error) {
	s.record("SendChatMessage:" + sessionID + ":" + text)
	if s.err != nil {
		return nil, s.err
	}
	return []domain.ChatMessage{{ID: "m1", Content: text}}, nil
}

func (s *stubStudent) CreatePod(_ context.Context, name string) (*domain.StudyPod, error) {
	s.record("CreatePod:" + name)
	return &domain.StudyPod{ID: "p1"}, s.err
}

func (s *stubStudent) SelectPod(_ context.Context, id string) ([]domain.PodMessage, error) {
	s.record("SelectPod:" + id)
	return nil, s.err
}

func (s *stubStudent) SendPodMessage(_ context.Context, podID, content string) (*domain.PodMessage, error) {
	s.record("SendPodMessage:" + podID + ":" + content)
	return &domain.PodMessage{ID: "pm1"}, s.err
}

func (s *stubStudent) JoinPod(_ context.Context, id string) (*domain.PodMember, error) {
	s.record("JoinPod:" + id)
	return &domain.PodMember{ID: "mem1"}, s.err
}

func (s *stubStudent) CreateNote(_ context.Context, req domain.CreateNoteRequest) (*domain.Note, error) {
	s.record("CreateNote:" + req.Title)
	return &domain.Note{ID: "n1"}, s.err
}

func (s *stubStudent) SelectNote(_ context.Context, id string) (*domain.Note, error) {
	s.record("SelectNote:" + id)
	return &domain.Note{ID: id}, s.err
}

func (s *stubStudent) UpdateNote(_ context.Context, noteID string, req domain.UpdateNoteRequest) (*domain.Note, error) {
	s.record("UpdateNote:" + noteID + ":" + req.Title)
	return &domain.Note{ID: noteID, Title: req.Title}, s.err
}

func (s *stubStudent) DeleteNote(_ context.Context, id string) (*domain.ActionResult, error) {
	s.record("DeleteNote:" + id)
	return &domain.ActionResult{}, s.err
}

func (s *stubStudent) SummarizeNote(_ context.Context, noteID string) (*domain.NoteSummary, error) {
	s.record("SummarizeNote:" + noteID)
	return &domain.NoteSummary{}, s.err
}

func (s *stubStudent) ExplainNote(_ context.Context, noteID string) (*domain.NoteExplanation, error) {
	s.record("ExplainNote:" + noteID)
	return &domain.NoteExplanation{}, s.err
}

func (s *stubStudent) OrganizeNote(_ context.Context, noteID string) (*domain.Note, error) {
	s.record("OrganizeNote:" + noteID)
	return &domain.Note{}, s.err
}

func (s *stubStudent) UploadImage(_ context.Context, filename string, image io.Reader) (*domain.ImageUpload, error) {
	s.record("UploadImage:" + filename)
	b, _ := io.ReadAll(image)
	s.upload = string(b)
	return &domain.ImageUpload{}, s.err
}

func (s *stubStudent) VoiceChat(_ context.Context, filename string, audio io.Reader, language string) (*domain.VoiceChatResponse, error) {
	s.record("VoiceChat:" + filename)
	b, _ := io.ReadAll(audio)
	s.upload = string(b)
	s.language = language
	return &domain.VoiceChatResponse{}, s.err
}

func (s *stubStudent) CheckSymptoms(_ context.Context, req domain.SymptomCheckRequest) (*domain.SymptomGuidance, error) {
	s.record("CheckSymptoms:" + req.Symptoms)
	return &domain.SymptomGuidance{}, s.err
}

type stubCaregiver struct {
	children []domain.CaregiverChild
	err      error
	linked   string
	selected string
	unlinked string
}

func (s *stubCaregiver) Load(context.Context) ([]domain.CaregiverChild, error) {
	return s.children, s.err
}

func (s *stubCaregiver) LinkChild(_ context.Context, email string) (*domain.CaregiverChild, error) {
	s.linked = email
	return &domain.CaregiverChild{}, s.err
}

func (s *stubCaregiver) SelectChild(_ context.Context, id string) (*domain.ChildActivity, error) {
	s.selected = id
	return &domain.ChildActivity{}, s.err
}

func (s *stubCaregiver) UnlinkChild(_ context.Context, id string) (*domain.ActionResult, error) {
	s.unlinked = id
	return &domain.ActionResult{}, s.err
}
