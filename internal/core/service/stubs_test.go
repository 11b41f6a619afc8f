package service

import (
	"context"
	"io"
	"sync"

	"github.com/studycare/studycare-client/internal/core/domain"
)

const notStubbed = "not stubbed"

type stubCreds struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (c *stubCreds) SetToken(_ context.Context, token string) bool {
	clean, ok := domain.NormalizeToken(token)
	if !ok {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = clean
	return true
}

func (c *stubCreds) ClearToken(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.cleared++
}

func (c *stubCreds) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.token != ""
}

type stubAuth struct {
	registerFn func(domain.RegisterRequest) domain.Response[domain.AuthResult]
	loginFn    func(domain.LoginRequest) domain.Response[domain.AuthResult]
	profileFn  func() domain.Response[domain.User]
	updateFn   func(domain.ProfileUpdate) domain.Response[domain.User]
}

func (s *stubAuth) Register(_ context.Context, req domain.RegisterRequest) domain.Response[domain.AuthResult] {
	if s.registerFn == nil {
		return domain.Fail[domain.AuthResult](notStubbed)
	}
	return s.registerFn(req)
}

func (s *stubAuth) Login(_ context.Context, req domain.LoginRequest) domain.Response[domain.AuthResult] {
	if s.loginFn == nil {
		return domain.Fail[domain.AuthResult](notStubbed)
	}
	return s.loginFn(req)
}

func (s *stubAuth) Profile(context.Context) domain.Response[domain.User] {
	if s.profileFn == nil {
		return domain.Fail[domain.User](notStubbed)
	}
	return s.profileFn()
}

func (s *stubAuth) UpdateProfile(_ context.Context, upd domain.ProfileUpdate) domain.Response[domain.User] {
	if s.updateFn == nil {
		return domain.Fail[domain.User](notStubbed)
	}
	return s.updateFn(upd)
}

type stubTeacher struct {
	classes  []domain.Class
	create   func(domain.CreateClassRequest) domain.Response[domain.Class]
	students func(string) domain.Response[[]domain.ClassStudent]
	stats    func(string) domain.Response[[]domain.StudentActivity]
}

func (s *stubTeacher) CreateClass(_ context.Context, req domain.CreateClassRequest) domain.Response[domain.Class] {
	if s.create == nil {
		return domain.Fail[domain.Class](notStubbed)
	}
	return s.create(req)
}

func (s *stubTeacher) Classes(context.Context) domain.Response[[]domain.Class] {
	return domain.OK(s.classes)
}

func (s *stubTeacher) ClassStudents(_ context.Context, id string) domain.Response[[]domain.ClassStudent] {
	if s.students == nil {
		return domain.Fail[[]domain.ClassStudent](notStubbed)
	}
	return s.students(id)
}

func (s *stubTeacher) ClassStats(_ context.Context, id string) domain.Response[[]domain.StudentActivity] {
	if s.stats == nil {
		return domain.Fail[[]domain.StudentActivity](notStubbed)
	}
	return s.stats(id)
}

type stubStudent struct {
	classes   domain.Response[[]domain.StudentClass]
	joinedVia string
}

func (s *stubStudent) JoinClass(_ context.Context, code string) domain.Response[domain.StudentClass] {
	s.joinedVia = code
	return domain.OK(domain.StudentClass{ID: "m1", ClassID: "c1"})
}

func (s *stubStudent) Classes(context.Context) domain.Response[[]domain.StudentClass] {
	return s.classes
}

type stubChat struct {
	sessions domain.Response[[]domain.ChatSession]
	send     func(domain.ChatMessageRequest) domain.Response[domain.ChatReply]
	session  func(string) domain.Response[domain.ChatTranscript]
}

func (s *stubChat) CreateSession(_ context.Context, req domain.CreateChatSessionRequest) domain.Response[domain.ChatSession] {
	return domain.OK(domain.ChatSession{ID: "s-new", Subject: req.Subject})
}

func (s *stubChat) SendMessage(_ context.Context, req domain.ChatMessageRequest) domain.Response[domain.ChatReply] {
	if s.send == nil {
		return domain.Fail[domain.ChatReply](notStubbed)
	}
	return s.send(req)
}

func (s *stubChat) Session(_ context.Context, id string) domain.Response[domain.ChatTranscript] {
	if s.session == nil {
		return domain.Fail[domain.ChatTranscript](notStubbed)
	}
	return s.session(id)
}

func (s *stubChat) Sessions(context.Context) domain.Response[[]domain.ChatSession] {
	return s.sessions
}

func (s *stubChat) DeleteSession(context.Context, string) domain.Response[domain.ActionResult] {
	return domain.OK(domain.ActionResult{Success: true})
}

type stubImage struct{}

func (stubImage) Upload(_ context.Context, filename string, image io.Reader) domain.Response[domain.ImageUpload] {
	raw, _ := io.ReadAll(image)
	return domain.OK(domain.ImageUpload{SessionID: "img-1", OCRText: string(raw), Explanation: filename})
}

func (stubImage) Analysis(context.Context, string) domain.Response[domain.ImageAnalysis] {
	return domain.Fail[domain.ImageAnalysis](notStubbed)
}

func (stubImage) Sessions(context.Context) domain.Response[[]domain.ImageSession] {
	return domain.Fail[[]domain.ImageSession](notStubbed)
}

func (stubImage) Ask(context.Context, string, string) domain.Response[domain.ImageAnswer] {
	return domain.Fail[domain.ImageAnswer](notStubbed)
}

func (stubImage) Delete(context.Context, string) domain.Response[domain.ActionResult] {
	return domain.Fail[domain.ActionResult](notStubbed)
}

type voiceCall struct {
	language  string
	sessionID string
}

type stubVoice struct {
	calls []voiceCall
}

func (s *stubVoice) Transcribe(context.Context, string, io.Reader, string) domain.Response[domain.VoiceTranscription] {
	return domain.Fail[domain.VoiceTranscription](notStubbed)
}

func (s *stubVoice) Synthesize(context.Context, domain.SynthesizeRequest) domain.Response[domain.VoiceSynthesis] {
	return domain.Fail[domain.VoiceSynthesis](notStubbed)
}

func (s *stubVoice) Chat(_ context.Context, _ string, _ io.Reader, language, sessionID string) domain.Response[domain.VoiceChatResponse] {
	s.calls = append(s.calls, voiceCall{language: language, sessionID: sessionID})
	return domain.OK(domain.VoiceChatResponse{SessionID: "voice-1", AIResponse: "hi"})
}

type stubPods struct {
	list      domain.Response[[]domain.StudyPod]
	lastLimit int
	send      func(string, string) domain.Response[domain.PodMessage]
	messages  func(string) domain.Response[[]domain.PodMessage]
}

func (s *stubPods) Create(_ context.Context, req domain.CreatePodRequest) domain.Response[domain.StudyPod] {
	return domain.OK(domain.StudyPod{ID: "p-new", Name: req.Name})
}

func (s *stubPods) List(context.Context) domain.Response[[]domain.StudyPod] { return s.list }

func (s *stubPods) Get(_ context.Context, id string) domain.Response[domain.StudyPod] {
	return domain.OK(domain.StudyPod{ID: id})
}

func (s *stubPods) Join(_ context.Context, id string) domain.Response[domain.PodMember] {
	return domain.OK(domain.PodMember{PodID: id, Role: domain.PodRoleMember})
}

func (s *stubPods) Leave(context.Context, string) domain.Response[domain.ActionResult] {
	return domain.OK(domain.ActionResult{Success: true})
}

func (s *stubPods) SendMessage(_ context.Context, id, content string) domain.Response[domain.PodMessage] {
	if s.send == nil {
		return domain.OK(domain.PodMessage{ID: "pm", PodID: id, Content: content})
	}
	return s.send(id, content)
}

func (s *stubPods) Messages(_ context.Context, id string, limit int) domain.Response[[]domain.PodMessage] {
	s.lastLimit = limit
	if s.messages != nil {
		return s.messages(id)
	}
	return domain.OK([]domain.PodMessage{{ID: "pm0", PodID: id}})
}

func (s *stubPods) Delete(context.Context, string) domain.Response[domain.ActionResult] {
	return domain.OK(domain.ActionResult{Success: true})
}

type stubNotes struct {
	list    domain.Response[[]domain.Note]
	notes   map[string]domain.Note
	updated domain.UpdateNoteRequest
}

func (s *stubNotes) Create(_ context.Context, req domain.CreateNoteRequest) domain.Response[domain.Note] {
	return domain.OK(domain.Note{ID: "n-new", Title: req.Title, Content: req.Content})
}

func (s *stubNotes) List(context.Context) domain.Response[[]domain.Note] { return s.list }

func (s *stubNotes) Get(_ context.Context, id string) domain.Response[domain.Note] {
	note, ok := s.notes[id]
	if !ok {
		return domain.FailStatus[domain.Note](404, "Note not found")
	}
	return domain.OK(note)
}

func (s *stubNotes) Update(_ context.Context, id string, req domain.UpdateNoteRequest) domain.Response[domain.Note] {
	s.updated = req
	return domain.OK(domain.Note{ID: id, Title: req.Title, Content: req.Content, Tags: req.Tags})
}

func (s *stubNotes) Delete(context.Context, string) domain.Response[domain.ActionResult] {
	return domain.OK(domain.ActionResult{Success: true})
}

func (s *stubNotes) Summarize(_ context.Context, id string) domain.Response[domain.NoteSummary] {
	return domain.OK(domain.NoteSummary{Summary: "summary of " + id})
}

func (s *stubNotes) Explain(_ context.Context, id string) domain.Response[domain.NoteExplanation] {
	return domain.OK(domain.NoteExplanation{Explanation: "explained " + id})
}

func (s *stubNotes) Organize(_ context.Context, id string) domain.Response[domain.Note] {
	return domain.OK(domain.Note{ID: id, Title: "organized"})
}

type stubSymptom struct {
	history domain.Response[[]domain.SymptomCheck]
	checked domain.SymptomCheckRequest
}

func (s *stubSymptom) Check(_ context.Context, req domain.SymptomCheckRequest) domain.Response[domain.SymptomGuidance] {
	s.checked = req
	return domain.OK(domain.SymptomGuidance{SeverityLevel: domain.SeverityMild})
}

func (s *stubSymptom) History(context.Context) domain.Response[[]domain.SymptomCheck] {
	return s.history
}

type stubCaregiver struct {
	linked string
}

func (s *stubCaregiver) LinkChild(_ context.Context, req domain.LinkChildRequest) domain.Response[domain.CaregiverChild] {
	s.linked = req.ChildEmail
	return domain.OK(domain.CaregiverChild{ID: "l1", ChildID: "k1"})
}

func (s *stubCaregiver) Children(context.Context) domain.Response[[]domain.CaregiverChild] {
	return domain.OK([]domain.CaregiverChild{{ID: "l1", ChildID: "k1"}})
}

func (s *stubCaregiver) ChildActivity(_ context.Context, id string) domain.Response[domain.ChildActivity] {
	if id != "k1" {
		return domain.FailStatus[domain.ChildActivity](403, "Not linked to this child")
	}
	return domain.OK(domain.ChildActivity{ChildID: id, NotesCount: 3})
}

func (s *stubCaregiver) UnlinkChild(context.Context, string) domain.Response[domain.ActionResult] {
	return domain.OK(domain.ActionResult{Success: true, Message: "unlinked"})
}
