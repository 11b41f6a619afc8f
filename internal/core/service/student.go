package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/pkg/validation"
)

const (
	podMessageLimit = 50
	defaultLanguage = "en"
	tempIDPrefix    = "temp-"
)

// StudentBackends are the façades the student page talks to.
type StudentBackends struct {
	Student ports.StudentAPI
	Chat    ports.ChatAPI
	Image   ports.ImageAPI
	Voice   ports.VoiceAPI
	Pods    ports.PodAPI
	Notes   ports.NoteAPI
	Symptom ports.SymptomAPI
}

// StudentDashboard drives the student page. Every operation names the chat
// session, pod or note it acts on. Per resource it keeps the loaded history
// and an in-flight flag, plus the voice session id so that consecutive voice
// turns continue one conversation.
type StudentDashboard struct {
	api       StudentBackends
	validator *validation.Validator
	logger    zerolog.Logger

	mu           sync.Mutex
	chats        map[string]*chatThread
	pods         map[string]*podThread
	notes        map[string]domain.Note
	voiceSession string
}

type chatThread struct {
	messages []domain.ChatMessage
	sending  bool
}

type podThread struct {
	messages []domain.PodMessage
	sending  bool
}

func NewStudentDashboard(api StudentBackends, logger zerolog.Logger) *StudentDashboard {
	return &StudentDashboard{
		api:       api,
		validator: validation.Default(),
		logger:    logger,
		chats:     make(map[string]*chatThread),
		pods:      make(map[string]*podThread),
		notes:     make(map[string]domain.Note),
	}
}

// Load fetches all sections concurrently. A failing section is logged and
// reported in Warnings; the others are still returned.
func (d *StudentDashboard) Load(ctx context.Context) (*domain.StudentOverview, error) {
	var (
		g        errgroup.Group
		classes  domain.Response[[]domain.StudentClass]
		sessions domain.Response[[]domain.ChatSession]
		pods     domain.Response[[]domain.StudyPod]
		notes    domain.Response[[]domain.Note]
		history  domain.Response[[]domain.SymptomCheck]
	)
	g.Go(func() error { classes = d.api.Student.Classes(ctx); return nil })
	g.Go(func() error { sessions = d.api.Chat.Sessions(ctx); return nil })
	g.Go(func() error { pods = d.api.Pods.List(ctx); return nil })
	g.Go(func() error { notes = d.api.Notes.List(ctx); return nil })
	g.Go(func() error { history = d.api.Symptom.History(ctx); return nil })
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &domain.StudentOverview{
		Classes:        classes.Data,
		ChatSessions:   sessions.Data,
		Pods:           pods.Data,
		Notes:          notes.Data,
		SymptomHistory: history.Data,
		Warnings:       domain.Warnings{},
	}
	out.Warnings.Add("classes", classes.Err())
	out.Warnings.Add("chat_sessions", sessions.Err())
	out.Warnings.Add("pods", pods.Err())
	out.Warnings.Add("notes", notes.Err())
	out.Warnings.Add("symptom_history", history.Err())

	for section, msg := range out.Warnings {
		d.logger.Error().Str("section", section).Str("error", msg).Msg("failed to load section")
	}
	return out, nil
}

// JoinClass joins a class by its code. Codes are case-insensitive and sent
// upper-cased.
func (d *StudentDashboard) JoinClass(ctx context.Context, code string) (*domain.StudentClass, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: please enter a class code", domain.ErrInvalidInput)
	}

	joined, err := unwrap(d.api.Student.JoinClass(ctx, code), "join class")
	if err != nil {
		return nil, err
	}
	d.logger.Info().Str("class_id", joined.ClassID).Msg("joined class")
	return &joined, nil
}

// CreateChatSession opens a new tutoring chat with an empty history.
func (d *StudentDashboard) CreateChatSession(ctx context.Context, subject string) (*domain.ChatSession, error) {
	req := domain.CreateChatSessionRequest{Subject: strings.TrimSpace(subject)}
	session, err := unwrap(d.api.Chat.CreateSession(ctx, req), "create chat session")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.chats[session.ID] = &chatThread{}
	d.mu.Unlock()
	return &session, nil
}

// SelectChatSession loads the history of sessionID.
func (d *StudentDashboard) SelectChatSession(ctx context.Context, sessionID string) (*domain.ChatTranscript, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.ErrNoSelection
	}

	transcript, err := unwrap(d.api.Chat.Session(ctx, sessionID), "load chat session")
	if err != nil {
		return nil, err
	}
	if transcript.Session.ID == "" {
		transcript.Session.ID = sessionID
	}

	d.mu.Lock()
	thread := d.chatThread(sessionID)
	thread.messages = append([]domain.ChatMessage(nil), transcript.Messages...)
	d.mu.Unlock()
	return &transcript, nil
}

// SendChatMessage posts text to the chat session sessionID and returns that
// session's messages.
//
// The user's message is appended right away under a unique temporary id. On
// success the assistant's reply follows it; on failure only that temporary
// message is dropped again. A second send to the same session while one is
// in flight returns ErrBusy.
func (d *StudentDashboard) SendChatMessage(ctx context.Context, sessionID, text string) ([]domain.ChatMessage, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.ErrNoSelection
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is empty", domain.ErrInvalidInput)
	}

	d.mu.Lock()
	thread := d.chatThread(sessionID)
	if thread.sending {
		d.mu.Unlock()
		return nil, domain.ErrBusy
	}
	thread.sending = true
	temp := domain.ChatMessage{
		ID:          tempIDPrefix + uuid.NewString(),
		SessionID:   sessionID,
		MessageType: domain.MessageFromUser,
		Content:     text,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	thread.messages = append(thread.messages, temp)
	d.mu.Unlock()

	res := d.api.Chat.SendMessage(ctx, domain.ChatMessageRequest{SessionID: sessionID, Message: text})

	d.mu.Lock()
	defer d.mu.Unlock()
	thread.sending = false

	reply, err := unwrap(res, "send message")
	if err != nil {
		thread.messages = removeMessage(thread.messages, temp.ID)
		return append([]domain.ChatMessage(nil), thread.messages...), err
	}
	thread.messages = append(thread.messages, reply.Message)
	return append([]domain.ChatMessage(nil), thread.messages...), nil
}

// ChatMessages returns a copy of the messages held for sessionID.
func (d *StudentDashboard) ChatMessages(sessionID string) []domain.ChatMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	if thread, ok := d.chats[sessionID]; ok {
		return append([]domain.ChatMessage(nil), thread.messages...)
	}
	return nil
}

// chatThread returns the thread for sessionID, creating it. d.mu must be held.
func (d *StudentDashboard) chatThread(sessionID string) *chatThread {
	thread, ok := d.chats[sessionID]
	if !ok {
		thread = &chatThread{}
		d.chats[sessionID] = thread
	}
	return thread
}

func removeMessage(messages []domain.ChatMessage, id string) []domain.ChatMessage {
	out := messages[:0]
	for _, m := range messages {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
