package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/studycare/studycare-client/internal/core/domain"
)

// CreatePod creates a study pod.
func (d *StudentDashboard) CreatePod(ctx context.Context, name string) (*domain.StudyPod, error) {
	req := domain.CreatePodRequest{Name: strings.TrimSpace(name)}
	if err := d.validator.Struct(req); err != nil {
		return nil, err
	}
	pod, err := unwrap(d.api.Pods.Create(ctx, req), "create pod")
	if err != nil {
		return nil, err
	}
	d.logger.Info().Str("pod_id", pod.ID).Msg("pod created")
	return &pod, nil
}

// SelectPod loads the latest messages of podID. Nothing is kept when the
// fetch fails.
func (d *StudentDashboard) SelectPod(ctx context.Context, podID string) ([]domain.PodMessage, error) {
	podID = strings.TrimSpace(podID)
	if podID == "" {
		return nil, domain.ErrNoSelection
	}

	messages, err := unwrap(d.api.Pods.Messages(ctx, podID, podMessageLimit), "load pod messages")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.podThread(podID).messages = append([]domain.PodMessage(nil), messages...)
	d.mu.Unlock()
	return messages, nil
}

// SendPodMessage posts content to podID. One send per pod at a time.
func (d *StudentDashboard) SendPodMessage(ctx context.Context, podID, content string) (*domain.PodMessage, error) {
	podID = strings.TrimSpace(podID)
	if podID == "" {
		return nil, domain.ErrNoSelection
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message is empty", domain.ErrInvalidInput)
	}

	d.mu.Lock()
	thread := d.podThread(podID)
	if thread.sending {
		d.mu.Unlock()
		return nil, domain.ErrBusy
	}
	thread.sending = true
	d.mu.Unlock()

	res := d.api.Pods.SendMessage(ctx, podID, content)

	d.mu.Lock()
	defer d.mu.Unlock()
	thread.sending = false

	msg, err := unwrap(res, "send pod message")
	if err != nil {
		return nil, err
	}
	thread.messages = append(thread.messages, msg)
	return &msg, nil
}

// PodMessages returns a copy of the messages held for podID.
func (d *StudentDashboard) PodMessages(podID string) []domain.PodMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	if thread, ok := d.pods[podID]; ok {
		return append([]domain.PodMessage(nil), thread.messages...)
	}
	return nil
}

// podThread returns the thread for podID, creating it. d.mu must be held.
func (d *StudentDashboard) podThread(podID string) *podThread {
	thread, ok := d.pods[podID]
	if !ok {
		thread = &podThread{}
		d.pods[podID] = thread
	}
	return thread
}

func (d *StudentDashboard) JoinPod(ctx context.Context, podID string) (*domain.PodMember, error) {
	podID = strings.TrimSpace(podID)
	if podID == "" {
		return nil, domain.ErrNoSelection
	}
	member, err := unwrap(d.api.Pods.Join(ctx, podID), "join pod")
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (d *StudentDashboard) CreateNote(ctx context.Context, req domain.CreateNoteRequest) (*domain.Note, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := d.validator.Struct(req); err != nil {
		return nil, err
	}
	note, err := unwrap(d.api.Notes.Create(ctx, req), "create note")
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// SelectNote loads a note and keeps a copy for later edits.
func (d *StudentDashboard) SelectNote(ctx context.Context, noteID string) (*domain.Note, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, domain.ErrNoSelection
	}
	note, err := unwrap(d.api.Notes.Get(ctx, noteID), "load note")
	if err != nil {
		return nil, err
	}
	d.keepNote(note)
	return &note, nil
}

// UpdateNote edits noteID. Blank fields keep the note's current values,
// loading the note first when no copy is held.
func (d *StudentDashboard) UpdateNote(ctx context.Context, noteID string, req domain.UpdateNoteRequest) (*domain.Note, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, domain.ErrNoSelection
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" || len(req.Tags) == 0 {
		current, err := d.currentNote(ctx, noteID)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.Title) == "" {
			req.Title = current.Title
		}
		if strings.TrimSpace(req.Content) == "" {
			req.Content = current.Content
		}
		if len(req.Tags) == 0 {
			req.Tags = current.Tags
		}
	}

	note, err := unwrap(d.api.Notes.Update(ctx, noteID, req), "update note")
	if err != nil {
		return nil, err
	}
	d.keepNote(note)
	return &note, nil
}

// DeleteNote removes a note and drops the copy held for it.
func (d *StudentDashboard) DeleteNote(ctx context.Context, noteID string) (*domain.ActionResult, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, domain.ErrNoSelection
	}
	res, err := unwrap(d.api.Notes.Delete(ctx, noteID), "delete note")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	delete(d.notes, noteID)
	d.mu.Unlock()
	return &res, nil
}

func (d *StudentDashboard) SummarizeNote(ctx context.Context, noteID string) (*domain.NoteSummary, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, domain.ErrNoSelection
	}
	summary, err := unwrap(d.api.Notes.Summarize(ctx, noteID), "summarize note")
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (d *StudentDashboard) ExplainNote(ctx context.Context, noteID string) (*domain.NoteExplanation, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, domain.ErrNoSelection
	}
	explanation, err := unwrap(d.api.Notes.Explain(ctx, noteID), "explain note")
	if err != nil {
		return nil, err
	}
	return &explanation, nil
}

// OrganizeNote asks the backend to restructure noteID and keeps the result.
func (d *StudentDashboard) OrganizeNote(ctx context.Context, noteID string) (*domain.Note, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, domain.ErrNoSelection
	}
	note, err := unwrap(d.api.Notes.Organize(ctx, noteID), "organize note")
	if err != nil {
		return nil, err
	}
	d.keepNote(note)
	return &note, nil
}

func (d *StudentDashboard) currentNote(ctx context.Context, noteID string) (domain.Note, error) {
	d.mu.Lock()
	note, ok := d.notes[noteID]
	d.mu.Unlock()
	if ok {
		return note, nil
	}
	loaded, err := d.SelectNote(ctx, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	return *loaded, nil
}

func (d *StudentDashboard) keepNote(note domain.Note) {
	if note.ID == "" {
		return
	}
	d.mu.Lock()
	d.notes[note.ID] = note
	d.mu.Unlock()
}

// UploadImage sends a homework photo for analysis.
func (d *StudentDashboard) UploadImage(ctx context.Context, filename string, image io.Reader) (*domain.ImageUpload, error) {
	if strings.TrimSpace(filename) == "" || image == nil {
		return nil, fmt.Errorf("%w: no image selected", domain.ErrInvalidInput)
	}
	upload, err := unwrap(d.api.Image.Upload(ctx, filename, image), "upload image")
	if err != nil {
		return nil, err
	}
	d.logger.Info().Str("session_id", upload.SessionID).Msg("image analyzed")
	return &upload, nil
}

// VoiceChat sends one recorded turn. The session id returned by the backend
// is reused for the next turn; language defaults to English.
func (d *StudentDashboard) VoiceChat(ctx context.Context, filename string, audio io.Reader, language string) (*domain.VoiceChatResponse, error) {
	if strings.TrimSpace(filename) == "" || audio == nil {
		return nil, fmt.Errorf("%w: no recording", domain.ErrInvalidInput)
	}
	if language == "" {
		language = defaultLanguage
	}

	d.mu.Lock()
	sessionID := d.voiceSession
	d.mu.Unlock()

	resp, err := unwrap(d.api.Voice.Chat(ctx, filename, audio, language, sessionID), "voice chat")
	if err != nil {
		return nil, err
	}

	if resp.SessionID != "" {
		d.mu.Lock()
		d.voiceSession = resp.SessionID
		d.mu.Unlock()
	}
	return &resp, nil
}

// ResumeVoiceSession continues an earlier voice conversation.
func (d *StudentDashboard) ResumeVoiceSession(sessionID string) {
	d.mu.Lock()
	d.voiceSession = strings.TrimSpace(sessionID)
	d.mu.Unlock()
}

func (d *StudentDashboard) CheckSymptoms(ctx context.Context, req domain.SymptomCheckRequest) (*domain.SymptomGuidance, error) {
	req.Symptoms = strings.TrimSpace(req.Symptoms)
	req.AdditionalInfo = strings.TrimSpace(req.AdditionalInfo)
	if req.Symptoms == "" {
		return nil, fmt.Errorf("%w: please describe your symptoms", domain.ErrInvalidInput)
	}

	guidance, err := unwrap(d.api.Symptom.Check(ctx, req), "check symptoms")
	if err != nil {
		return nil, err
	}
	return &guidance, nil
}
