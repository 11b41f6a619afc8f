package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
)

// StudentHandler serves the student dashboard: classes, tutor chat, study
// pods, notes, media and the symptom checker.
type StudentHandler struct {
	dashboard ports.StudentController
}

func NewStudentHandler(dashboard ports.StudentController) *StudentHandler {
	return &StudentHandler{dashboard: dashboard}
}

type studentOverviewResponse struct {
	User *domain.User `json:"user"`
	*domain.StudentOverview
}

// Overview handles GET /student/overview.
func (h *StudentHandler) Overview(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboard.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, studentOverviewResponse{User: user, StudentOverview: overview})
}

// JoinClass handles POST /student/classes/join.
func (h *StudentHandler) JoinClass(c echo.Context) error {
	var req joinClassRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	enrollment, err := h.dashboard.JoinClass(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, enrollment)
}

// CreateChatSession handles POST /student/chat/sessions.
func (h *StudentHandler) CreateChatSession(c echo.Context) error {
	var req chatSessionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.dashboard.CreateChatSession(c.Request().Context(), req.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

// GetChatSession handles GET /student/chat/sessions/:id.
func (h *StudentHandler) GetChatSession(c echo.Context) error {
	transcript, err := h.dashboard.SelectChatSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transcript)
}

// SendChatMessage handles POST /student/chat/messages.
func (h *StudentHandler) SendChatMessage(c echo.Context) error {
	var req chatMessageRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	messages, err := h.dashboard.SendChatMessage(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatMessagesResponse{Messages: messages})
}

// CreatePod handles POST /student/pods.
func (h *StudentHandler) CreatePod(c echo.Context) error {
	var req createPodRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	pod, err := h.dashboard.CreatePod(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pod)
}

// PodMessages handles GET /student/pods/:id/messages.
func (h *StudentHandler) PodMessages(c echo.Context) error {
	messages, err := h.dashboard.SelectPod(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, podMessagesResponse{Messages: messages})
}

// SendPodMessage handles POST /student/pods/:id/messages.
func (h *StudentHandler) SendPodMessage(c echo.Context) error {
	var req podMessageRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	message, err := h.dashboard.SendPodMessage(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, message)
}

// JoinPod handles POST /student/pods/:id/join.
func (h *StudentHandler) JoinPod(c echo.Context) error {
	member, err := h.dashboard.JoinPod(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// CreateNote handles POST /student/notes.
func (h *StudentHandler) CreateNote(c echo.Context) error {
	var req domain.CreateNoteRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	note, err := h.dashboard.CreateNote(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

// GetNote handles GET /student/notes/:id.
func (h *StudentHandler) GetNote(c echo.Context) error {
	note, err := h.dashboard.SelectNote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// UpdateNote handles PUT /student/notes/:id. Blank fields keep their
// current value.
func (h *StudentHandler) UpdateNote(c echo.Context) error {
	var req domain.UpdateNoteRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	note, err := h.dashboard.UpdateNote(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// DeleteNote handles DELETE /student/notes/:id.
func (h *StudentHandler) DeleteNote(c echo.Context) error {
	result, err := h.dashboard.DeleteNote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// NoteAction handles POST /student/notes/:id/:action for the summarize,
// explain and organize assistants.
func (h *StudentHandler) NoteAction(c echo.Context) error {
	ctx := c.Request().Context()
	noteID := c.Param("id")

	var run func() (any, error)
	switch c.Param("action") {
	case "summarize":
		run = func() (any, error) { return h.dashboard.SummarizeNote(ctx, noteID) }
	case "explain":
		run = func() (any, error) { return h.dashboard.ExplainNote(ctx, noteID) }
	case "organize":
		run = func() (any, error) { return h.dashboard.OrganizeNote(ctx, noteID) }
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown note action")
	}

	out, err := run()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// UploadImage handles POST /student/images with a multipart "image" part.
func (h *StudentHandler) UploadImage(c echo.Context) error {
	name, f, err := formFile(c, "image")
	if err != nil {
		return err
	}
	defer f.Close()

	upload, err := h.dashboard.UploadImage(c.Request().Context(), name, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, upload)
}

// VoiceChat handles POST /student/voice with a multipart "audio" part and an
// optional "language" field.
func (h *StudentHandler) VoiceChat(c echo.Context) error {
	name, f, err := formFile(c, "audio")
	if err != nil {
		return err
	}
	defer f.Close()

	reply, err := h.dashboard.VoiceChat(c.Request().Context(), name, f, c.FormValue("language"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

// CheckSymptoms handles POST /student/symptoms.
func (h *StudentHandler) CheckSymptoms(c echo.Context) error {
	var req domain.SymptomCheckRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	guidance, err := h.dashboard.CheckSymptoms(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guidance)
}
