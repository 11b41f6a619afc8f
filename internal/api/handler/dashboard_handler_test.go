package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/api/middleware"
	"github.com/studycare/studycare-client/internal/core/domain"
)

func TestTeacherHandler_CreateClass(t *testing.T) {
	e := newEcho()
	stub := &stubTeacher{}
	h := NewTeacherHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/teacher/classes", `{"name":"Biology","subject":"Science"}`)
	if err := h.CreateClass(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.created != [2]string{"Biology", "Science"} {
		t.Fatalf("unexpected create args: %v", stub.created)
	}
}

func TestTeacherHandler_CreateClass_MissingName(t *testing.T) {
	e := newEcho()
	h := NewTeacherHandler(&stubTeacher{})

	c, _ := jsonContext(e, http.MethodPost, "/teacher/classes", `{"subject":"Science"}`)
	if err := h.CreateClass(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeacherHandler_GetClass_PartialWarnings(t *testing.T) {
	e := newEcho()
	stub := &stubTeacher{details: &domain.ClassDetails{
		Students: []domain.ClassStudent{{ID: "cs1"}},
		Warnings: domain.Warnings{"stats": "Request failed"},
	}}
	h := NewTeacherHandler(stub)

	c, rec := jsonContext(e, http.MethodGet, "/teacher/classes/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if err := h.GetClass(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.selected != "c1" {
		t.Fatalf("expected class c1 selected, got %q", stub.selected)
	}

	var details domain.ClassDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if details.Warnings["stats"] != "Request failed" || len(details.Students) != 1 {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestTeacherHandler_ListClasses(t *testing.T) {
	e := newEcho()
	h := NewTeacherHandler(&stubTeacher{classes: []domain.Class{{ID: "c1"}, {ID: "c2"}}})

	c, rec := jsonContext(e, http.MethodGet, "/teacher/classes", "")
	if err := h.ListClasses(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp classesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(resp.Classes))
	}
}

func TestStudentHandler_Overview_RequiresUser(t *testing.T) {
	e := newEcho()
	h := NewStudentHandler(&stubStudent{})

	c, _ := jsonContext(e, http.MethodGet, "/student/overview", "")
	err := h.Overview(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestStudentHandler_Overview(t *testing.T) {
	e := newEcho()
	h := NewStudentHandler(&stubStudent{})

	c, rec := jsonContext(e, http.MethodGet, "/student/overview", "")
	c.Set(middleware.UserKey, &domain.User{ID: "s1", Role: domain.RoleStudent})
	if err := h.Overview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["user"]; !ok {
		t.Fatalf("expected user in overview")
	}
	if notes, _ := resp["notes"].([]any); len(notes) != 1 {
		t.Fatalf("expected overview fields inlined, got %v", resp)
	}
}

func TestStudentHandler_ActsOnNamedResource(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		body    string
		params  []string
		values  []string
		handler func(h *StudentHandler) echo.HandlerFunc
		want    []string
	}{
		{
			name:    "pod message",
			method:  http.MethodPost,
			body:    `{"content":"hello pod"}`,
			params:  []string{"id"},
			values:  []string{"p1"},
			handler: func(h *StudentHandler) echo.HandlerFunc { return h.SendPodMessage },
			want:    []string{"SendPodMessage:p1:hello pod"},
		},
		{
			name:    "note update",
			method:  http.MethodPut,
			body:    `{"title":"New"}`,
			params:  []string{"id"},
			values:  []string{"n1"},
			handler: func(h *StudentHandler) echo.HandlerFunc { return h.UpdateNote },
			want:    []string{"UpdateNote:n1:New"},
		},
		{
			name:    "summarize",
			method:  http.MethodPost,
			params:  []string{"id", "action"},
			values:  []string{"n1", "summarize"},
			handler: func(h *StudentHandler) echo.HandlerFunc { return h.NoteAction },
			want:    []string{"SummarizeNote:n1"},
		},
		{
			name:    "explain",
			method:  http.MethodPost,
			params:  []string{"id", "action"},
			values:  []string{"n2", "explain"},
			handler: func(h *StudentHandler) echo.HandlerFunc { return h.NoteAction },
			want:    []string{"ExplainNote:n2"},
		},
		{
			name:    "organize",
			method:  http.MethodPost,
			params:  []string{"id", "action"},
			values:  []string{"n3", "organize"},
			handler: func(h *StudentHandler) echo.HandlerFunc { return h.NoteAction },
			want:    []string{"OrganizeNote:n3"},
		},
		{
			name:    "chat message",
			method:  http.MethodPost,
			body:    `{"sessionId":"s9","message":"hi"}`,
			handler: func(h *StudentHandler) echo.HandlerFunc { return h.SendChatMessage },
			want:    []string{"SendChatMessage:s9:hi"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			stub := &stubStudent{}
			h := NewStudentHandler(stub)

			c, _ := jsonContext(e, tc.method, "/", tc.body)
			c.SetParamNames(tc.params...)
			c.SetParamValues(tc.values...)
			if err := tc.handler(h)(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if !reflect.DeepEqual(stub.calls, tc.want) {
				t.Fatalf("calls = %v, want %v", stub.calls, tc.want)
			}
		})
	}
}

func TestStudentHandler_NoteAction_Unknown(t *testing.T) {
	e := newEcho()
	stub := &stubStudent{}
	h := NewStudentHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/", "")
	c.SetParamNames("id", "action")
	c.SetParamValues("n1", "translate")
	err := h.NoteAction(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if len(stub.calls) != 0 {
		t.Fatalf("controller must not be called: %v", stub.calls)
	}
}

func TestStudentHandler_SendChatMessage_Busy(t *testing.T) {
	e := newEcho()
	h := NewStudentHandler(&stubStudent{err: domain.ErrBusy})

	c, _ := jsonContext(e, http.MethodPost, "/student/chat/messages", `{"sessionId":"s1","message":"hi"}`)
	if err := h.SendChatMessage(c); !errors.Is(err, domain.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
}

func TestStudentHandler_SendChatMessage_RequiresSession(t *testing.T) {
	e := newEcho()
	stub := &stubStudent{}
	h := NewStudentHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/student/chat/messages", `{"message":"hi"}`)
	if err := h.SendChatMessage(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(stub.calls) != 0 {
		t.Fatalf("controller must not be called: %v", stub.calls)
	}
}

func multipartContext(t *testing.T, e *echo.Echo, target, field, filename, content string, values map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStudentHandler_UploadImage(t *testing.T) {
	e := newEcho()
	stub := &stubStudent{}
	h := NewStudentHandler(stub)

	c, rec := multipartContext(t, e, "/student/images", "image", "diagram.png", "PNGDATA", nil)
	if err := h.UploadImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.upload != "PNGDATA" || stub.calls[0] != "UploadImage:diagram.png" {
		t.Fatalf("unexpected upload: %v %q", stub.calls, stub.upload)
	}
}

func TestStudentHandler_UploadImage_MissingFile(t *testing.T) {
	e := newEcho()
	h := NewStudentHandler(&stubStudent{})

	c, _ := multipartContext(t, e, "/student/images", "", "", "", map[string]string{"note": "x"})
	err := h.UploadImage(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestStudentHandler_VoiceChat(t *testing.T) {
	e := newEcho()
	stub := &stubStudent{}
	h := NewStudentHandler(stub)

	c, _ := multipartContext(t, e, "/student/voice", "audio", "q.webm", "AUDIO", map[string]string{"language": "es"})
	if err := h.VoiceChat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.upload != "AUDIO" || stub.language != "es" {
		t.Fatalf("unexpected voice call: %q %q", stub.upload, stub.language)
	}
}

func TestCaregiverHandler_LinkChild(t *testing.T) {
	e := newEcho()
	stub := &stubCaregiver{}
	h := NewCaregiverHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/caregiver/children", `{"email":"kid@example.com"}`)
	if err := h.LinkChild(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || stub.linked != "kid@example.com" {
		t.Fatalf("unexpected link: %d %q", rec.Code, stub.linked)
	}
}

func TestCaregiverHandler_LinkChild_InvalidEmail(t *testing.T) {
	e := newEcho()
	stub := &stubCaregiver{}
	h := NewCaregiverHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/caregiver/children", `{"email":"kid"}`)
	if err := h.LinkChild(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if stub.linked != "" {
		t.Fatalf("controller must not be called")
	}
}

func TestCaregiverHandler_ActivityAndUnlink(t *testing.T) {
	e := newEcho()
	stub := &stubCaregiver{}
	h := NewCaregiverHandler(stub)

	c, _ := jsonContext(e, http.MethodGet, "/caregiver/children/k1/activity", "")
	c.SetParamNames("id")
	c.SetParamValues("k1")
	if err := h.Activity(c); err != nil {
		t.Fatalf("activity error: %v", err)
	}

	c, _ = jsonContext(e, http.MethodDelete, "/caregiver/children/k1", "")
	c.SetParamNames("id")
	c.SetParamValues("k1")
	if err := h.UnlinkChild(c); err != nil {
		t.Fatalf("unlink error: %v", err)
	}

	if stub.selected != "k1" || stub.unlinked != "k1" {
		t.Fatalf("unexpected calls: %q %q", stub.selected, stub.unlinked)
	}
}
