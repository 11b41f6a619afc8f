package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sethvargo/go-envconfig"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/pkg/logger"
)

// fakeBackend is an echo server answering the endpoints the tests use in
// the {success, data, error} envelope.
type fakeBackend struct {
	role domain.Role

	mu      sync.Mutex
	auth    []string
	uploads []string
}

func (b *fakeBackend) ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

func (b *fakeBackend) user() domain.User {
	return domain.User{ID: "u1", Email: "u@example.com", Role: b.role}
}

func (b *fakeBackend) start(t *testing.T) string {
	t.Helper()
	e := echo.New()

	e.POST("/api/auth/login", func(c echo.Context) error {
		var req domain.LoginRequest
		if err := c.Bind(&req); err != nil || req.Password != "secret" {
			return c.JSON(http.StatusUnauthorized, map[string]any{
				"success": false, "error": map[string]string{"message": "Invalid login credentials"},
			})
		}
		// The backend sometimes leaks a prefix and trailing junk into the token.
		return b.ok(c, map[string]any{"user": b.user(), "token": "Bearer tok-123\nSUPABASE_ANON_KEY=x"})
	})

	authed := e.Group("/api", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			b.mu.Lock()
			b.auth = append(b.auth, h)
			b.mu.Unlock()
			if h != "Bearer tok-123" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false, "error": map[string]string{"message": "No token provided"},
				})
			}
			return next(c)
		}
	})
	authed.GET("/auth/profile", func(c echo.Context) error { return b.ok(c, b.user()) })
	authed.GET("/teacher/classes", func(c echo.Context) error {
		return b.ok(c, []domain.Class{{ID: "c1", Name: "Biology", ClassCode: "BIO101"}})
	})
	authed.POST("/image/upload", func(c echo.Context) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false, "error": map[string]string{"message": "No image provided"},
			})
		}
		b.mu.Lock()
		b.uploads = append(b.uploads, fh.Filename)
		b.mu.Unlock()
		return b.ok(c, domain.ImageUpload{SessionID: "img-" + fh.Filename, Explanation: "ok"})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

type harness struct {
	env      map[string]string
	password string
}

func newHarness(t *testing.T, apiURL string) *harness {
	t.Helper()
	t.Cleanup(logger.Reset)
	return &harness{env: map[string]string{
		"STUDYCARE_API_URL": apiURL,
		"STORAGE_DRIVER":    "file",
		"STORAGE_PATH":      filepath.Join(t.TempDir(), "storage.json"),
		"LOG_LEVEL":         "error",
	}}
}

func (h *harness) run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	c := New(&out, &errOut)
	c.lookuper = envconfig.MapLookuper(h.env)
	c.readPassword = func(int) ([]byte, error) {
		if h.password == "" {
			return nil, errors.New("no terminal")
		}
		return []byte(h.password + "\n"), nil
	}

	err := c.Run(context.Background(), args)
	return out.String(), errOut.String(), err
}

func TestLogin_PersistsTokenAcrossInvocations(t *testing.T) {
	backend := &fakeBackend{role: domain.RoleTeacher}
	h := newHarness(t, backend.start(t))

	out, _, err := h.run("login", "--email", "t@example.com", "--password", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	var user domain.User
	if err := json.Unmarshal([]byte(out), &user); err != nil {
		t.Fatalf("login output is not JSON: %v\n%s", err, out)
	}
	if user.Role != domain.RoleTeacher {
		t.Fatalf("unexpected user: %+v", user)
	}

	raw, err := os.ReadFile(h.env["STORAGE_PATH"])
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}
	if !strings.Contains(string(raw), `"tok-123"`) {
		t.Fatalf("expected the cleaned token in storage, got %s", raw)
	}

	out, _, err = h.run("teacher", "classes")
	if err != nil {
		t.Fatalf("teacher classes: %v", err)
	}
	if !strings.Contains(out, `"BIO101"`) {
		t.Fatalf("unexpected classes output: %s", out)
	}

	if _, _, err := h.run("logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, err := h.run("teacher", "classes"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestLogin_PromptsForPassword(t *testing.T) {
	backend := &fakeBackend{role: domain.RoleStudent}
	h := newHarness(t, backend.start(t))
	h.password = "secret"

	_, prompt, err := h.run("login", "--email", "s@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(prompt, "Password:") {
		t.Fatalf("expected a password prompt, got %q", prompt)
	}
}

func TestLogin_BackendRejects(t *testing.T) {
	backend := &fakeBackend{role: domain.RoleStudent}
	h := newHarness(t, backend.start(t))

	_, _, err := h.run("login", "--email", "s@example.com", "--password", "wrong")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Invalid login credentials" {
		t.Fatalf("expected backend 401, got %v", err)
	}
}

func TestGuard_WrongDashboard(t *testing.T) {
	backend := &fakeBackend{role: domain.RoleStudent}
	h := newHarness(t, backend.start(t))

	if _, _, err := h.run("login", "--email", "s@example.com", "--password", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, _, err := h.run("teacher", "classes")
	var redirect *domain.RedirectError
	if !errors.As(err, &redirect) || redirect.Route != "/student" {
		t.Fatalf("expected redirect to the student dashboard, got %v", err)
	}
}

func TestImageUpload_Batch(t *testing.T) {
	backend := &fakeBackend{role: domain.RoleStudent}
	h := newHarness(t, backend.start(t))
	if _, _, err := h.run("login", "--email", "s@example.com", "--password", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("img "+name), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		files = append(files, p)
	}

	out, _, err := h.run(append([]string{"image", "upload"}, files...)...)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	var outcomes []uploadOutcome
	if err := json.Unmarshal([]byte(out), &outcomes); err != nil {
		t.Fatalf("upload output is not JSON: %v\n%s", err, out)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	for i, o := range outcomes {
		if o.File != files[i] || o.Error != "" {
			t.Fatalf("outcome %d: %+v", i, o)
		}
	}
	if len(backend.uploads) != 3 {
		t.Fatalf("expected 3 uploads at the backend, got %v", backend.uploads)
	}
}

func TestImageUpload_MissingFile(t *testing.T) {
	backend := &fakeBackend{role: domain.RoleStudent}
	h := newHarness(t, backend.start(t))

	out, _, err := h.run("image", "upload", filepath.Join(t.TempDir(), "missing.png"))
	if err == nil || !strings.Contains(err.Error(), "1 of 1 uploads failed") {
		t.Fatalf("expected upload failure, got %v", err)
	}
	if !strings.Contains(out, "missing.png") {
		t.Fatalf("expected the failed file in the output, got %s", out)
	}
}

func TestSetup_InvalidStorageFlag(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1/api")

	_, _, err := h.run("--storage", "sqlite", "profile")
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.HasPrefix(err.Error(), "config:") {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestProfile_NotSignedIn(t *testing.T) {
	h := newHarness(t, "http://127.0.0.1:1/api")

	if _, _, err := h.run("profile"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
