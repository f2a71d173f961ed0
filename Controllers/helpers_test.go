package Controllers_test

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Planner/FiberConfig"
	"Planner/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type testEnv struct {
	App       *fiber.App
	DB        *gorm.DB
	UploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	db, err := Models.Connect(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	uploadDir := filepath.Join(dir, "uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		t.Fatalf("upload dir: %v", err)
	}

	app := FiberConfig.New(db, FiberConfig.Config{
		TemplatesDir: "../Templates",
		UploadDir:    uploadDir,
	})
	return &testEnv{App: app, DB: db, UploadDir: uploadDir}
}

func (e *testEnv) do(t *testing.T, req *http.Request, cookies []*http.Cookie) *http.Response {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := e.App.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	return resp
}

func (e *testEnv) get(t *testing.T, path string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return e.do(t, req, cookies)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return e.do(t, req, cookies)
}

// postMultipart sends a form with an optional file part. An empty filename
// skips the file part entirely.
func (e *testEnv) postMultipart(t *testing.T, path string, fields map[string]string, fileField, fileName string, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var body strings.Builder
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write([]byte("file contents")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body.String()))
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return e.do(t, req, cookies)
}

func (e *testEnv) signup(t *testing.T, username, password string) {
	t.Helper()
	resp := e.postForm(t, "/signup", url.Values{"username": {username}, "password": {password}}, nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("signup status = %d, want 302", resp.StatusCode)
	}
}

func (e *testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	resp := e.postForm(t, "/login", url.Values{"username": {username}, "password": {password}}, nil)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login status = %d, want 302", resp.StatusCode)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return string(b)
}

func location(resp *http.Response) string {
	return resp.Header.Get(fiber.HeaderLocation)
}
