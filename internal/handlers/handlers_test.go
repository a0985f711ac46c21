package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jonasarte-backend/internal/config"
	"jonasarte-backend/internal/store"
)

func newTestConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DataDir:        t.TempDir(),
		UploadsDir:     t.TempDir(),
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Minute,
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
	}
}

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if err := Register(r, store.New(cfg.DataDir), cfg); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return r
}

func jsonBody(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewBuffer(data)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reader := &bytes.Buffer{}
	if body != nil {
		reader = jsonBody(t, body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != want {
		t.Fatalf("expected error %q, got %q", want, body["error"])
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, w.Code, w.Body.String())
	}
}
