package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// tiny valid PNG header plus padding; the handler only inspects the
// declared media type, not the pixels.
var pngPayload = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func multipartImageRequest(t *testing.T, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadStoresImageAndReturnsURL(t *testing.T) {
	cfg := newTestConfig(t)
	r := newTestRouter(t, cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "image", "photo.png", "image/png", pngPayload))
	assertStatus(t, w, http.StatusOK)

	var body map[string]string
	decodeBody(t, w, &body)
	imageURL := body["imageUrl"]
	if !strings.HasPrefix(imageURL, "/uploads/") {
		t.Fatalf("expected relative /uploads/ URL, got %q", imageURL)
	}

	stored := filepath.Join(cfg.UploadsDir, path.Base(imageURL))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("expected stored blob at %s: %v", stored, err)
	}
	if !bytes.Equal(data, pngPayload) {
		t.Fatal("stored blob does not match the uploaded payload")
	}
}

func TestUploadRequiresImageField(t *testing.T) {
	r := newTestRouter(t, newTestConfig(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "file", "photo.png", "image/png", pngPayload))
	assertStatus(t, w, http.StatusBadRequest)
	assertErrorBody(t, w, "No image file provided")
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	r := newTestRouter(t, newTestConfig(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "image", "notes.txt", "text/plain", []byte("hello")))
	assertStatus(t, w, http.StatusBadRequest)
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	r := newTestRouter(t, newTestConfig(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "image", "photo.tiff", "image/tiff", pngPayload))
	assertStatus(t, w, http.StatusBadRequest)
}

func TestDeleteProductRemovesUploadedBlobs(t *testing.T) {
	cfg := newTestConfig(t)
	r := newTestRouter(t, cfg)

	blob := filepath.Join(cfg.UploadsDir, "keepsake.png")
	if err := os.WriteFile(blob, pngPayload, 0o644); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPost, "/products", map[string]interface{}{
		"name":   "Vaso",
		"images": []string{"/uploads/keepsake.png"},
	})
	assertStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodDelete, "/products/1", nil)
	assertStatus(t, w, http.StatusNoContent)

	if _, err := os.Stat(blob); !os.IsNotExist(err) {
		t.Fatalf("expected blob removed with its product, stat err=%v", err)
	}
}

func TestSafeDeleteUploadRefusesOutsidePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	for _, imageURL := range []string{
		"/etc/passwd",
		"/uploads/../../etc/passwd",
		"https://cdn.example.com/not-ours/x.png",
	} {
		if err := safeDeleteUpload(dir, imageURL); err == nil {
			t.Fatalf("expected refusal for %q", imageURL)
		}
	}

	// External URLs that still point into /uploads resolve locally.
	if err := safeDeleteUpload(dir, "https://example.com/uploads/ghost.png"); err != nil {
		t.Fatalf("missing blob should not be an error: %v", err)
	}
}
