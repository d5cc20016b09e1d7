package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["file"][0]
}

func TestStageAndCommit(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	content := []byte("slide deck contents")
	staged, relPath, err := store.Stage(makeFileHeader(t, "Week 1.pptx", content), 7)
	if err != nil {
		t.Fatalf("failed to stage file: %v", err)
	}

	// Staged file exists, the final path does not yet
	if _, err := os.Stat(staged); err != nil {
		t.Fatalf("staged file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, relPath)); !os.IsNotExist(err) {
		t.Fatalf("final path should not exist before commit, stat err = %v", err)
	}
	if !strings.HasPrefix(relPath, filepath.Join("course-materials", "7")+string(os.PathSeparator)) {
		t.Errorf("unexpected relative path %q", relPath)
	}
	if filepath.Ext(relPath) != ".pptx" {
		t.Errorf("expected .pptx extension preserved, got %q", relPath)
	}

	if err := store.Commit(staged, relPath); err != nil {
		t.Fatalf("failed to commit file: %v", err)
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Errorf("staged file should be gone after commit, stat err = %v", err)
	}

	f, err := store.Open(relPath)
	if err != nil {
		t.Fatalf("failed to open committed file: %v", err)
	}
	defer f.Close()
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("failed to read committed file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("committed content mismatch: got %q", got)
	}
}

func TestDiscard(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	staged, _, err := store.Stage(makeFileHeader(t, "notes.pdf", []byte("x")), 1)
	if err != nil {
		t.Fatalf("failed to stage file: %v", err)
	}

	store.Discard(staged)
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Errorf("staged file should be gone after discard, stat err = %v", err)
	}
}

func TestRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	staged, relPath, err := store.Stage(makeFileHeader(t, "notes.pdf", []byte("x")), 1)
	if err != nil {
		t.Fatalf("failed to stage file: %v", err)
	}
	if err := store.Commit(staged, relPath); err != nil {
		t.Fatalf("failed to commit file: %v", err)
	}

	if err := store.Remove(relPath); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if _, err := store.Open(relPath); !os.IsNotExist(err) {
		t.Errorf("expected not-exist after remove, got %v", err)
	}
}

func TestPathEscapeRejected(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	for _, relPath := range []string{
		"../outside.txt",
		"course-materials/../../etc/passwd",
	} {
		if _, err := store.Open(relPath); err == nil {
			t.Errorf("expected error opening %q, got nil", relPath)
		}
		if err := store.Remove(relPath); err == nil {
			t.Errorf("expected error removing %q, got nil", relPath)
		}
	}
}

func TestContentType(t *testing.T) {
	cases := map[string]string{
		"a/b.pdf":     "application/pdf",
		"a/b.docx":    "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"a/b.pptx":    "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"a/b.jpg":     "image/jpeg",
		"a/b.JPEG":    "image/jpeg",
		"a/b.png":     "image/png",
		"a/b.unknown": "application/octet-stream",
		"a/noext":     "application/octet-stream",
	}
	for relPath, want := range cases {
		if got := ContentType(relPath); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", relPath, got, want)
		}
	}
}
