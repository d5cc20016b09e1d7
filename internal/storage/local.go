package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	materialsDir = "course-materials"
	stagingDir   = ".staging"
)

// LocalStore persists course material files under a fixed upload root.
// Uploads are two-phase: the file is streamed to a staging location first and
// renamed into place only after the database record is committed, so a crash
// mid-upload leaves a harmless staging orphan instead of a record pointing at
// nothing.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	for _, dir := range []string{root, filepath.Join(root, stagingDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &LocalStore{root: root}, nil
}

// Stage streams an uploaded file into the staging area and returns the staged
// path together with the final relative path the file will live at. The
// original filename contributes only its extension; the stored name is a
// random identifier to avoid collisions.
func (s *LocalStore) Stage(file *multipart.FileHeader, courseID uint) (staged string, relPath string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	staged = filepath.Join(s.root, stagingDir, name)
	dst, err := os.Create(staged)
	if err != nil {
		return "", "", fmt.Errorf("failed to create staging file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(staged)
		return "", "", fmt.Errorf("failed to write staging file: %w", err)
	}

	relPath = filepath.Join(materialsDir, fmt.Sprint(courseID), name)
	return staged, relPath, nil
}

// Commit moves a staged file into its final location.
func (s *LocalStore) Commit(staged, relPath string) error {
	final := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(final), 0o755); err != nil {
		return fmt.Errorf("failed to create course directory: %w", err)
	}
	if err := os.Rename(staged, final); err != nil {
		return fmt.Errorf("failed to move staged file into place: %w", err)
	}
	return nil
}

// Discard removes a staged file after a failed upload.
func (s *LocalStore) Discard(staged string) {
	_ = os.Remove(staged)
}

// Open opens a stored file for reading; relPath must resolve under the upload
// root.
func (s *LocalStore) Open(relPath string) (*os.File, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Remove deletes a stored file.
func (s *LocalStore) Remove(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// resolve joins relPath to the root and rejects paths escaping it.
func (s *LocalStore) resolve(relPath string) (string, error) {
	full := filepath.Join(s.root, relPath)
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if fullAbs != rootAbs && !strings.HasPrefix(fullAbs, rootAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes upload root", relPath)
	}
	return full, nil
}

// ContentType maps a stored file's extension to the response content type.
func ContentType(relPath string) string {
	switch strings.ToLower(filepath.Ext(relPath)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
