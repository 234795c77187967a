package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidFileType rejects uploads whose name does not end in .pdf.
// File content is never inspected.
var ErrInvalidFileType = errors.New("only PDF files allowed")

var blackbookPlaceholder = []byte("%PDF-1.4\n%Dummy Blackbook Content\n")

// FileStore manages the three fixed upload directories under one root.
type FileStore struct {
	synopsisDir  string
	projectsDir  string
	blackbookDir string
}

func New(root string) (*FileStore, error) {
	f := &FileStore{
		synopsisDir:  filepath.Join(root, "synopsis"),
		projectsDir:  filepath.Join(root, "projects"),
		blackbookDir: filepath.Join(root, "blackbook"),
	}
	for _, dir := range []string{f.synopsisDir, f.projectsDir, f.blackbookDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
		}
	}
	return f, nil
}

// SaveSynopsis validates the extension and writes the blob under a freshly
// generated name, so caller-supplied names can never collide. Returns the
// stored path; the original name is the caller's to record.
func (f *FileStore) SaveSynopsis(originalName string, r io.Reader) (string, error) {
	if !strings.HasSuffix(originalName, ".pdf") {
		return "", ErrInvalidFileType
	}

	path := filepath.Join(f.synopsisDir, uuid.New().String()+".pdf")
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path, nil
}

// BlackbookPath returns the static blackbook document, creating it with
// placeholder content on first request.
func (f *FileStore) BlackbookPath() (string, error) {
	path := filepath.Join(f.blackbookDir, "blackbook.pdf")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, blackbookPlaceholder, 0o644); err != nil {
			return "", fmt.Errorf("failed to create blackbook: %w", err)
		}
	}
	return path, nil
}
