package types

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize is the largest attachment accepted, in bytes (5 MiB).
const MaxFileSize = 5 << 20

// allowedExtensions maps accepted attachment extensions to their MIME types.
var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// FileError represents a rejected local file.
type FileError struct {
	Name    string
	Message string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("invalid file %s: %s", e.Name, e.Message)
}

// LocalFile is an ephemeral, validated local file selected for upload. It
// exists only for the lifetime of a draft and is never persisted. Values
// are constructed exclusively through NewLocalFile, so an invalid file can
// never enter a draft.
type LocalFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// NewLocalFile validates name and content and returns a LocalFile.
// Extension must be one of .pdf, .doc, .docx and size at most 5 MiB.
func NewLocalFile(name string, data []byte) (*LocalFile, error) {
	ext := strings.ToLower(filepath.Ext(name))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return nil, &FileError{Name: name, Message: "only .pdf, .doc and .docx files are allowed"}
	}
	if len(data) == 0 {
		return nil, &FileError{Name: name, Message: "file is empty"}
	}
	if len(data) > MaxFileSize {
		return nil, &FileError{Name: name, Message: fmt.Sprintf("file exceeds %d byte limit", MaxFileSize)}
	}
	return &LocalFile{
		Name:        filepath.Base(name),
		Size:        int64(len(data)),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// LocalFileFromPath reads a file from disk and validates it.
func LocalFileFromPath(path string) (*LocalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return NewLocalFile(filepath.Base(path), data)
}
