package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StageTemp copies r into a temporary file keeping the extension of filename,
// which speech-to-text services use to guess the container format.
// The returned cleanup removes the file and is safe to call more than once.
func StageTemp(r io.Reader, filename string) (string, func(), error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || len(ext) > 8 {
		ext = ".wav"
	}

	f, err := os.CreateTemp("", "meeting-audio-*"+ext)
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("failed to stage audio: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("failed to stage audio: %w", err)
	}

	return path, cleanup, nil
}
