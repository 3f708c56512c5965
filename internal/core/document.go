package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteDocument encodes records as a JSON array with 2-space indentation.
// Non-ASCII and HTML characters are written as-is.
func WriteDocument(w io.Writer, records any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// ReadDocument decodes a JSON array written by WriteDocument.
func ReadDocument[T any](r io.Reader) ([]T, error) {
	var out []T
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

// writeDocumentFile replaces path with the encoded records.
// The document is written to a temp file in the same directory and renamed
// into place, so a failed write leaves any existing file untouched.
func writeDocumentFile(path string, records any) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = WriteDocument(tmp, records); err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrWriteFailed, filepath.Base(path), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrWriteFailed, filepath.Base(path), err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", ErrWriteFailed, filepath.Base(path), err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %v", ErrWriteFailed, path, err)
	}
	return nil
}
