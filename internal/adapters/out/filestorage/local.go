// Package filestorage keeps uploaded document content on the local disk.
package filestorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"relocation/internal/pkg/errs"

	"github.com/pkg/errors"
)

// LocalStorage stores each blob as a file under root. Keys are slash
// separated relative paths and may not escape root.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, "resolve storage root")
	}
	if err = os.MkdirAll(abs, 0o750); err != nil {
		return nil, errors.Wrap(err, "create storage root")
	}
	return &LocalStorage{root: abs}, nil
}

// Save writes r to a temporary file and renames it into place, so a reader
// never sees a partial blob.
func (s *LocalStorage) Save(_ context.Context, key string, r io.Reader) (int64, error) {
	path, err := s.path(key)
	if err != nil {
		return 0, err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, errors.Wrap(err, "create directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return 0, errors.Wrap(err, "create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return 0, errors.Wrap(err, "write file")
	}
	if err = tmp.Close(); err != nil {
		return 0, errors.Wrap(err, "close file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, errors.Wrap(err, "move file into place")
	}
	return n, nil
}

func (s *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errs.NewObjectNotFoundErrorWithCause("file", key, err)
	}
	if err != nil {
		return nil, errors.Wrap(err, "open file")
	}
	return f, nil
}

// Delete removes the blob. A missing blob is not an error.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove file")
	}
	return nil
}

func (s *LocalStorage) path(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(key, "/")))
	if key == "" || cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errs.NewValueIsInvalidError("storage key")
	}
	return filepath.Join(s.root, cleaned), nil
}
