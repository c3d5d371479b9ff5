package session

import (
	"context"
	"os"
	"path/filepath"

	domainerrors "kalasangha.client/internal/domain/errors"
)

// TokenStore holds the single admin bearer token between runs. Set on login,
// read on every guarded action, cleared on logout or expiry.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// FileStore keeps the token in a file under the user's profile, the terminal
// analogue of per-browser-profile storage.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed token store. An empty path defaults to
// ~/.kalasangha/token.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".kalasangha", "token")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domainerrors.ErrNoToken
		}
		return "", err
	}
	if len(data) == 0 {
		return "", domainerrors.ErrNoToken
	}
	return string(data), nil
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
