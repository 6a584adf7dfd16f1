package client

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TokenStore persists the anonymous session token between runs so a caller
// keeps finding the same cart.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
}

type fileStore struct {
	path string
}

// NewFileStore persists the token at path. Parent directories are created
// on first save.
func NewFileStore(path string) TokenStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *fileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// memoryStore holds the token for the lifetime of the process only.
type memoryStore struct {
	token string
}

func NewMemoryStore() TokenStore {
	return &memoryStore{}
}

func (s *memoryStore) Load() (string, error) { return s.token, nil }

func (s *memoryStore) Save(token string) error {
	s.token = token
	return nil
}

func newSessionToken() string {
	return "session_" + uuid.NewString()
}
