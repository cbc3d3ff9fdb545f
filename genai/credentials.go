package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CredentialKey is the key the API key is stored under.
const CredentialKey = "gemini-api-key"

// CredentialStore keeps the API key in a small JSON file readable only by
// the user.
type CredentialStore struct {
	path string
}

// NewCredentialStore returns a store backed by the file at path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// DefaultCredentialStore returns a store in the user configuration
// directory, for example ~/.config/thumbkit/credentials.json.
func DefaultCredentialStore() (*CredentialStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("genai: credential store: %w", err)
	}
	return NewCredentialStore(filepath.Join(dir, "thumbkit", "credentials.json")), nil
}

// Path returns the backing file.
func (s *CredentialStore) Path() string { return s.path }

// Load returns the stored key, or ErrNoCredential when none is stored.
func (s *CredentialStore) Load() (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	key := strings.TrimSpace(values[CredentialKey])
	if key == "" {
		return "", ErrNoCredential
	}
	return key, nil
}

// Save stores key, replacing any previous one.
func (s *CredentialStore) Save(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrNoCredential
	}
	values, err := s.read()
	if err != nil {
		return err
	}
	values[CredentialKey] = key
	return s.write(values)
}

// Clear removes the stored key. Clearing an empty store is not an error.
func (s *CredentialStore) Clear() error {
	values, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := values[CredentialKey]; !ok {
		return nil
	}
	delete(values, CredentialKey)
	return s.write(values)
}

func (s *CredentialStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("genai: read credentials: %w", err)
	}
	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("genai: parse credentials %s: %w", s.path, err)
		}
	}
	return values, nil
}

func (s *CredentialStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("genai: encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("genai: write credentials: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("genai: write credentials: %w", err)
	}
	return nil
}
