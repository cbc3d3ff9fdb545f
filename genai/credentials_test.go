package genai

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	s := NewCredentialStore(path)

	if _, err := s.Load(); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("Load on empty store = %v, want ErrNoCredential", err)
	}
	if err := s.Save("  abc123 \n"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil || got != "abc123" {
		t.Errorf("Load = %q, %v, want abc123", got, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %v, want 0600", perm)
	}

	// Another store over the same file sees the key.
	if got, _ := NewCredentialStore(path).Load(); got != "abc123" {
		t.Errorf("second store Load = %q", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNoCredential) {
		t.Errorf("Load after Clear = %v, want ErrNoCredential", err)
	}
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear = %v", err)
	}
}

func TestCredentialStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(`{"other": "x"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewCredentialStore(path)
	if err := s.Save("k"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"other\": \"x\"\n}\n"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestCredentialStoreRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewCredentialStore(path)
	if err := s.Save("   "); !errors.Is(err, ErrNoCredential) {
		t.Errorf("Save(blank) = %v, want ErrNoCredential", err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil || errors.Is(err, ErrNoCredential) {
		t.Errorf("Load(corrupt) = %v, want a parse error", err)
	}
}
