// Package credentials persists the single shared password and tracks whether
// the running session has been unlocked with it.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/noted/internal/cipher"
	nerrors "github.com/PolarWolf314/noted/internal/errors"
)

// Store reads and writes the obfuscated password file.
type Store struct {
	path   string
	cipher cipher.Cipher
}

// NewStore returns a Store for the password file at path.
func NewStore(path string, c cipher.Cipher) *Store {
	return &Store{path: path, cipher: c}
}

// Path returns the password file location.
func (s *Store) Path() string {
	return s.path
}

// IsSet reports whether a password file exists.
func (s *Store) IsSet() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save replaces the stored password. The previous one is not kept.
// Passwords that would span more than one stored line are rejected.
func (s *Store) Save(password string) error {
	encoded := s.cipher.Encode(password)
	if strings.ContainsAny(password, "\r\n") || strings.ContainsAny(encoded, "\r\n") {
		return nerrors.ErrInvalidLine
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(s.path), err)
	}
	// #nosec G306 -- the content is obfuscated, not secret, but keep it private anyway.
	if err := os.WriteFile(s.path, []byte(encoded), 0600); err != nil {
		return fmt.Errorf("failed to save password: %w", err)
	}
	return nil
}

// Verify reports whether candidate matches the stored password.
// A missing or unreadable file never matches.
func (s *Store) Verify(candidate string) bool {
	ok, _ := s.Matches(candidate)
	return ok
}

// Matches is Verify that also reports ErrCredentialUnreadable.
func (s *Store) Matches(candidate string) (bool, error) {
	stored, err := s.load()
	if err != nil {
		return false, err
	}
	return stored == candidate, nil
}

// Unlock checks candidate and unlocks session on a match. An already
// unlocked session is left alone without reading the file.
func (s *Store) Unlock(session *Session, candidate string) error {
	if session.Unlocked() {
		return nil
	}
	stored, err := s.load()
	if err != nil {
		return err
	}
	if stored != candidate {
		return nerrors.ErrWrongPassword
	}
	session.unlock()
	return nil
}

// ChangePassword replaces the stored password and locks session so the next
// gated action asks again. The old password is checked against the file
// even though the session is already unlocked.
func (s *Store) ChangePassword(session *Session, oldPassword, newPassword string) error {
	if !session.Unlocked() {
		return nerrors.ErrSessionLocked
	}
	stored, err := s.load()
	if err != nil {
		return err
	}
	if stored != oldPassword {
		return nerrors.ErrOldPasswordIncorrect
	}
	if err := s.Save(newPassword); err != nil {
		return err
	}
	session.Lock()
	return nil
}

// load returns the decoded first line of the password file. An empty file
// holds the empty password.
func (s *Store) load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", nerrors.ErrCredentialUnreadable, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return s.cipher.Decode(strings.TrimSuffix(line, "\r")), nil
}
