package credentials

import "github.com/google/uuid"

// Session is the unlock state of one running process. It starts locked,
// becomes unlocked after a successful password check and is locked again by
// a password change. It is never persisted.
type Session struct {
	id       string
	unlocked bool
}

// NewSession returns a locked session with a fresh identifier.
func NewSession() *Session {
	return &Session{id: uuid.New().String()}
}

// ID identifies the session in audit entries.
func (s *Session) ID() string {
	return s.id
}

// Unlocked reports whether a password check has succeeded since the session
// started or was last locked.
func (s *Session) Unlocked() bool {
	return s.unlocked
}

// Lock forces the next gated action to ask for the password again.
func (s *Session) Lock() {
	s.unlocked = false
}

func (s *Session) unlock() {
	s.unlocked = true
}
