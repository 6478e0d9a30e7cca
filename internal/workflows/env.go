package workflows

import (
	"context"

	"github.com/PolarWolf314/noted/internal/audit"
	"github.com/PolarWolf314/noted/internal/cipher"
	"github.com/PolarWolf314/noted/internal/configs"
	"github.com/PolarWolf314/noted/internal/credentials"
	nerrors "github.com/PolarWolf314/noted/internal/errors"
	"github.com/PolarWolf314/noted/internal/notes"
)

// Env holds the stores and session one run of noted works with.
type Env struct {
	Settings    *configs.Settings
	Notes       *notes.Store
	Credentials *credentials.Store
	Audit       *audit.Log
	Session     *credentials.Session
}

// NewEnv builds the stores described by settings and starts a locked session.
func NewEnv(settings *configs.Settings) *Env {
	c := cipher.Cipher{Shift: settings.Shift}
	return &Env{
		Settings:    settings,
		Notes:       notes.NewStore(settings.NotesDir, settings.NoteSuffix, c),
		Credentials: credentials.NewStore(settings.PasswordPath, c),
		Audit:       audit.New(settings.AuditPath),
		Session:     credentials.NewSession(),
	}
}

// record appends an audit entry for the current session.
func (e *Env) record(entry audit.Entry) {
	if e.Session != nil {
		entry.Session = e.Session.ID()
	}
	e.Audit.Record(entry)
}

// requireUnlocked guards every gated workflow.
func (e *Env) requireUnlocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.Session == nil || !e.Session.Unlocked() {
		return nerrors.ErrSessionLocked
	}
	return nil
}

func outcome(err error) string {
	if err != nil {
		return audit.OutcomeFailed
	}
	return audit.OutcomeOK
}
