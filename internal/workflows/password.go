package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/noted/internal/audit"
	nerrors "github.com/PolarWolf314/noted/internal/errors"
)

// SetupOptions configures the first-run password setup.
type SetupOptions struct {
	// Password is the initial password. It may be empty.
	Password string
}

// SetupResult contains the outcome of a setup.
type SetupResult struct {
	// Created is false when a password was already set and nothing changed.
	Created bool
}

// Setup stores the initial password when none is set yet.
func Setup(ctx context.Context, env *Env, opts SetupOptions) (*SetupResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if env.Credentials.IsSet() {
		return &SetupResult{Created: false}, nil
	}
	if err := env.Credentials.Save(opts.Password); err != nil {
		env.record(audit.Entry{Operation: audit.OpSetup, Outcome: audit.OutcomeFailed})
		return nil, fmt.Errorf("saving initial password: %w", err)
	}
	env.record(audit.Entry{Operation: audit.OpSetup, Outcome: audit.OutcomeOK})
	return &SetupResult{Created: true}, nil
}

// UnlockOptions configures an unlock attempt.
type UnlockOptions struct {
	Password string
}

// Unlock unlocks the session with opts.Password. An already unlocked session
// succeeds without checking.
//
// Returns ErrWrongPassword on mismatch and ErrCredentialUnreadable when the
// password file cannot be read.
func Unlock(ctx context.Context, env *Env, opts UnlockOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := env.Credentials.Unlock(env.Session, opts.Password)
	if err != nil {
		result := audit.OutcomeFailed
		if errors.Is(err, nerrors.ErrWrongPassword) {
			result = audit.OutcomeDenied
		}
		env.record(audit.Entry{Operation: audit.OpUnlock, Outcome: result})
	}
	return err
}

// ChangePasswordOptions configures a password change.
type ChangePasswordOptions struct {
	OldPassword string
	NewPassword string
}

// ChangePassword replaces the password and locks the session.
//
// Returns ErrSessionLocked if the session has not been unlocked and
// ErrOldPasswordIncorrect if OldPassword does not match the stored one.
func ChangePassword(ctx context.Context, env *Env, opts ChangePasswordOptions) error {
	if err := env.requireUnlocked(ctx); err != nil {
		return err
	}
	err := env.Credentials.ChangePassword(env.Session, opts.OldPassword, opts.NewPassword)
	switch {
	case errors.Is(err, nerrors.ErrOldPasswordIncorrect):
		env.record(audit.Entry{Operation: audit.OpChangePassword, Outcome: audit.OutcomeDenied})
	default:
		env.record(audit.Entry{Operation: audit.OpChangePassword, Outcome: outcome(err)})
	}
	return err
}

// VerifyOldPassword checks a candidate old password before a new one is
// asked for, without changing any state.
//
// Returns ErrOldPasswordIncorrect on mismatch and ErrCredentialUnreadable
// when the password file cannot be read.
func VerifyOldPassword(ctx context.Context, env *Env, candidate string) error {
	if err := env.requireUnlocked(ctx); err != nil {
		return err
	}
	ok, err := env.Credentials.Matches(candidate)
	if err != nil {
		return err
	}
	if !ok {
		env.record(audit.Entry{Operation: audit.OpChangePassword, Outcome: audit.OutcomeDenied})
		return nerrors.ErrOldPasswordIncorrect
	}
	return nil
}
