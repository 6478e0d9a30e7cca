// Package workflows provides the operations behind noted's menu and commands.
//
// Workflows coordinate the notes store, the credential store and the audit
// log to implement complete user-facing features. Each workflow handles a
// single operation's business logic, independent of console concerns like
// prompts, spinners and output formatting.
//
// # Design Philosophy
//
// The session loop and the cmd/ package should be a thin layer that:
//   - Reads input and parses flags
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Checking the session is unlocked
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Gating
//
// ViewNote, DeleteNote, DeleteLine, EditLine and ChangePassword return
// ErrSessionLocked until Unlock has succeeded on the Env's session.
// AddNote and ListNotes are not gated.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the caller to pick a message without string matching:
//
//	err := workflows.DeleteLine(ctx, env, opts)
//	if errors.Is(err, nerrors.ErrInvalidLineNumber) {
//	    // Print "Invalid line number."
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is checked before work starts; a read or write in progress runs to
// completion.
package workflows
