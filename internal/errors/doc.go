// Package errors provides typed error values for noted.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The
// interactive loop maps each of them to the short message the user sees.
//
// # Error Categories
//
//   - Validation errors: bad menu choice, note selection or line number
//     (ErrInvalidOption, ErrNoteNotSelected, ErrInvalidLineNumber)
//   - Storage errors: missing note or password file (ErrNoteNotFound,
//     ErrCredentialUnreadable)
//   - Authentication errors: failed password checks (ErrWrongPassword,
//     ErrOldPasswordIncorrect, ErrSessionLocked)
//
// None of these are fatal. The loop reports them and shows the menu again.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading note %s: %w", name, errors.ErrNoteNotFound)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, nerrors.ErrInvalidLineNumber) {
//	    fmt.Fprintln(out, "Invalid line number.")
//	}
package errors
