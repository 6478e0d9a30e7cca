package errors

import "errors"

// Validation errors indicate the user supplied input that cannot be acted on.
var (
	// ErrInvalidOption indicates a menu choice that does not name a command.
	ErrInvalidOption = errors.New("invalid option")

	// ErrNoteNotSelected indicates a note selection that is non-numeric or out of range.
	ErrNoteNotSelected = errors.New("invalid choice")

	// ErrInvalidLineNumber indicates a line index outside 1..N for the chosen note.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrInvalidNoteName indicates a note name that is empty or would escape the notes directory.
	ErrInvalidNoteName = errors.New("invalid note name")

	// ErrInvalidLine indicates note text containing a line terminator.
	ErrInvalidLine = errors.New("note text must not contain line breaks")
)

// Storage errors indicate a note or credential file could not be used.
var (
	// ErrNoteNotFound indicates the named note file does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrCredentialUnreadable indicates the password file is missing or could not be read.
	ErrCredentialUnreadable = errors.New("error reading password file")

	// ErrCredentialNotSet indicates no password has been stored yet.
	ErrCredentialNotSet = errors.New("password has not been set")
)

// Authentication errors indicate a failed or missing password check.
var (
	// ErrWrongPassword indicates the candidate did not match the stored password.
	ErrWrongPassword = errors.New("wrong password")

	// ErrOldPasswordIncorrect indicates the old password given during a change did not match.
	ErrOldPasswordIncorrect = errors.New("old password incorrect")

	// ErrSessionLocked indicates a gated operation was attempted without unlocking first.
	ErrSessionLocked = errors.New("session is locked")
)

// Configuration and audit errors.
var (
	// ErrInvalidConfig indicates the configuration file is malformed or fails validation.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrNoAuditLog indicates the audit log has not been written yet.
	ErrNoAuditLog = errors.New("no audit log found")

	// ErrInvalidDateFormat indicates a --since/--until value that is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
