package audit

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// TimestampFormat is the layout of Entry.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Operation names recorded in the log.
const (
	OpSetup          = "setup"
	OpAdd            = "add"
	OpView           = "view"
	OpDelete         = "delete"
	OpDeleteLine     = "delete_line"
	OpEditLine       = "edit_line"
	OpChangePassword = "change_password"
	OpUnlock         = "unlock"
)

// Outcomes recorded in the log.
const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeFailed = "failed"
)

// Entry represents a single audit log entry. Entries never hold note text
// or passwords.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Session   string `json:"session"` // Session that performed the operation.
	Operation string `json:"op"`      // Operation name.

	// Optional fields depending on operation.
	Note    string `json:"note,omitempty"`    // Note file name.
	Line    int    `json:"line,omitempty"`    // 1-based line for delete_line/edit_line.
	Outcome string `json:"outcome,omitempty"` // ok, denied or failed.
}

// Log appends entries to a JSON Lines file. A Log with an empty path
// records nothing.
type Log struct {
	path string
	now  func() time.Time
}

// New returns a Log writing to path. An empty path disables logging.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Path returns the path to the audit log file, or "" when disabled.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Record appends entry to the log.
// If logging fails it is silently dropped. Operations should not fail just
// because audit logging failed.
func (l *Log) Record(entry Entry) {
	if l == nil || l.path == "" {
		return
	}

	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = l.now().UTC().Format(TimestampFormat)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return
	}

	// #nosec G302 G304 -- the log only holds operation metadata.
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// Write entry with newline.
	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the log.
// Returns fs.ErrNotExist (wrapped) if nothing has been logged yet.
func (l *Log) ReadEntries() ([]Entry, error) {
	if l.Path() == "" {
		return nil, fs.ErrNotExist
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
