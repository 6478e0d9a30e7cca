// Package audit records which note operations ran and when.
//
// Every operation of the interactive session (add, view, delete, line edits,
// password changes and failed unlocks) is appended to a log in the data
// directory. Entries name the note file and line touched but never contain
// note text or passwords.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Session identifier
//   - Operation name
//   - Note, line and outcome where they apply
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display with `noted log`.
// Malformed entries are silently skipped to handle partial writes.
package audit
