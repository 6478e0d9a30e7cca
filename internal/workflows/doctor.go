package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/PolarWolf314/noted/internal/utils"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks      []CheckResult `json:"checks"`
	Summary     DoctorSummary `json:"summary"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct{}

// Doctor runs health checks on the data directory.
//
// The doctor workflow checks:
//   - The notes, auth and key directories exist
//   - A password is set and is a single line
//   - Every note can be read and decodes cleanly
//   - No stray files without the note suffix sit in the notes directory
//   - The audit log parses
//
// Doctor never unlocks the session and never prints note content.
func Doctor(ctx context.Context, env *Env, opts DoctorOptions) (*DoctorResult, error) {
	checks := []func(*Env) CheckResult{
		checkNotesDir,
		checkAuthDir,
		checkKeyDir,
		checkPassword,
		checkNotesReadable,
		checkStrayFiles,
		checkAuditLog,
	}

	var results []CheckResult
	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, check(env))
	}

	summary := calculateDoctorSummary(results)

	// Collect suggestions (deduplicated).
	var suggestions []string
	seen := make(map[string]bool)
	for _, result := range results {
		if result.Suggestion != "" && result.Status != CheckPass && !seen[result.Suggestion] {
			suggestions = append(suggestions, result.Suggestion)
			seen[result.Suggestion] = true
		}
	}

	return &DoctorResult{
		Checks:      results,
		Summary:     summary,
		Suggestions: suggestions,
	}, nil
}

func checkDir(name, path string) CheckResult {
	exists, err := utils.DirExists(path)
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Failed to stat %s: %v", path, err),
			Suggestion: "Check that the data directory is accessible",
		}
	}
	if !exists {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%s not found", path),
			Suggestion: "Run 'noted' once to create the data directories",
		}
	}
	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("%s exists", path),
	}
}

func checkNotesDir(env *Env) CheckResult {
	return checkDir("Notes directory", env.Settings.NotesDir)
}

func checkAuthDir(env *Env) CheckResult {
	return checkDir("Auth directory", env.Settings.AuthDir)
}

func checkKeyDir(env *Env) CheckResult {
	return checkDir("Key directory", env.Settings.KeyDir)
}

// checkPassword checks the password file exists and holds a single line.
func checkPassword(env *Env) CheckResult {
	const name = "Password"
	path := env.Credentials.Path()

	// #nosec G304 -- path comes from the resolved settings.
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "No password set",
			Suggestion: "Run 'noted' to set a password",
		}
	}
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Failed to read password file: %v", err),
			Suggestion: fmt.Sprintf("Check that %s is readable", path),
		}
	}

	if strings.Count(strings.TrimRight(string(data), "\r\n"), "\n") > 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    "Password file holds more than one line; only the first is used",
			Suggestion: "Change the password to rewrite the password file",
		}
	}

	info, err := os.Stat(path)
	if err == nil && info.Mode().Perm()&0077 != 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("Password file has loose permissions (%04o)", info.Mode().Perm()),
			Suggestion: fmt.Sprintf("Run 'chmod 600 %s' to fix permissions", path),
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: "Password set",
	}
}

// checkNotesReadable reads every note without showing its content.
func checkNotesReadable(env *Env) CheckResult {
	const name = "Notes readable"
	names := env.Notes.ListNoteNames()

	var unreadable []string
	for _, n := range names {
		if _, err := env.Notes.ReadAndDecode(n); err != nil {
			unreadable = append(unreadable, n)
		}
	}

	if len(unreadable) > 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("%d of %d notes could not be read: %s", len(unreadable), len(names), strings.Join(unreadable, ", ")),
			Suggestion: "Check file permissions in the notes directory",
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("%d notes readable", len(names)),
	}
}

// checkStrayFiles looks for files the note listing will not show.
func checkStrayFiles(env *Env) CheckResult {
	const name = "Stray files"
	entries, err := os.ReadDir(env.Settings.NotesDir)
	if err != nil {
		return CheckResult{
			Name:    name,
			Status:  CheckWarning,
			Message: "Notes directory could not be listed (skipping)",
		}
	}

	var stray []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), env.Notes.Suffix()) {
			stray = append(stray, e.Name())
		}
	}

	if len(stray) > 0 {
		return CheckResult{
			Name:       name,
			Status:     CheckWarning,
			Message:    fmt.Sprintf("Files without the %s suffix are hidden from the menu: %s", env.Notes.Suffix(), strings.Join(stray, ", ")),
			Suggestion: fmt.Sprintf("Rename or remove files in %s that do not end in %s", env.Settings.NotesDir, env.Notes.Suffix()),
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: "No stray files",
	}
}

func checkAuditLog(env *Env) CheckResult {
	const name = "Audit log"
	if env.Audit.Path() == "" {
		return CheckResult{
			Name:    name,
			Status:  CheckPass,
			Message: "Auditing disabled",
		}
	}

	entries, err := env.Audit.ReadEntries()
	if errors.Is(err, fs.ErrNotExist) {
		return CheckResult{
			Name:    name,
			Status:  CheckPass,
			Message: "No audit entries yet",
		}
	}
	if err != nil {
		return CheckResult{
			Name:       name,
			Status:     CheckError,
			Message:    fmt.Sprintf("Failed to read audit log: %v", err),
			Suggestion: fmt.Sprintf("Check that %s is readable", env.Audit.Path()),
		}
	}

	return CheckResult{
		Name:    name,
		Status:  CheckPass,
		Message: fmt.Sprintf("%d audit entries", len(entries)),
	}
}

// calculateDoctorSummary calculates the counts of checks by status.
func calculateDoctorSummary(results []CheckResult) DoctorSummary {
	var summary DoctorSummary
	for _, result := range results {
		switch result.Status {
		case CheckPass:
			summary.Passed++
		case CheckWarning:
			summary.Warnings++
		case CheckError:
			summary.Errors++
		}
	}
	return summary
}
