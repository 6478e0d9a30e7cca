package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/noted/internal/audit"
)

// ListNotesResult contains the notes available for selection.
type ListNotesResult struct {
	// Names are the note file names in display order.
	Names []string
}

// ListNotes returns the notes in the notes directory. Listing is not gated so
// the menu can show "No notes available." before asking for the password.
func ListNotes(ctx context.Context, env *Env) (*ListNotesResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ListNotesResult{Names: env.Notes.ListNoteNames()}, nil
}

// AddNoteOptions configures appending a line to a note.
type AddNoteOptions struct {
	// Name is the note name without suffix.
	Name string
	// Text is the line to append.
	Text string
}

// AddNoteResult contains the outcome of AddNote.
type AddNoteResult struct {
	// Filename is the file the line was appended to.
	Filename string
}

// AddNote appends opts.Text to the note called opts.Name. It does not require
// an unlocked session.
func AddNote(ctx context.Context, env *Env, opts AddNoteOptions) (*AddNoteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := opts.Name + env.Notes.Suffix()
	err := env.Notes.AppendLine(opts.Name, opts.Text)
	env.record(audit.Entry{Operation: audit.OpAdd, Note: filename, Outcome: outcome(err)})
	if err != nil {
		return nil, fmt.Errorf("adding to note %s: %w", filename, err)
	}
	return &AddNoteResult{Filename: filename}, nil
}

// ViewNoteOptions names the note to show.
type ViewNoteOptions struct {
	Filename string
	// Quiet skips the audit entry. Used when lines are shown ahead of a
	// delete or edit that records its own entry.
	Quiet bool
}

// ViewNoteResult holds the decoded content of a note.
type ViewNoteResult struct {
	Filename string
	Lines    []string
}

// ViewNote decodes every line of a note.
func ViewNote(ctx context.Context, env *Env, opts ViewNoteOptions) (*ViewNoteResult, error) {
	if err := env.requireUnlocked(ctx); err != nil {
		return nil, err
	}
	lines, err := env.Notes.ReadAndDecode(opts.Filename)
	if !opts.Quiet {
		env.record(audit.Entry{Operation: audit.OpView, Note: opts.Filename, Outcome: outcome(err)})
	}
	if err != nil {
		return nil, err
	}
	return &ViewNoteResult{Filename: opts.Filename, Lines: lines}, nil
}

// DeleteNoteOptions names the note to remove.
type DeleteNoteOptions struct {
	Filename string
}

// DeleteNoteResult reports whether the note was removed.
type DeleteNoteResult struct {
	Deleted bool
}

// DeleteNote removes a note file. A note that could not be removed is
// reported through Deleted, not as an error.
func DeleteNote(ctx context.Context, env *Env, opts DeleteNoteOptions) (*DeleteNoteResult, error) {
	if err := env.requireUnlocked(ctx); err != nil {
		return nil, err
	}
	deleted := env.Notes.DeleteNote(opts.Filename)
	result := audit.OutcomeOK
	if !deleted {
		result = audit.OutcomeFailed
	}
	env.record(audit.Entry{Operation: audit.OpDelete, Note: opts.Filename, Outcome: result})
	return &DeleteNoteResult{Deleted: deleted}, nil
}

// DeleteLineOptions selects the line to remove.
type DeleteLineOptions struct {
	Filename string
	// Line is 1-based.
	Line int
}

// DeleteLine removes one line of a note.
//
// Returns ErrInvalidLineNumber when Line is outside the note; the file is
// left untouched in that case.
func DeleteLine(ctx context.Context, env *Env, opts DeleteLineOptions) error {
	if err := env.requireUnlocked(ctx); err != nil {
		return err
	}
	err := env.Notes.DeleteLineAt(opts.Filename, opts.Line)
	env.record(audit.Entry{Operation: audit.OpDeleteLine, Note: opts.Filename, Line: opts.Line, Outcome: outcome(err)})
	return err
}

// EditLineOptions selects the line to replace and its new text.
type EditLineOptions struct {
	Filename string
	// Line is 1-based.
	Line int
	Text string
}

// EditLine replaces one line of a note with opts.Text.
func EditLine(ctx context.Context, env *Env, opts EditLineOptions) error {
	if err := env.requireUnlocked(ctx); err != nil {
		return err
	}
	err := env.Notes.EditLineAt(opts.Filename, opts.Line, opts.Text)
	env.record(audit.Entry{Operation: audit.OpEditLine, Note: opts.Filename, Line: opts.Line, Outcome: outcome(err)})
	return err
}
