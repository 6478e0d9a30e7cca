package session

import (
	"context"
	"errors"
	"fmt"

	nerrors "github.com/PolarWolf314/noted/internal/errors"
	"github.com/PolarWolf314/noted/internal/notes"
	"github.com/PolarWolf314/noted/internal/ui"
	"github.com/PolarWolf314/noted/internal/workflows"
)

// handler runs one menu option. It returns an error only when the loop
// must stop: a failed read or a cancelled context. Everything else is
// reported to the user and the menu is shown again.
type handler func(ctx context.Context, l *Loop) error

var handlers = map[Command]handler{
	CommandAdd:            addNote,
	CommandView:           viewNote,
	CommandDelete:         deleteNote,
	CommandDeleteLine:     deleteLine,
	CommandEditLine:       editLine,
	CommandChangePassword: changePassword,
}

var dispatch = buildDispatch()

func buildDispatch() map[Command]handler {
	table := make(map[Command]handler, len(handlers))
	for cmd, h := range handlers {
		if cmd.Gated() {
			h = gated(h)
		}
		table[cmd] = h
	}
	return table
}

// gated asks for the password before h when the session is locked.
func gated(h handler) handler {
	return func(ctx context.Context, l *Loop) error {
		ok, err := l.unlock(ctx)
		if err != nil || !ok {
			return err
		}
		return h(ctx, l)
	}
}

func (l *Loop) unlock(ctx context.Context) (bool, error) {
	if l.env.Session.Unlocked() {
		return true, nil
	}
	password, err := l.readPassword("Enter password: ")
	if err != nil {
		return false, err
	}

	err = workflows.Unlock(ctx, l.env, workflows.UnlockOptions{Password: password})
	switch {
	case err == nil:
		return true, nil
	case isContextErr(err):
		return false, err
	case errors.Is(err, nerrors.ErrWrongPassword):
		l.println(ui.Error.Sprint("Wrong password!"))
	default:
		l.log.Debugf("Unlock: %v", err)
		l.println(ui.Error.Sprint("Error reading password file."))
	}
	return false, nil
}

// listNotes prints the available notes and returns them.
func (l *Loop) listNotes(ctx context.Context) ([]string, error) {
	result, err := workflows.ListNotes(ctx, l.env)
	if err != nil {
		return nil, err
	}
	if len(result.Names) == 0 {
		l.println("No notes available.")
		return result.Names, nil
	}
	l.println("")
	l.println(ui.Heading.Sprint("Available notes:"))
	for i, name := range result.Names {
		l.println(fmt.Sprintf("%d. %s", i+1, ui.Path.Sprint(name)))
	}
	return result.Names, nil
}

// chooseFile lists the notes and asks for one. ok is false when there is
// nothing to choose or the choice was invalid.
func (l *Loop) chooseFile(ctx context.Context) (filename string, ok bool, err error) {
	names, err := l.listNotes(ctx)
	if err != nil || len(names) == 0 {
		return "", false, err
	}
	selection, err := l.prompt("Choose file number: ")
	if err != nil {
		return "", false, err
	}
	filename, err = notes.ChooseFile(names, selection)
	if err != nil {
		l.println(ui.Error.Sprint("Invalid choice."))
		return "", false, nil
	}
	return filename, true, nil
}

func addNote(ctx context.Context, l *Loop) error {
	if _, err := l.listNotes(ctx); err != nil {
		return err
	}
	name, err := l.prompt("Enter filename: ")
	if err != nil {
		return err
	}
	text, err := l.prompt("Enter note text: ")
	if err != nil {
		return err
	}

	if _, err := workflows.AddNote(ctx, l.env, workflows.AddNoteOptions{Name: name, Text: text}); err != nil {
		if isContextErr(err) {
			return err
		}
		l.log.Debugf("Add: %v", err)
		l.println(ui.Error.Sprint("Error saving note."))
		return nil
	}
	l.println(ui.Success.Sprint("Note saved successfully!"))
	return nil
}

func viewNote(ctx context.Context, l *Loop) error {
	filename, ok, err := l.chooseFile(ctx)
	if err != nil || !ok {
		return err
	}

	result, err := workflows.ViewNote(ctx, l.env, workflows.ViewNoteOptions{Filename: filename})
	if err != nil {
		if isContextErr(err) {
			return err
		}
		l.log.Debugf("View %s: %v", filename, err)
		l.println(ui.Error.Sprint("Error reading file."))
		return nil
	}

	l.println("")
	l.println(ui.Heading.Sprint("--- Note Content ---"))
	for _, line := range result.Lines {
		l.println(line)
	}
	l.println(ui.Heading.Sprint("--------------------"))
	return nil
}

func deleteNote(ctx context.Context, l *Loop) error {
	filename, ok, err := l.chooseFile(ctx)
	if err != nil || !ok {
		return err
	}

	result, err := workflows.DeleteNote(ctx, l.env, workflows.DeleteNoteOptions{Filename: filename})
	if err != nil {
		return err
	}
	if !result.Deleted {
		l.println(ui.Error.Sprint("Failed to delete note."))
		return nil
	}
	l.println(ui.Success.Sprint("Note deleted successfully."))
	return nil
}

// showNumbered prints the note with 1-based line numbers and returns the
// line count.
func (l *Loop) showNumbered(ctx context.Context, filename string) (int, error) {
	result, err := workflows.ViewNote(ctx, l.env, workflows.ViewNoteOptions{Filename: filename, Quiet: true})
	if err != nil {
		return 0, err
	}
	l.println("")
	l.println(ui.Heading.Sprint("--- Note Content ---"))
	for i, line := range result.Lines {
		l.println(fmt.Sprintf("%s %s", ui.Muted.Sprintf("%d:", i+1), line))
	}
	return len(result.Lines), nil
}

// askLineNumber reads a line number and checks it against count.
func (l *Loop) askLineNumber(question string, count int) (int, bool, error) {
	input, err := l.prompt(question)
	if err != nil {
		return 0, false, err
	}
	index, err := notes.ParseLineNumber(input)
	if err != nil || index < 1 || index > count {
		l.println(ui.Error.Sprint("Invalid line number."))
		return 0, false, nil
	}
	return index, true, nil
}

func deleteLine(ctx context.Context, l *Loop) error {
	filename, ok, err := l.chooseFile(ctx)
	if err != nil || !ok {
		return err
	}

	count, err := l.showNumbered(ctx, filename)
	if err != nil {
		if isContextErr(err) {
			return err
		}
		l.log.Debugf("Delete line in %s: %v", filename, err)
		l.println(ui.Error.Sprint("Error deleting line."))
		return nil
	}

	index, ok, err := l.askLineNumber("Enter line number to delete: ", count)
	if err != nil || !ok {
		return err
	}

	err = workflows.DeleteLine(ctx, l.env, workflows.DeleteLineOptions{Filename: filename, Line: index})
	switch {
	case err == nil:
		l.println(ui.Success.Sprint("Line deleted successfully!"))
	case isContextErr(err):
		return err
	case errors.Is(err, nerrors.ErrInvalidLineNumber):
		l.println(ui.Error.Sprint("Invalid line number."))
	default:
		l.log.Debugf("Delete line %d in %s: %v", index, filename, err)
		l.println(ui.Error.Sprint("Error deleting line."))
	}
	return nil
}

func editLine(ctx context.Context, l *Loop) error {
	filename, ok, err := l.chooseFile(ctx)
	if err != nil || !ok {
		return err
	}

	count, err := l.showNumbered(ctx, filename)
	if err != nil {
		if isContextErr(err) {
			return err
		}
		l.log.Debugf("Edit line in %s: %v", filename, err)
		l.println(ui.Error.Sprint("Error editing line."))
		return nil
	}

	index, ok, err := l.askLineNumber("Enter line number to edit: ", count)
	if err != nil || !ok {
		return err
	}
	text, err := l.prompt("Enter new text: ")
	if err != nil {
		return err
	}

	err = workflows.EditLine(ctx, l.env, workflows.EditLineOptions{Filename: filename, Line: index, Text: text})
	switch {
	case err == nil:
		l.println(ui.Success.Sprint("Line updated successfully!"))
	case isContextErr(err):
		return err
	case errors.Is(err, nerrors.ErrInvalidLineNumber):
		l.println(ui.Error.Sprint("Invalid line number."))
	default:
		l.log.Debugf("Edit line %d in %s: %v", index, filename, err)
		l.println(ui.Error.Sprint("Error editing line."))
	}
	return nil
}

func changePassword(ctx context.Context, l *Loop) error {
	oldPassword, err := l.readPassword("Enter old password: ")
	if err != nil {
		return err
	}
	if ok, err := l.passwordError(workflows.VerifyOldPassword(ctx, l.env, oldPassword)); !ok {
		return err
	}

	newPassword, err := l.readPassword("Enter new password: ")
	if err != nil {
		return err
	}
	opts := workflows.ChangePasswordOptions{OldPassword: oldPassword, NewPassword: newPassword}
	if ok, err := l.passwordError(workflows.ChangePassword(ctx, l.env, opts)); !ok {
		return err
	}
	l.println(ui.Success.Sprint("Password changed successfully!"))
	return nil
}

// passwordError reports a change-password failure. ok is true when err is
// nil; the returned error is set only when the loop must stop.
func (l *Loop) passwordError(err error) (ok bool, stop error) {
	switch {
	case err == nil:
		return true, nil
	case isContextErr(err):
		return false, err
	case errors.Is(err, nerrors.ErrOldPasswordIncorrect):
		l.println(ui.Error.Sprint("Old password incorrect!"))
	case errors.Is(err, nerrors.ErrCredentialUnreadable):
		l.log.Debugf("Change password: %v", err)
		l.println(ui.Error.Sprint("Error reading password file."))
	default:
		l.log.Debugf("Change password: %v", err)
		l.println(ui.Error.Sprint("Error saving password."))
	}
	return false, nil
}
