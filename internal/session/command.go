package session

import (
	"strconv"
	"strings"

	nerrors "github.com/PolarWolf314/noted/internal/errors"
)

// Command is a menu option.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandView
	CommandDelete
	CommandDeleteLine
	CommandEditLine
	CommandChangePassword
	CommandExit
)

// Commands lists the menu options in display order.
var Commands = []Command{
	CommandAdd,
	CommandView,
	CommandDelete,
	CommandDeleteLine,
	CommandEditLine,
	CommandChangePassword,
	CommandExit,
}

// ParseCommand parses a menu choice as typed by the user.
func ParseCommand(input string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, nerrors.ErrInvalidOption
	}
	cmd := Command(n)
	if cmd < CommandAdd || cmd > CommandExit {
		return 0, nerrors.ErrInvalidOption
	}
	return cmd, nil
}

// String returns the menu label of c.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "Add Note"
	case CommandView:
		return "View Note"
	case CommandDelete:
		return "Delete Note"
	case CommandDeleteLine:
		return "Delete Line in Note"
	case CommandEditLine:
		return "Edit Line in Note"
	case CommandChangePassword:
		return "Change Password"
	case CommandExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Gated reports whether c asks for the password before running.
func (c Command) Gated() bool {
	switch c {
	case CommandView, CommandDelete, CommandDeleteLine, CommandEditLine, CommandChangePassword:
		return true
	default:
		return false
	}
}
