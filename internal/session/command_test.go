package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nerrors "github.com/PolarWolf314/noted/internal/errors"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{"1", CommandAdd, false},
		{" 4 ", CommandDeleteLine, false},
		{"7", CommandExit, false},
		{"0", 0, true},
		{"8", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"two", 0, true},
		{"1.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, nerrors.ErrInvalidOption)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandGated(t *testing.T) {
	gated := map[Command]bool{
		CommandAdd:            false,
		CommandView:           true,
		CommandDelete:         true,
		CommandDeleteLine:     true,
		CommandEditLine:       true,
		CommandChangePassword: true,
		CommandExit:           false,
	}
	for cmd, want := range gated {
		assert.Equal(t, want, cmd.Gated(), cmd.String())
	}
}

func TestEveryCommandHasHandler(t *testing.T) {
	for _, cmd := range Commands {
		if cmd == CommandExit {
			continue
		}
		assert.Contains(t, dispatch, cmd, cmd.String())
	}
	assert.Equal(t, "Unknown", Command(99).String())
}
