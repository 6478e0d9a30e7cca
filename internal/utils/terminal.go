package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadPassphrase prompts on out and reads a line from f without echoing it.
// Returns an error if f is not a terminal.
func ReadPassphrase(f *os.File, out io.Writer, prompt string) (string, error) {
	fd := int(f.Fd())

	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot read passphrase: input is not a terminal")
	}

	fmt.Fprint(out, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(out) // Add newline after hidden input

	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}

	return string(passphrase), nil
}
