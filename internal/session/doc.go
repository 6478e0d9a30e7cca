// Package session runs noted's interactive menu.
//
// A Loop reads one line per prompt from its input, prints the menu and the
// result of each operation to its output, and owns the credentials.Session
// that gated operations unlock. The messages it prints are fixed text so
// that scripted use and tests can match them exactly; colour is added only
// when the output is a terminal and NO_COLOR is unset.
//
// The loop ends on the Exit option or at end of input. A read error other
// than io.EOF or a cancelled context ends it with an error.
package session
