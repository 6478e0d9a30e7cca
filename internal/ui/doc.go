// Package ui provides semantic text formatting for CLI output.
//
// Formatters colour content by what it is (a prompt, a note name, a success
// message) rather than by colour name. When NO_COLOR is set or the terminal
// doesn't support colours, text is printed as-is, with backticks around Code
// and single quotes around Highlight.
//
//	ui.Prompt.Sprint("Enter password: ")
//	ui.Path.Sprint("diary.txt")
//	ui.Success.Sprint("Note saved successfully!")
//	ui.Error.Sprint("Wrong password!")
//
// Banner renders the session title as ASCII art when enabled in the config.
package ui
