// Package utils provides small helpers shared by the noted packages.
//
// # Filesystem Utilities
//
//   - DirExists, FileExists: existence checks used by doctor
//   - FormatPaths: formats file paths for human-readable output
//
// # Terminal Utilities
//
//   - IsTerminal: checks if a file is a terminal
//   - ReadPassphrase: reads a password without echo
//   - TrimLineEnding: strips the line terminator from console input
package utils
