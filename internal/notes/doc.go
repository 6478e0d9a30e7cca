// Package notes stores notes as line-oriented files in a single directory.
//
// Each note is one file named <name><suffix>. Every logical line of the note
// is stored as one obfuscated line followed by a newline, so the number of
// lines in the file always equals the number of lines in the note. Text that
// contains a line break, or would contain one once obfuscated, is rejected.
//
// # Operations
//
//   - ListNoteNames: files in the directory ending with the suffix, sorted
//   - AppendLine: create-or-append one line to <name><suffix>
//   - ReadLines / ReadAndDecode: the stored or decoded lines of a note
//   - ReplaceAllLines: overwrite a note with the given stored lines
//   - DeleteNote, DeleteLineAt, EditLineAt: remove or change notes and lines
//
// Line numbers are 1-based, matching what the user is shown. Rewrites are
// plain truncate-and-write; a crash mid-write can leave a partial file.
//
// There is no locking. Only one process may use a directory at a time.
package notes
