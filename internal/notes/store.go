package notes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/PolarWolf314/noted/internal/cipher"
	nerrors "github.com/PolarWolf314/noted/internal/errors"
)

// Store manages the note files in one directory.
type Store struct {
	dir    string
	suffix string
	cipher cipher.Cipher
}

// NewStore returns a Store for the notes in dir whose names end with suffix.
func NewStore(dir, suffix string, c cipher.Cipher) *Store {
	return &Store{dir: dir, suffix: suffix, cipher: c}
}

// Dir returns the notes directory.
func (s *Store) Dir() string {
	return s.dir
}

// Suffix returns the note file suffix.
func (s *Store) Suffix() string {
	return s.suffix
}

// ListNoteNames returns the note file names, sorted. A missing or unreadable
// directory yields an empty list.
func (s *Store) ListNoteNames() []string {
	matches, err := doublestar.Glob(os.DirFS(s.dir), "*"+s.suffix, doublestar.WithFilesOnly())
	if err != nil || len(matches) == 0 {
		return []string{}
	}
	sort.Strings(matches)
	return matches
}

// AppendLine adds line to the end of the note called name, creating
// <name><suffix> when it does not exist yet.
func (s *Store) AppendLine(name, line string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", nerrors.ErrInvalidNoteName)
	}
	filename := name + s.suffix
	path, err := s.path(filename)
	if err != nil {
		return err
	}
	encoded, err := s.encodeLine(line)
	if err != nil {
		return err
	}

	// #nosec G302 G304 -- path is confined to the notes directory by s.path.
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open note %s: %w", filename, err)
	}
	defer file.Close()

	if _, err := file.WriteString(encoded + "\n"); err != nil {
		return fmt.Errorf("failed to write note %s: %w", filename, err)
	}
	return nil
}

// ReadLines returns the stored, still obfuscated, lines of filename.
func (s *Store) ReadLines(filename string) ([]string, error) {
	path, err := s.path(filename)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- path is confined to the notes directory by s.path.
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", nerrors.ErrNoteNotFound, filename)
		}
		return nil, fmt.Errorf("failed to open note %s: %w", filename, err)
	}
	defer file.Close()

	lines := []string{}
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read note %s: %w", filename, err)
		}
	}
}

// ReadAndDecode returns the lines of filename as the user wrote them.
func (s *Store) ReadAndDecode(filename string) ([]string, error) {
	lines, err := s.ReadLines(filename)
	if err != nil {
		return nil, err
	}
	decoded := make([]string, len(lines))
	for i, line := range lines {
		decoded[i] = s.cipher.Decode(line)
	}
	return decoded, nil
}

// ReplaceAllLines overwrites filename with lines, which must already be
// obfuscated. The write is not atomic.
func (s *Store) ReplaceAllLines(filename string, lines []string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if strings.ContainsAny(line, "\r\n") {
			return nerrors.ErrInvalidLine
		}
	}

	// #nosec G304 -- path is confined to the notes directory by s.path.
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open note %s: %w", filename, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write note %s: %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write note %s: %w", filename, err)
	}
	return nil
}

// DeleteNote removes filename and reports whether it was removed.
func (s *Store) DeleteNote(filename string) bool {
	path, err := s.path(filename)
	if err != nil {
		return false
	}
	return os.Remove(path) == nil
}

// DeleteLineAt removes line index (1-based) from filename. An index outside
// the note leaves the file untouched and returns ErrInvalidLineNumber.
func (s *Store) DeleteLineAt(filename string, index int) error {
	lines, err := s.ReadLines(filename)
	if err != nil {
		return err
	}
	if index < 1 || index > len(lines) {
		return nerrors.ErrInvalidLineNumber
	}
	lines = append(lines[:index-1], lines[index:]...)
	return s.ReplaceAllLines(filename, lines)
}

// EditLineAt replaces line index (1-based) of filename with newText.
func (s *Store) EditLineAt(filename string, index int, newText string) error {
	lines, err := s.ReadLines(filename)
	if err != nil {
		return err
	}
	if index < 1 || index > len(lines) {
		return nerrors.ErrInvalidLineNumber
	}
	encoded, err := s.encodeLine(newText)
	if err != nil {
		return err
	}
	lines[index-1] = encoded
	return s.ReplaceAllLines(filename, lines)
}

// ChooseFile returns the candidate picked by a 1-based selection as typed by
// the user. Anything that is not a number in range is ErrNoteNotSelected.
func ChooseFile(candidates []string, selection string) (string, error) {
	index, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil {
		return "", nerrors.ErrNoteNotSelected
	}
	if index < 1 || index > len(candidates) {
		return "", nerrors.ErrNoteNotSelected
	}
	return candidates[index-1], nil
}

// ParseLineNumber parses a 1-based line number typed by the user.
func ParseLineNumber(input string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, nerrors.ErrInvalidLineNumber
	}
	return index, nil
}

func (s *Store) encodeLine(text string) (string, error) {
	encoded := s.cipher.Encode(text)
	if strings.ContainsAny(text, "\r\n") || strings.ContainsAny(encoded, "\r\n") {
		return "", nerrors.ErrInvalidLine
	}
	return encoded, nil
}

// path resolves filename inside the notes directory, rejecting names that
// are empty or would reach outside it.
func (s *Store) path(filename string) (string, error) {
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, filename), nil
}

// ValidateFilename rejects names that are empty, contain a path separator or
// NUL, or are a relative directory reference.
func ValidateFilename(filename string) error {
	switch {
	case strings.TrimSpace(filename) == "",
		filename == ".", filename == "..",
		strings.ContainsAny(filename, `/\`+"\x00"):
		return fmt.Errorf("%w: %q", nerrors.ErrInvalidNoteName, filename)
	}
	return nil
}
