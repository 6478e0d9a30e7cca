package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/noted/internal/cipher"
	nerrors "github.com/PolarWolf314/noted/internal/errors"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), ".txt", cipher.Default)
}

func seedNote(t *testing.T, s *Store, name string, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, s.AppendLine(name, line))
	}
	return name + s.Suffix()
}

func TestNoteLifecycle(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.AppendLine("a", "hello"))
	lines, err := s.ReadAndDecode("a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, lines)

	require.NoError(t, s.AppendLine("a", "world"))
	lines, err = s.ReadAndDecode("a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lines)
}

func TestAppendLineStoresObfuscatedLines(t *testing.T) {
	s := tempStore(t)
	seedNote(t, s, "diary", "day one", "abc")

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "diary.txt"))
	require.NoError(t, err)
	assert.Equal(t, "gd|#rqh\ndef\n", string(raw))

	stored, err := s.ReadLines("diary.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"gd|#rqh", "def"}, stored)
}

func TestAppendLineValidation(t *testing.T) {
	s := tempStore(t)

	tests := []struct {
		name    string
		note    string
		line    string
		wantErr error
	}{
		{"EmptyName", "", "text", nerrors.ErrInvalidNoteName},
		{"BlankName", "   ", "text", nerrors.ErrInvalidNoteName},
		{"Traversal", "../escape", "text", nerrors.ErrInvalidNoteName},
		{"NestedPath", "sub/note", "text", nerrors.ErrInvalidNoteName},
		{"Newline", "note", "two\nlines", nerrors.ErrInvalidLine},
		{"CarriageReturn", "note", "two\rlines", nerrors.ErrInvalidLine},
		{"EncodesToNewline", "note", "bell\a", nerrors.ErrInvalidLine},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.AppendLine(tc.note, tc.line)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Empty(t, s.ListNoteNames())
}

func TestAppendLineToMissingDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing"), ".txt", cipher.Default)
	assert.Error(t, s.AppendLine("a", "hello"))
}

func TestAppendEmptyLine(t *testing.T) {
	s := tempStore(t)
	seedNote(t, s, "blank", "", "after")

	lines, err := s.ReadAndDecode("blank.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "after"}, lines)
}

func TestListNoteNames(t *testing.T) {
	s := tempStore(t)

	assert.Empty(t, s.ListNoteNames())

	seedNote(t, s, "zeta", "z")
	seedNote(t, s, "alpha", "a")
	seedNote(t, s, "mid", "m")
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "readme.md"), []byte("x"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "folder.txt"), 0700))

	first := s.ListNoteNames()
	assert.Equal(t, []string{"alpha.txt", "mid.txt", "zeta.txt"}, first)

	second := s.ListNoteNames()
	assert.Equal(t, first, second)
}

func TestListNoteNamesMissingDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope"), ".txt", cipher.Default)
	names := s.ListNoteNames()
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestReadLinesMissingNote(t *testing.T) {
	s := tempStore(t)

	_, err := s.ReadLines("ghost.txt")
	assert.ErrorIs(t, err, nerrors.ErrNoteNotFound)

	_, err = s.ReadAndDecode("ghost.txt")
	assert.ErrorIs(t, err, nerrors.ErrNoteNotFound)
}

func TestReadLinesEmptyNote(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "empty.txt"), nil, 0600))

	lines, err := s.ReadAndDecode("empty.txt")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReplaceAllLines(t *testing.T) {
	s := tempStore(t)
	filename := seedNote(t, s, "a", "one", "two", "three")

	require.NoError(t, s.ReplaceAllLines(filename, []string{cipher.Encode("only")}))

	lines, err := s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, lines)

	assert.ErrorIs(t, s.ReplaceAllLines(filename, []string{"bad\nline"}), nerrors.ErrInvalidLine)
	lines, err = s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, lines)
}

func TestDeleteNote(t *testing.T) {
	s := tempStore(t)
	filename := seedNote(t, s, "gone", "bye")

	assert.True(t, s.DeleteNote(filename))
	assert.Empty(t, s.ListNoteNames())
	assert.False(t, s.DeleteNote(filename))
	assert.False(t, s.DeleteNote("../outside.txt"))
}

func TestDeleteLineAtBounds(t *testing.T) {
	s := tempStore(t)
	filename := seedNote(t, s, "a", "first", "second", "third")
	path := filepath.Join(s.Dir(), filename)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, index := range []int{0, -1, 4} {
		err := s.DeleteLineAt(filename, index)
		assert.ErrorIs(t, err, nerrors.ErrInvalidLineNumber, "index %d", index)
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, s.DeleteLineAt(filename, 1))
	lines, err := s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third"}, lines)
}

func TestDeleteLastRemainingLine(t *testing.T) {
	s := tempStore(t)
	filename := seedNote(t, s, "diary", "day one")

	require.NoError(t, s.DeleteLineAt(filename, 1))

	lines, err := s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, []string{filename}, s.ListNoteNames())
}

func TestDeleteLineAtMissingNote(t *testing.T) {
	s := tempStore(t)
	assert.ErrorIs(t, s.DeleteLineAt("ghost.txt", 1), nerrors.ErrNoteNotFound)
}

func TestEditLineAt(t *testing.T) {
	s := tempStore(t)
	filename := seedNote(t, s, "a", "one", "two", "three")

	before, err := s.ReadLines(filename)
	require.NoError(t, err)

	require.NoError(t, s.EditLineAt(filename, 2, "new"))

	after, err := s.ReadLines(filename)
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])

	decoded, err := s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "new", "three"}, decoded)
}

func TestEditLineAtValidation(t *testing.T) {
	s := tempStore(t)
	filename := seedNote(t, s, "a", "one")

	assert.ErrorIs(t, s.EditLineAt(filename, 0, "x"), nerrors.ErrInvalidLineNumber)
	assert.ErrorIs(t, s.EditLineAt(filename, 2, "x"), nerrors.ErrInvalidLineNumber)
	assert.ErrorIs(t, s.EditLineAt(filename, 1, "x\ny"), nerrors.ErrInvalidLine)

	lines, err := s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, lines)
}

func TestChooseFile(t *testing.T) {
	candidates := []string{"a.txt", "b.txt", "c.txt"}

	tests := []struct {
		name      string
		selection string
		want      string
		wantErr   bool
	}{
		{"First", "1", "a.txt", false},
		{"Last", "3", "c.txt", false},
		{"Whitespace", " 2 ", "b.txt", false},
		{"Zero", "0", "", true},
		{"TooLarge", "4", "", true},
		{"Negative", "-1", "", true},
		{"NonNumeric", "two", "", true},
		{"Empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ChooseFile(candidates, tc.selection)
			if tc.wantErr {
				assert.ErrorIs(t, err, nerrors.ErrNoteNotSelected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ChooseFile(nil, "1")
	assert.ErrorIs(t, err, nerrors.ErrNoteNotSelected)
}

func TestParseLineNumber(t *testing.T) {
	n, err := ParseLineNumber(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseLineNumber("twelve")
	assert.ErrorIs(t, err, nerrors.ErrInvalidLineNumber)
}

func TestCustomShiftAndSuffix(t *testing.T) {
	s := NewStore(t.TempDir(), ".note", cipher.Cipher{Shift: 1})
	require.NoError(t, s.AppendLine("todo", "abc"))

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "todo.note"))
	require.NoError(t, err)
	assert.Equal(t, "bcd\n", string(raw))
	assert.Equal(t, []string{"todo.note"}, s.ListNoteNames())
}

func TestLongLinesRoundTrip(t *testing.T) {
	s := tempStore(t)
	long := strings.Repeat("a", 2*1024*1024)
	filename := seedNote(t, s, "big", long, "short")

	lines, err := s.ReadAndDecode(filename)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])

	require.NoError(t, s.EditLineAt(filename, 2, long))
	require.NoError(t, s.DeleteLineAt(filename, 1))
	lines, err = s.ReadAndDecode(filename)
	require.NoError(t, err)
	assert.Equal(t, []string{long}, lines)
}

func TestReadLinesStripsCarriageReturns(t *testing.T) {
	s := tempStore(t)
	raw := cipher.Encode("one") + "\r\n" + cipher.Encode("two")
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "crlf.txt"), []byte(raw), 0600))

	lines, err := s.ReadAndDecode("crlf.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	require.NoError(t, s.DeleteLineAt("crlf.txt", 1))
	lines, err = s.ReadAndDecode("crlf.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, lines)
}
