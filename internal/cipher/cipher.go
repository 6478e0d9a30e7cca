// Package cipher implements the reversible character shift applied to note
// lines and the stored password.
//
// This is obfuscation, not encryption. Anyone holding the files can undo it.
package cipher

import "strings"

// DefaultShift is the number of code points each character is moved by.
const DefaultShift = 3

const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
	maxRune      = 0x10FFFF

	// scalarCount is the number of valid Unicode scalar values.
	scalarCount = maxRune + 1 - surrogateLen
)

// Cipher shifts every code point of a string by Shift positions.
//
// The shift wraps around the Unicode scalar value range and skips the
// surrogate block, so every valid string round-trips. For text whose code
// points stay clear of U+D800 and U+10FFFF the output equals a plain
// code+Shift.
type Cipher struct {
	Shift int
}

// Default is the cipher used when no shift is configured.
var Default = Cipher{Shift: DefaultShift}

// Encode returns the obfuscated form of text.
func (c Cipher) Encode(text string) string {
	return c.apply(text, c.Shift)
}

// Decode reverses Encode.
func (c Cipher) Decode(text string) string {
	return c.apply(text, -c.Shift)
}

func (c Cipher) apply(text string, shift int) string {
	if shift == 0 || text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(shiftRune(r, shift))
	}
	return b.String()
}

func shiftRune(r rune, shift int) rune {
	i := toIndex(r)
	i = (i + shift%scalarCount + scalarCount) % scalarCount
	return fromIndex(i)
}

func toIndex(r rune) int {
	if r < surrogateMin {
		return int(r)
	}
	return int(r) - surrogateLen
}

func fromIndex(i int) rune {
	if i < surrogateMin {
		return rune(i)
	}
	return rune(i + surrogateLen)
}

// Encode obfuscates text with the default shift.
func Encode(text string) string {
	return Default.Encode(text)
}

// Decode reverses Encode with the default shift.
func Decode(text string) string {
	return Default.Decode(text)
}
