// Package theory holds the fixed key spellings drawn on the wheel and the
// small amount of pitch arithmetic needed to check them.
package theory

import "strings"

// Scale is the seven spelled degrees of a diatonic major scale, tonic first.
type Scale [7]string

// keys is indexed by the tonic's pitch class. Arrays are copied on return,
// so the table cannot be mutated through the exported accessors.
var keys = [12]Scale{
	{"A", "B", "C♯", "D", "E", "F♯", "G♯"},
	{"B♭", "C", "D", "E♭", "F", "G", "A"},
	{"B", "C♯", "D♯", "E", "F♯", "G♯", "A♯"},
	{"C", "D", "E", "F", "G", "A", "B"},
	{"D♭", "E♭", "F", "G♭", "A♭", "B♭", "C"},
	{"D", "E", "F♯", "G", "A", "B", "C♯"},
	{"E♭", "F", "G", "A♭", "B♭", "C", "D"},
	{"E", "F♯", "G♯", "A", "B", "C♯", "D♯"},
	{"F", "G", "A", "B♭", "C", "D", "E"},
	{"G♭", "A♭", "B♭", "C♭", "D♭", "E♭", "F"},
	{"G", "A", "B", "C", "D", "E", "F♯"},
	{"A♭", "B♭", "C", "D♭", "E♭", "F", "G"},
}

// KeyCount is the number of keys in the table.
const KeyCount = len(keys)

// Key returns the scale whose tonic has pitch class k. k is reduced mod 12.
func Key(k int) Scale {
	return keys[mod12(k)]
}

// KeyIndex maps a wheel column to a key index. Adjacent columns are a
// fifth (seven semitones) apart.
func KeyIndex(column int) int {
	return mod12(column * 7)
}

// KeyForColumn returns the scale drawn in the given wheel column.
func KeyForColumn(column int) Scale {
	return Key(KeyIndex(column))
}

// Accidentals selects how sharps and flats are written.
type Accidentals int

const (
	Unicode Accidentals = iota // ♯ ♭
	ASCII                      // # b
)

func ParseAccidentals(s string) (Accidentals, bool) {
	switch s {
	case "unicode":
		return Unicode, true
	case "ascii":
		return ASCII, true
	}
	return Unicode, false
}

var asciiReplacer = strings.NewReplacer("♯", "#", "♭", "b")

// Spell rewrites a note name in the requested accidental style.
func Spell(name string, style Accidentals) string {
	if style == ASCII {
		return asciiReplacer.Replace(name)
	}
	return name
}

func mod12(n int) int {
	n %= 12
	if n < 0 {
		n += 12
	}
	return n
}
