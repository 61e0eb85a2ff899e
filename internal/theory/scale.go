package theory

import (
	"errors"
	"fmt"
)

var ErrInvalidNote = errors.New("invalid note name")

// PitchClass counts semitones above A, 0..11.
type PitchClass int

// Pattern is a list of semitone steps between consecutive scale degrees.
type Pattern []int

// MajorPattern builds the major (ionian) scale.
var MajorPattern = Pattern{2, 2, 1, 2, 2, 2}

var letterPitch = map[byte]PitchClass{
	'A': 0, 'B': 2, 'C': 3, 'D': 5, 'E': 7, 'F': 8, 'G': 10,
}

// BuildScale walks pattern from root and returns the visited pitch classes,
// root first.
func BuildScale(root PitchClass, pattern Pattern) []PitchClass {
	out := make([]PitchClass, 0, len(pattern)+1)
	p := PitchClass(mod12(int(root)))
	out = append(out, p)
	for _, step := range pattern {
		p = PitchClass(mod12(int(p) + step))
		out = append(out, p)
	}
	return out
}

// ParseNote reads a letter followed by any number of sharps or flats, in
// either unicode or ascii form.
func ParseNote(name string) (PitchClass, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	p, ok := letterPitch[name[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	n := int(p)
	for _, r := range name[1:] {
		switch r {
		case '♯', '#':
			n++
		case '♭', 'b':
			n--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
		}
	}
	return PitchClass(mod12(n)), nil
}
