// Package pitch provides an immutable pitch value with exact spelling
// (letter, alteration, octave) and enharmonic arithmetic on top of
// chromatic pitch numbers.
package pitch

import (
	"fmt"
	"strings"

	"github.com/tmakinen/partwise/errs"
)

// Base is the letter part of a pitch spelling.
type Base int

const (
	C Base = iota
	D
	E
	F
	G
	A
	B
)

// semitones above C for each base letter
var baseSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var baseNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

func (b Base) String() string {
	if b < C || b > B {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseNames[b]
}

const (
	// MinOctave and MaxOctave bound the representable range. Octave -1
	// keeps the full MIDI range reachable (number 0 is C-1).
	MinOctave = -1
	MaxOctave = 10

	// MaxAlter bounds chromatic alteration to double sharps/flats.
	MaxAlter = 2
)

// Pitch is an immutable pitch spelling. The zero value is C-1 sharp-free
// only by accident; construct through New or FromNumber.
type Pitch struct {
	base   Base
	alter  int
	octave int
}

// New returns the pitch with the given letter, chromatic alteration in
// semitones (negative for flats) and octave (octave 4 contains middle C).
func New(base Base, alter, octave int) (Pitch, error) {
	if base < C || base > B {
		return Pitch{}, fmt.Errorf("%w: unknown pitch base %d", errs.ErrInvalidArgument, int(base))
	}
	if alter < -MaxAlter || alter > MaxAlter {
		return Pitch{}, fmt.Errorf("%w: alteration %d out of range [%d, %d]",
			errs.ErrInvalidArgument, alter, -MaxAlter, MaxAlter)
	}
	if octave < MinOctave || octave > MaxOctave {
		return Pitch{}, fmt.Errorf("%w: octave %d out of range [%d, %d]",
			errs.ErrInvalidArgument, octave, MinOctave, MaxOctave)
	}
	return Pitch{base: base, alter: alter, octave: octave}, nil
}

// MustNew is New for statically known spellings, mainly tests and tables.
func MustNew(base Base, alter, octave int) Pitch {
	p, err := New(base, alter, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// FromNumber returns the sharp-based spelling of a chromatic pitch number,
// e.g. 61 becomes C#4. The number must fit the MIDI range 0..127.
func FromNumber(number int) (Pitch, error) {
	if number < 0 || number > 127 {
		return Pitch{}, fmt.Errorf("%w: pitch number %d out of range 0..127", errs.ErrInvalidArgument, number)
	}
	octave := number/12 - 1
	pc := number % 12
	for i, s := range baseSemitones {
		if s == pc {
			return Pitch{base: Base(i), octave: octave}, nil
		}
		if s == pc-1 {
			return Pitch{base: Base(i), alter: 1, octave: octave}, nil
		}
	}
	// unreachable: every pitch class is a base or base+1
	return Pitch{}, fmt.Errorf("%w: pitch number %d", errs.ErrInvalidArgument, number)
}

// Base returns the letter part of the spelling.
func (p Pitch) Base() Base { return p.base }

// Alter returns the chromatic alteration in semitones.
func (p Pitch) Alter() int { return p.alter }

// Octave returns the octave of the pitch.
func (p Pitch) Octave() int { return p.octave }

// Number returns the absolute chromatic pitch number, compatible with MIDI
// key numbers: C4 is 60, A4 is 69.
func (p Pitch) Number() int {
	return (p.octave+1)*12 + baseSemitones[p.base] + p.alter
}

// Class returns the chromatic pitch class 0..11 with C = 0.
func (p Pitch) Class() int {
	pc := (baseSemitones[p.base] + p.alter) % 12
	if pc < 0 {
		pc += 12
	}
	return pc
}

// Equal reports exact spelling equality: same letter, alteration and octave.
func (p Pitch) Equal(o Pitch) bool {
	return p == o
}

// EqualsEnharmonically reports whether both spellings denote the same
// sounding pitch, e.g. C#4 and Db4.
func (p Pitch) EqualsEnharmonically(o Pitch) bool {
	return p.Number() == o.Number()
}

// Cmp orders pitches by sounding height, breaking enharmonic ties by
// letter so that the order is total and deterministic.
func (p Pitch) Cmp(o Pitch) int {
	if n, m := p.Number(), o.Number(); n != m {
		if n < m {
			return -1
		}
		return 1
	}
	if p.base != o.base {
		if p.base < o.base {
			return -1
		}
		return 1
	}
	return 0
}

func (p Pitch) String() string {
	var sb strings.Builder
	sb.WriteString(p.base.String())
	for i := 0; i < p.alter; i++ {
		sb.WriteByte('#')
	}
	for i := 0; i > p.alter; i-- {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, "%d", p.octave)
	return sb.String()
}
