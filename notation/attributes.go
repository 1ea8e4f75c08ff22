package notation

import (
	"fmt"
	"sort"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
)

// TimeSignature is the notated meter of a measure. It is informative
// only: voice contents are not checked against it.
type TimeSignature struct {
	beats     int
	beatValue int
}

// NewTimeSignature returns a time signature with the given beat count and
// beat value, e.g. 6 and 8 for six-eight time.
func NewTimeSignature(beats, beatValue int) (TimeSignature, error) {
	if beats <= 0 || beatValue <= 0 {
		return TimeSignature{}, fmt.Errorf("%w: time signature %d/%d must be positive",
			errs.ErrInvalidArgument, beats, beatValue)
	}
	return TimeSignature{beats: beats, beatValue: beatValue}, nil
}

// Common time signatures.
var (
	FourFour  = TimeSignature{beats: 4, beatValue: 4}
	ThreeFour = TimeSignature{beats: 3, beatValue: 4}
	TwoFour   = TimeSignature{beats: 2, beatValue: 4}
	SixEight  = TimeSignature{beats: 6, beatValue: 8}
)

// Beats returns the number of beats per measure.
func (t TimeSignature) Beats() int { return t.beats }

// BeatValue returns the note value of one beat as a denominator.
func (t TimeSignature) BeatValue() int { return t.beatValue }

func (t TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", t.beats, t.beatValue)
}

// KeySignature is the notated key as a count of sharps (positive) or
// flats (negative).
type KeySignature struct {
	sharps int
}

// NewKeySignature returns a key signature with the given count of sharps;
// pass a negative count for flats.
func NewKeySignature(sharps int) (KeySignature, error) {
	if sharps < -7 || sharps > 7 {
		return KeySignature{}, fmt.Errorf("%w: key signature with %d sharps", errs.ErrInvalidArgument, sharps)
	}
	return KeySignature{sharps: sharps}, nil
}

// Common key signatures.
var (
	CMajor = KeySignature{sharps: 0}
	GMajor = KeySignature{sharps: 1}
	DMajor = KeySignature{sharps: 2}
	FMajor = KeySignature{sharps: -1}
	BFlat  = KeySignature{sharps: -2}
)

// Sharps returns the sharp count, negative for flats.
func (k KeySignature) Sharps() int { return k.sharps }

// ClefSign is the symbol of a clef.
type ClefSign int

const (
	GClef ClefSign = iota
	FClef
	CClef
	PercussionClef
)

// Clef positions a clef sign on a staff line.
type Clef struct {
	sign ClefSign
	line int
}

// Common clefs.
var (
	TrebleClef = Clef{sign: GClef, line: 2}
	BassClef   = Clef{sign: FClef, line: 4}
	AltoClef   = Clef{sign: CClef, line: 3}
)

// NewClef returns a clef with the given sign on the given staff line.
func NewClef(sign ClefSign, line int) (Clef, error) {
	if line < 1 || line > 5 {
		return Clef{}, fmt.Errorf("%w: clef line %d out of range 1..5", errs.ErrInvalidArgument, line)
	}
	return Clef{sign: sign, line: line}, nil
}

// Sign returns the clef symbol.
func (c Clef) Sign() ClefSign { return c.sign }

// Line returns the staff line the clef sits on.
func (c Clef) Line() int { return c.line }

// Barline is a barline style on either side of a measure.
type Barline int

const (
	BarlineNone Barline = iota
	BarlineSingle
	BarlineDouble
	BarlineFinal
	BarlineRepeatBegin
	BarlineRepeatEnd
)

// ClefChange is a mid-measure clef switch at an offset from the measure
// start.
type ClefChange struct {
	Offset duration.Duration
	Clef   Clef
}

// MeasureAttributes bundles the notational context of a measure: meter,
// key, clef in effect at the start, mid-measure clef changes and the
// barlines. The value is immutable; the With methods return modified
// copies.
type MeasureAttributes struct {
	timeSig     TimeSignature
	keySig      KeySignature
	clef        Clef
	clefChanges map[duration.Duration]Clef
	leftBarline Barline
	rightBar    Barline
}

// NewMeasureAttributes returns attributes with no left barline and a
// single right barline.
func NewMeasureAttributes(timeSig TimeSignature, keySig KeySignature, clef Clef) MeasureAttributes {
	return MeasureAttributes{
		timeSig:     timeSig,
		keySig:      keySig,
		clef:        clef,
		leftBarline: BarlineNone,
		rightBar:    BarlineSingle,
	}
}

// WithLeftBarline returns a copy with the given left barline.
func (a MeasureAttributes) WithLeftBarline(b Barline) MeasureAttributes {
	a.leftBarline = b
	return a
}

// WithRightBarline returns a copy with the given right barline.
func (a MeasureAttributes) WithRightBarline(b Barline) MeasureAttributes {
	a.rightBar = b
	return a
}

// WithClefChange returns a copy with an additional clef change at the
// given offset from the measure start.
func (a MeasureAttributes) WithClefChange(offset duration.Duration, c Clef) MeasureAttributes {
	changes := make(map[duration.Duration]Clef, len(a.clefChanges)+1)
	for k, v := range a.clefChanges {
		changes[k] = v
	}
	changes[offset] = c
	a.clefChanges = changes
	return a
}

// TimeSignature returns the meter in effect in the measure.
func (a MeasureAttributes) TimeSignature() TimeSignature { return a.timeSig }

// KeySignature returns the key in effect in the measure.
func (a MeasureAttributes) KeySignature() KeySignature { return a.keySig }

// Clef returns the clef in effect at the start of the measure.
func (a MeasureAttributes) Clef() Clef { return a.clef }

// LeftBarline returns the barline on the left side of the measure.
func (a MeasureAttributes) LeftBarline() Barline { return a.leftBarline }

// RightBarline returns the barline on the right side of the measure.
func (a MeasureAttributes) RightBarline() Barline { return a.rightBar }

// ContainsClefChanges reports whether any mid-measure clef change exists.
func (a MeasureAttributes) ContainsClefChanges() bool { return len(a.clefChanges) > 0 }

// ClefChanges returns the mid-measure clef changes ordered by offset.
func (a MeasureAttributes) ClefChanges() []ClefChange {
	if len(a.clefChanges) == 0 {
		return nil
	}
	out := make([]ClefChange, 0, len(a.clefChanges))
	for off, c := range a.clefChanges {
		out = append(out, ClefChange{Offset: off, Clef: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset.Cmp(out[j].Offset) < 0 })
	return out
}
