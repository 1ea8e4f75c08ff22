// Package notation holds the immutable score document model: durational
// events (notes, rests, chords), markings connecting notes, and the
// measure/staff/part/score structure. Every type is built once from
// defensively copied inputs and never mutated afterwards, so concurrent
// reads need no synchronization.
package notation

import (
	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/pitch"
)

// Durational is the closed capability surface shared by *Note, Rest and
// *Chord. Algorithms that need the concrete variant type-switch on it.
type Durational interface {
	// Duration returns the length of the element.
	Duration() duration.Duration
	// IsRest reports whether the element produces no sound.
	IsRest() bool
}

// PitchesOf returns the sounding pitches of an event: none for a rest,
// one for a note, all constituents in ascending order for a chord.
func PitchesOf(d Durational) []pitch.Pitch {
	switch e := d.(type) {
	case *Note:
		return []pitch.Pitch{e.Pitch()}
	case *Chord:
		return e.Pitches()
	default:
		return nil
	}
}

// PitchCountOf returns the number of simultaneous sounding pitches of an
// event. Monophonic contexts reject anything above one.
func PitchCountOf(d Durational) int {
	switch e := d.(type) {
	case *Note:
		return 1
	case *Chord:
		return e.Count()
	default:
		return 0
	}
}
