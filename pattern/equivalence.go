package pattern

import (
	"github.com/tmakinen/partwise/notation"
	"github.com/tmakinen/partwise/pitch"
)

// The four equivalence predicates are symmetric and reflexive. Every one
// of them requires the same voice-number set before comparing content; a
// structural mismatch anywhere is "not equivalent", reported as false,
// never as an error.
//
// For the pitch-based predicates rests are transparent: the per-voice
// sequences of sounding pitches are compared, so rest subdivisions that
// sum to compatible gaps do not matter. Chords contribute all of their
// constituent pitches in their stored ascending order, matched slot by
// slot against the other pattern's chord at the same position.

// Equals reports exact structural equality: same voice shape and
// event-by-event equality including durations, rests, pitch spelling and
// marking graph shape. Name and labels are not compared.
func (p *Pattern) Equals(o *Pattern) bool {
	if p == o {
		return true
	}
	if o == nil || !sameVoiceNumbers(p, o) {
		return false
	}
	for _, num := range p.voiceNumbers {
		a, b := p.voices[num], o.voices[num]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !notation.Equal(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}

// EqualsInPitch reports whether both patterns sound the same pitches with
// the same spelling, ignoring durations and rests.
func (p *Pattern) EqualsInPitch(o *Pattern) bool {
	return p.pitchEquals(o, func(a, b pitch.Pitch) bool { return a.Equal(b) })
}

// EqualsEnharmonically reports whether both patterns sound the same
// pitches regardless of spelling: C#4 at some position matches Db4.
func (p *Pattern) EqualsEnharmonically(o *Pattern) bool {
	return p.pitchEquals(o, func(a, b pitch.Pitch) bool { return a.EqualsEnharmonically(b) })
}

// EqualsTranspositionally reports whether a single constant semitone
// offset, applied to every sounding pitch of p, reproduces o. The offset
// is discovered from the first sounding pitch pair and verified against
// every subsequent pair; spelling is not compared.
func (p *Pattern) EqualsTranspositionally(o *Pattern) bool {
	if p == o {
		return true
	}
	if o == nil || !sameVoiceNumbers(p, o) {
		return false
	}
	offset := 0
	offsetKnown := false
	for _, num := range p.voiceNumbers {
		a := soundingPitches(p.voices[num])
		b := soundingPitches(o.voices[num])
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			diff := b[i].Number() - a[i].Number()
			if !offsetKnown {
				offset = diff
				offsetKnown = true
				continue
			}
			if diff != offset {
				return false
			}
		}
	}
	return true
}

func (p *Pattern) pitchEquals(o *Pattern, eq func(a, b pitch.Pitch) bool) bool {
	if p == o {
		return true
	}
	if o == nil || !sameVoiceNumbers(p, o) {
		return false
	}
	for _, num := range p.voiceNumbers {
		a := soundingPitches(p.voices[num])
		b := soundingPitches(o.voices[num])
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !eq(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}

func sameVoiceNumbers(p, o *Pattern) bool {
	if len(p.voiceNumbers) != len(o.voiceNumbers) {
		return false
	}
	for i := range p.voiceNumbers {
		if p.voiceNumbers[i] != o.voiceNumbers[i] {
			return false
		}
	}
	return true
}

// soundingPitches flattens a voice into its ordered sequence of sounding
// pitches, dropping rests and expanding chords in their stored order.
func soundingPitches(voice []notation.Durational) []pitch.Pitch {
	var out []pitch.Pitch
	for _, d := range voice {
		out = append(out, notation.PitchesOf(d)...)
	}
	return out
}
