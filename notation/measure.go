package notation

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/util"
)

// Measure maps voice numbers to ordered event sequences and carries the
// measure-level attributes. Voice numbers are unique but need not be
// contiguous or start from any particular value. A measure with no
// voices is a full-measure rest. Measure number 0 is reserved for a
// pickup measure.
type Measure struct {
	number       int
	voiceNumbers []int
	voices       map[int][]Durational
	attr         MeasureAttributes
}

// NewMeasure returns a measure with the given number, voices and
// attributes. The voice map and its slices are defensively copied;
// mutating them afterwards does not affect the measure.
func NewMeasure(number int, voices map[int][]Durational, attr MeasureAttributes) (*Measure, error) {
	if number < 0 {
		return nil, fmt.Errorf("%w: measure number %d is negative", errs.ErrInvalidArgument, number)
	}
	m := &Measure{
		number:       number,
		voiceNumbers: util.SortedKeys(voices),
		voices:       make(map[int][]Durational, len(voices)),
		attr:         attr,
	}
	for num, voice := range voices {
		copied := make([]Durational, len(voice))
		copy(copied, voice)
		m.voices[num] = copied
	}
	return m, nil
}

// NewRestMeasure returns a full-measure rest: a measure with no voices.
func NewRestMeasure(number int, attr MeasureAttributes) (*Measure, error) {
	return NewMeasure(number, nil, attr)
}

// NewPickupMeasure returns a measure with number 0.
func NewPickupMeasure(voices map[int][]Durational, attr MeasureAttributes) (*Measure, error) {
	return NewMeasure(0, voices, attr)
}

// Number returns the measure number.
func (m *Measure) Number() int { return m.number }

// IsPickup reports whether this is the pickup measure.
func (m *Measure) IsPickup() bool { return m.number == 0 }

// IsFullMeasureRest reports whether the measure has no voices.
func (m *Measure) IsFullMeasureRest() bool { return len(m.voices) == 0 }

// VoiceNumbers returns the voice numbers present, in ascending order.
func (m *Measure) VoiceNumbers() []int {
	out := make([]int, len(m.voiceNumbers))
	copy(out, m.voiceNumbers)
	return out
}

// VoiceCount returns the number of voices in the measure.
func (m *Measure) VoiceCount() int { return len(m.voices) }

// IsSingleVoice reports whether the measure has exactly one voice.
func (m *Measure) IsSingleVoice() bool { return len(m.voices) == 1 }

// Voice returns the events of the voice with the given number.
func (m *Measure) Voice(voiceNumber int) ([]Durational, error) {
	voice, ok := m.voices[voiceNumber]
	if !ok {
		return nil, fmt.Errorf("%w: no voice %d in measure %d", errs.ErrNotFound, voiceNumber, m.number)
	}
	out := make([]Durational, len(voice))
	copy(out, voice)
	return out, nil
}

// VoiceSize returns the number of events in the given voice.
func (m *Measure) VoiceSize(voiceNumber int) (int, error) {
	voice, ok := m.voices[voiceNumber]
	if !ok {
		return 0, fmt.Errorf("%w: no voice %d in measure %d", errs.ErrNotFound, voiceNumber, m.number)
	}
	return len(voice), nil
}

// Get returns the event at the given index of the given voice.
func (m *Measure) Get(voiceNumber, index int) (Durational, error) {
	voice, ok := m.voices[voiceNumber]
	if !ok {
		return nil, fmt.Errorf("%w: no voice %d in measure %d", errs.ErrNotFound, voiceNumber, m.number)
	}
	if index < 0 || index >= len(voice) {
		return nil, fmt.Errorf("%w: index %d out of range in voice %d of measure %d",
			errs.ErrNotFound, index, voiceNumber, m.number)
	}
	return voice[index], nil
}

// TimeSignature returns the meter in effect in the measure.
func (m *Measure) TimeSignature() TimeSignature { return m.attr.TimeSignature() }

// KeySignature returns the key in effect in the measure.
func (m *Measure) KeySignature() KeySignature { return m.attr.KeySignature() }

// Clef returns the clef in effect at the start of the measure.
func (m *Measure) Clef() Clef { return m.attr.Clef() }

// ClefChanges returns the mid-measure clef changes ordered by offset.
func (m *Measure) ClefChanges() []ClefChange { return m.attr.ClefChanges() }

// ContainsClefChanges reports whether any mid-measure clef change exists.
func (m *Measure) ContainsClefChanges() bool { return m.attr.ContainsClefChanges() }

// LeftBarline returns the barline on the left side of the measure.
func (m *Measure) LeftBarline() Barline { return m.attr.LeftBarline() }

// RightBarline returns the barline on the right side of the measure.
func (m *Measure) RightBarline() Barline { return m.attr.RightBarline() }

// Attributes returns the measure attributes.
func (m *Measure) Attributes() MeasureAttributes { return m.attr }

// Iter returns a read-only iterator over the events of the measure. The
// iteration drains each voice fully before moving to the next, voices in
// ascending voice-number order. The order is fixed per measure instance.
func (m *Measure) Iter() *MeasureIter {
	return &MeasureIter{measure: m}
}

// MeasureIter iterates the events of one measure voice by voice. It
// additionally exposes the voice number and in-voice index of the event
// most recently returned by Next, which positional traversal needs for
// building global addresses. The iterator cannot remove anything.
type MeasureIter struct {
	measure   *Measure
	voiceIdx  int
	pos       int
	prevVoice int
	prevIndex int
}

// HasNext reports whether an event remains. It never fails.
func (it *MeasureIter) HasNext() bool {
	voiceIdx, pos := it.voiceIdx, it.pos
	for voiceIdx < len(it.measure.voiceNumbers) {
		voice := it.measure.voices[it.measure.voiceNumbers[voiceIdx]]
		if pos < len(voice) {
			return true
		}
		// skip drained and empty voices
		voiceIdx++
		pos = 0
	}
	return false
}

// Next returns the next event, or ErrNoSuchElement when the measure is
// exhausted.
func (it *MeasureIter) Next() (Durational, error) {
	for it.voiceIdx < len(it.measure.voiceNumbers) {
		voiceNumber := it.measure.voiceNumbers[it.voiceIdx]
		voice := it.measure.voices[voiceNumber]
		if it.pos < len(voice) {
			next := voice[it.pos]
			it.prevVoice = voiceNumber
			it.prevIndex = it.pos
			it.pos++
			return next, nil
		}
		it.voiceIdx++
		it.pos = 0
	}
	return nil, fmt.Errorf("%w: measure %d exhausted", errs.ErrNoSuchElement, it.measure.number)
}

// VoiceOfPrevious returns the voice number of the event most recently
// returned by Next. The value is meaningless before the first call.
func (it *MeasureIter) VoiceOfPrevious() int { return it.prevVoice }

// IndexOfPrevious returns the in-voice index of the event most recently
// returned by Next. The value is meaningless before the first call.
func (it *MeasureIter) IndexOfPrevious() int { return it.prevIndex }
