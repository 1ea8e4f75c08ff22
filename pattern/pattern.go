// Package pattern wraps a musical excerpt, monophonic or polyphonic, and
// compares excerpts under four escalating notions of sameness: exact,
// pitch-spelling, enharmonic, and transpositional equality.
package pattern

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/notation"
	"github.com/tmakinen/partwise/util"
)

// singleVoiceNumber is the voice number used for monophonic contents and
// for polyphonic patterns built from a flat chord-bearing sequence.
const singleVoiceNumber = 1

// Pattern is an immutable named excerpt used as the unit of equivalence
// comparison. A monophonic pattern is a flat event sequence without
// chords; a polyphonic pattern maps voice numbers to event sequences.
type Pattern struct {
	name         string
	labels       []string
	voiceNumbers []int
	voices       map[int][]notation.Durational
	mono         bool
}

// Option configures the optional name and labels of a pattern.
type Option func(*Pattern)

// WithName sets the name of the pattern.
func WithName(name string) Option {
	return func(p *Pattern) { p.name = name }
}

// WithLabels adds labels to the pattern.
func WithLabels(labels ...string) Option {
	return func(p *Pattern) { p.labels = append(p.labels, labels...) }
}

// NewMonophonic returns a monophonic pattern of the given events. The
// contents must be non-empty and must not contain any event sounding
// more than one pitch at a time.
func NewMonophonic(contents []notation.Durational, opts ...Option) (*Pattern, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: pattern contents are empty", errs.ErrInvalidArgument)
	}
	for i, d := range contents {
		if notation.PitchCountOf(d) > 1 {
			return nil, fmt.Errorf("%w: element %d sounds %d simultaneous pitches, contents must be monophonic",
				errs.ErrInvalidArgument, i, notation.PitchCountOf(d))
		}
	}
	copied := make([]notation.Durational, len(contents))
	copy(copied, contents)
	p := &Pattern{
		voiceNumbers: []int{singleVoiceNumber},
		voices:       map[int][]notation.Durational{singleVoiceNumber: copied},
		mono:         true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewPolyphonic returns a polyphonic pattern of the given voices. The map
// must be non-empty and every voice must be non-empty. A single
// chord-free voice collapses to the monophonic case and is rejected;
// use NewMonophonic for it.
func NewPolyphonic(voices map[int][]notation.Durational, opts ...Option) (*Pattern, error) {
	if len(voices) == 0 {
		return nil, fmt.Errorf("%w: pattern has no voices", errs.ErrInvalidArgument)
	}
	p := &Pattern{
		voiceNumbers: util.SortedKeys(voices),
		voices:       make(map[int][]notation.Durational, len(voices)),
	}
	for num, voice := range voices {
		if len(voice) == 0 {
			return nil, fmt.Errorf("%w: voice %d of pattern is empty", errs.ErrInvalidArgument, num)
		}
		copied := make([]notation.Durational, len(voice))
		copy(copied, voice)
		p.voices[num] = copied
	}
	if len(voices) == 1 {
		only := p.voices[p.voiceNumbers[0]]
		if !containsChord(only) {
			return nil, fmt.Errorf("%w: single chord-free voice is monophonic, use NewMonophonic",
				errs.ErrInvalidArgument)
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewPolyphonicFromContents returns a single-voice polyphonic pattern
// from a flat sequence containing at least one chord.
func NewPolyphonicFromContents(contents []notation.Durational, opts ...Option) (*Pattern, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: pattern contents are empty", errs.ErrInvalidArgument)
	}
	return NewPolyphonic(map[int][]notation.Durational{singleVoiceNumber: contents}, opts...)
}

func containsChord(voice []notation.Durational) bool {
	for _, d := range voice {
		if notation.PitchCountOf(d) > 1 {
			return true
		}
	}
	return false
}

// Name returns the optional name of the pattern.
func (p *Pattern) Name() (string, bool) {
	return p.name, p.name != ""
}

// Labels returns the labels of the pattern.
func (p *Pattern) Labels() []string {
	out := make([]string, len(p.labels))
	copy(out, p.labels)
	return out
}

// IsMonophonic reports whether the pattern is a flat chord-free
// sequence.
func (p *Pattern) IsMonophonic() bool { return p.mono }

// VoiceCount returns the number of voices in the pattern.
func (p *Pattern) VoiceCount() int { return len(p.voices) }

// VoiceNumbers returns the voice numbers in ascending order.
func (p *Pattern) VoiceNumbers() []int {
	out := make([]int, len(p.voiceNumbers))
	copy(out, p.voiceNumbers)
	return out
}

// Voice returns the events of the voice with the given number.
func (p *Pattern) Voice(voiceNumber int) ([]notation.Durational, error) {
	voice, ok := p.voices[voiceNumber]
	if !ok {
		return nil, fmt.Errorf("%w: no voice %d in pattern", errs.ErrNotFound, voiceNumber)
	}
	out := make([]notation.Durational, len(voice))
	copy(out, voice)
	return out, nil
}

// VoiceSize returns the number of events in the given voice.
func (p *Pattern) VoiceSize(voiceNumber int) (int, error) {
	voice, ok := p.voices[voiceNumber]
	if !ok {
		return 0, fmt.Errorf("%w: no voice %d in pattern", errs.ErrNotFound, voiceNumber)
	}
	return len(voice), nil
}

// Get returns the event at the given index of the given voice.
func (p *Pattern) Get(voiceNumber, index int) (notation.Durational, error) {
	voice, ok := p.voices[voiceNumber]
	if !ok {
		return nil, fmt.Errorf("%w: no voice %d in pattern", errs.ErrNotFound, voiceNumber)
	}
	if index < 0 || index >= len(voice) {
		return nil, fmt.Errorf("%w: index %d out of range in pattern voice %d", errs.ErrNotFound, index, voiceNumber)
	}
	return voice[index], nil
}

// Contents returns a flattened view of the pattern: the sequence itself
// for a monophonic pattern, the voices concatenated in ascending
// voice-number order for a polyphonic one. The flattening is
// informational, not timing-accurate.
func (p *Pattern) Contents() []notation.Durational {
	var out []notation.Durational
	for _, num := range p.voiceNumbers {
		out = append(out, p.voices[num]...)
	}
	return out
}
