package notation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/pitch"
)

// Chord is a non-empty set of simultaneous notes sharing one duration.
// Notes are stored in ascending pitch order regardless of construction
// order, which makes chord equality order-independent.
type Chord struct {
	notes []*Note
	dur   duration.Duration
}

// NewChord returns a chord of the given notes. All notes must share the
// same duration and no two notes may have the same exact pitch spelling.
func NewChord(notes ...*Note) (*Chord, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: chord must contain at least one note", errs.ErrInvalidArgument)
	}
	sorted := make([]*Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pitch().Cmp(sorted[j].Pitch()) < 0
	})
	dur := sorted[0].Duration()
	for i, n := range sorted {
		if !n.Duration().Equal(dur) {
			return nil, fmt.Errorf("%w: chord notes must share one duration, got %s and %s",
				errs.ErrInvalidArgument, dur, n.Duration())
		}
		if i > 0 && n.Pitch().Equal(sorted[i-1].Pitch()) {
			return nil, fmt.Errorf("%w: duplicate pitch %s in chord", errs.ErrInvalidArgument, n.Pitch())
		}
	}
	return &Chord{notes: sorted, dur: dur}, nil
}

// Duration returns the shared duration of the chord notes.
func (c *Chord) Duration() duration.Duration { return c.dur }

// IsRest always reports false for a chord.
func (c *Chord) IsRest() bool { return false }

// Count returns the number of notes in the chord.
func (c *Chord) Count() int { return len(c.notes) }

// Note returns the i-th note of the chord in ascending pitch order.
func (c *Chord) Note(i int) (*Note, error) {
	if i < 0 || i >= len(c.notes) {
		return nil, fmt.Errorf("%w: chord note index %d out of range", errs.ErrNotFound, i)
	}
	return c.notes[i], nil
}

// Notes returns the chord notes in ascending pitch order.
func (c *Chord) Notes() []*Note {
	out := make([]*Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Pitches returns the pitches of the chord in ascending order.
func (c *Chord) Pitches() []pitch.Pitch {
	out := make([]pitch.Pitch, len(c.notes))
	for i, n := range c.notes {
		out[i] = n.Pitch()
	}
	return out
}

func (c *Chord) String() string {
	parts := make([]string, len(c.notes))
	for i, n := range c.notes {
		parts[i] = n.Pitch().String()
	}
	return fmt.Sprintf("[%s](%s)", strings.Join(parts, " "), c.dur)
}
