package notation

import (
	"fmt"
	"sort"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/pitch"
)

// Articulation is a single-note performance instruction.
type Articulation int

const (
	Staccato Articulation = iota
	Accent
	Tenuto
	Fermata
)

// Note is an immutable pitched event. Marking connections and the
// optional outgoing tie are weak references resolved at lookup time.
type Note struct {
	pitch         pitch.Pitch
	dur           duration.Duration
	articulations map[Articulation]bool
	connections   map[*Marking]Connection
	tiedTo        *Note
}

// NewNote returns a plain note with the given pitch and duration.
func NewNote(p pitch.Pitch, d duration.Duration) (*Note, error) {
	return NewNoteWith(p, d, nil, nil, nil)
}

// NewNoteWith returns a note carrying articulations, marking connections
// and an optional tie to the next note. All collections are copied.
func NewNoteWith(p pitch.Pitch, d duration.Duration, articulations []Articulation,
	connections []Connection, tiedTo *Note) (*Note, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("%w: note duration is unset", errs.ErrInvalidArgument)
	}
	n := &Note{pitch: p, dur: d, tiedTo: tiedTo}
	if len(articulations) > 0 {
		n.articulations = make(map[Articulation]bool, len(articulations))
		for _, a := range articulations {
			n.articulations[a] = true
		}
	}
	if len(connections) > 0 {
		n.connections = make(map[*Marking]Connection, len(connections))
		for _, c := range connections {
			if c.marking == nil {
				return nil, fmt.Errorf("%w: connection without a marking", errs.ErrInvalidArgument)
			}
			n.connections[c.marking] = c
		}
	}
	return n, nil
}

// Pitch returns the pitch of the note.
func (n *Note) Pitch() pitch.Pitch { return n.pitch }

// Duration returns the length of the note.
func (n *Note) Duration() duration.Duration { return n.dur }

// IsRest always reports false for a note.
func (n *Note) IsRest() bool { return false }

// HasArticulation reports whether the note carries the articulation.
func (n *Note) HasArticulation(a Articulation) bool {
	return n.articulations[a]
}

// Articulations returns the articulations of the note in a fixed order.
func (n *Note) Articulations() []Articulation {
	if len(n.articulations) == 0 {
		return nil
	}
	out := make([]Articulation, 0, len(n.articulations))
	for a := range n.articulations {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Connection returns the connection of the note for the given marking
// identity. The second return is false when the note is not part of the
// marking.
func (n *Note) Connection(m *Marking) (Connection, bool) {
	c, ok := n.connections[m]
	return c, ok
}

// Markings returns the markings this note participates in.
func (n *Note) Markings() []*Marking {
	if len(n.connections) == 0 {
		return nil
	}
	out := make([]*Marking, 0, len(n.connections))
	for m := range n.connections {
		out = append(out, m)
	}
	// identity order for reproducibility
	sort.Slice(out, func(i, j int) bool { return out[i].ID().String() < out[j].ID().String() })
	return out
}

// TiedTo returns the next note of an outgoing tie. The second return is
// false when the note is untied or the tie ends here.
func (n *Note) TiedTo() (*Note, bool) {
	if n.tiedTo == nil {
		return nil, false
	}
	return n.tiedTo, true
}

// IsTied reports whether the note begins or continues a tie.
func (n *Note) IsTied() bool { return n.tiedTo != nil }

func (n *Note) String() string {
	return fmt.Sprintf("%s(%s)", n.pitch, n.dur)
}

// markingShape is the identity-free fingerprint of the note's marking
// connections, used by exact structural equality.
func (n *Note) markingShape() []markingShapeEntry {
	if len(n.connections) == 0 {
		return nil
	}
	out := make([]markingShapeEntry, 0, len(n.connections))
	for m, c := range n.connections {
		out = append(out, markingShapeEntry{typ: m.Type(), role: c.Role()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].typ != out[j].typ {
			return out[i].typ < out[j].typ
		}
		return out[i].role < out[j].role
	})
	return out
}

type markingShapeEntry struct {
	typ  MarkingType
	role ConnectionRole
}
