package notation

import (
	"fmt"

	"github.com/google/uuid"
)

// MarkingType names the kind of a connected notation, e.g. a slur drawn
// over a run of notes.
type MarkingType int

const (
	Slur MarkingType = iota
	Glissando
)

func (t MarkingType) String() string {
	switch t {
	case Slur:
		return "slur"
	case Glissando:
		return "glissando"
	default:
		return fmt.Sprintf("MarkingType(%d)", int(t))
	}
}

// Marking is a notational relation spanning multiple notes. Markings are
// identified by identity, not value: two separately created slurs are
// distinct even though their types match. Notes refer to each other
// through Connections carrying the shared *Marking, so the marking itself
// owns nothing and no ownership cycles can form.
type Marking struct {
	id  uuid.UUID
	typ MarkingType
}

// NewMarking returns a new marking with a fresh identity.
func NewMarking(t MarkingType) *Marking {
	return &Marking{id: uuid.New(), typ: t}
}

// Type returns the kind of the marking.
func (m *Marking) Type() MarkingType { return m.typ }

// ID returns the identity of the marking.
func (m *Marking) ID() uuid.UUID { return m.id }

// AffectedStartingFrom returns the notes under this marking beginning from
// the given note, in chain order. The result is empty when the note does
// not participate in this marking. The walk terminates even on a
// malformed cyclic chain.
func (m *Marking) AffectedStartingFrom(n *Note) []*Note {
	conn, ok := n.Connection(m)
	if !ok {
		return nil
	}
	affected := []*Note{n}
	seen := map[*Note]bool{n: true}
	for {
		next, ok := conn.Following()
		if !ok || seen[next] {
			return affected
		}
		affected = append(affected, next)
		seen[next] = true
		conn, ok = next.Connection(m)
		if !ok {
			return affected
		}
	}
}

// ConnectionRole states the place of a note within a marking chain.
type ConnectionRole int

const (
	Beginning ConnectionRole = iota
	Middle
	End
)

// Connection attaches one note to a marking. Unless the role is End it
// holds a weak reference to the next note in the chain; the reference is
// for lookup only and implies no ownership.
type Connection struct {
	marking   *Marking
	following *Note
	role      ConnectionRole
}

// BeginningOf returns the connection opening a marking chain.
func BeginningOf(m *Marking, following *Note) Connection {
	return Connection{marking: m, following: following, role: Beginning}
}

// MiddleOf returns a connection continuing a marking chain.
func MiddleOf(m *Marking, following *Note) Connection {
	return Connection{marking: m, following: following, role: Middle}
}

// EndOf returns the connection closing a marking chain.
func EndOf(m *Marking) Connection {
	return Connection{marking: m, role: End}
}

// Marking returns the marking this connection belongs to.
func (c Connection) Marking() *Marking { return c.marking }

// Type returns the type of the connected marking.
func (c Connection) Type() MarkingType { return c.marking.Type() }

// Role returns the role of the note within the chain.
func (c Connection) Role() ConnectionRole { return c.role }

// IsBeginning reports whether this connection opens the chain.
func (c Connection) IsBeginning() bool { return c.role == Beginning }

// IsEnd reports whether this connection closes the chain.
func (c Connection) IsEnd() bool { return c.role == End }

// Following returns the next note of the chain. The second return is
// false when the role is End.
func (c Connection) Following() (*Note, bool) {
	if c.following == nil {
		return nil, false
	}
	return c.following, true
}

// FollowingNotes returns all notes after this connection's note under the
// same marking, in chain order.
func (c Connection) FollowingNotes() []*Note {
	next, ok := c.Following()
	if !ok {
		return nil
	}
	return c.marking.AffectedStartingFrom(next)
}
