package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/pitch"
)

// mustNote builds a plain quarter-or-other note for tests.
func mustNote(p pitch.Pitch, d duration.Duration) *Note {
	n, err := NewNote(p, d)
	if err != nil {
		panic(err)
	}
	return n
}

func c4() pitch.Pitch { return pitch.MustNew(pitch.C, 0, 4) }
func d4() pitch.Pitch { return pitch.MustNew(pitch.D, 0, 4) }
func e4() pitch.Pitch { return pitch.MustNew(pitch.E, 0, 4) }

func TestNewNoteRejectsZeroDuration(t *testing.T) {
	var zero duration.Duration
	_, err := NewNote(c4(), zero)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNoteAccessors(t *testing.T) {
	assert := assert.New(t)

	n := mustNote(c4(), duration.Quarter)
	assert.Equal(c4(), n.Pitch())
	assert.True(n.Duration().Equal(duration.Quarter))
	assert.False(n.IsRest())
	assert.False(n.IsTied())
	assert.Nil(n.Articulations())
	assert.Equal("C4(1/4)", n.String())
}

func TestNoteArticulations(t *testing.T) {
	assert := assert.New(t)

	n, err := NewNoteWith(c4(), duration.Quarter, []Articulation{Accent, Staccato, Accent}, nil, nil)
	assert.NoError(err)
	assert.True(n.HasArticulation(Staccato))
	assert.True(n.HasArticulation(Accent))
	assert.False(n.HasArticulation(Fermata))
	assert.Equal([]Articulation{Staccato, Accent}, n.Articulations())
}

func TestNoteWithRejectsConnectionWithoutMarking(t *testing.T) {
	_, err := NewNoteWith(c4(), duration.Quarter, nil, []Connection{{}}, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNoteCollectionsAreCopied(t *testing.T) {
	assert := assert.New(t)

	arts := []Articulation{Staccato}
	n, err := NewNoteWith(c4(), duration.Quarter, arts, nil, nil)
	assert.NoError(err)

	arts[0] = Fermata
	assert.True(n.HasArticulation(Staccato))
	assert.False(n.HasArticulation(Fermata))
}

func TestTiedTo(t *testing.T) {
	assert := assert.New(t)

	next := mustNote(c4(), duration.Quarter)
	n, err := NewNoteWith(c4(), duration.Quarter, nil, nil, next)
	assert.NoError(err)

	assert.True(n.IsTied())
	got, ok := n.TiedTo()
	assert.True(ok)
	assert.Same(next, got)

	_, ok = next.TiedTo()
	assert.False(ok)
}

// slurredTriple builds a three-note slur chain and returns the marking
// with the notes in chain order.
func slurredTriple() (*Marking, []*Note) {
	slur := NewMarking(Slur)
	last, err := NewNoteWith(e4(), duration.Quarter, nil, []Connection{EndOf(slur)}, nil)
	if err != nil {
		panic(err)
	}
	middle, err := NewNoteWith(d4(), duration.Quarter, nil, []Connection{MiddleOf(slur, last)}, nil)
	if err != nil {
		panic(err)
	}
	first, err := NewNoteWith(c4(), duration.Quarter, nil, []Connection{BeginningOf(slur, middle)}, nil)
	if err != nil {
		panic(err)
	}
	return slur, []*Note{first, middle, last}
}

func TestMarkingChainTraversal(t *testing.T) {
	assert := assert.New(t)

	slur, notes := slurredTriple()
	assert.Equal(notes, slur.AffectedStartingFrom(notes[0]))
	assert.Equal(notes[1:], slur.AffectedStartingFrom(notes[1]))
	assert.Equal(notes[2:], slur.AffectedStartingFrom(notes[2]))
}

func TestMarkingIdentityNotShape(t *testing.T) {
	assert := assert.New(t)

	_, notes := slurredTriple()
	other := NewMarking(Slur)
	// same type, different identity: the notes are not under it
	assert.Empty(other.AffectedStartingFrom(notes[0]))
	_, ok := notes[0].Connection(other)
	assert.False(ok)
}

func TestConnectionRoles(t *testing.T) {
	assert := assert.New(t)

	slur, notes := slurredTriple()
	conn, ok := notes[0].Connection(slur)
	assert.True(ok)
	assert.True(conn.IsBeginning())
	assert.False(conn.IsEnd())
	assert.Equal(Slur, conn.Type())
	assert.Same(slur, conn.Marking())
	assert.Equal(notes[1:], conn.FollowingNotes())

	conn, ok = notes[2].Connection(slur)
	assert.True(ok)
	assert.True(conn.IsEnd())
	_, hasNext := conn.Following()
	assert.False(hasNext)
	assert.Nil(conn.FollowingNotes())
}

func TestMarkingChainTerminatesOnCycle(t *testing.T) {
	assert := assert.New(t)

	gliss := NewMarking(Glissando)
	// b -> a -> b, a malformed loop
	b := &Note{pitch: d4(), dur: duration.Quarter}
	a, err := NewNoteWith(c4(), duration.Quarter, nil, []Connection{BeginningOf(gliss, b)}, nil)
	assert.NoError(err)
	b.connections = map[*Marking]Connection{gliss: MiddleOf(gliss, a)}

	affected := gliss.AffectedStartingFrom(a)
	assert.Equal([]*Note{a, b}, affected)
}

func TestMarkingsListing(t *testing.T) {
	assert := assert.New(t)

	slur := NewMarking(Slur)
	gliss := NewMarking(Glissando)
	n, err := NewNoteWith(c4(), duration.Quarter, nil,
		[]Connection{EndOf(slur), EndOf(gliss)}, nil)
	assert.NoError(err)
	assert.ElementsMatch([]*Marking{slur, gliss}, n.Markings())

	plain := mustNote(c4(), duration.Quarter)
	assert.Nil(plain.Markings())
}
