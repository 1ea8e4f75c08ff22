package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/pitch"
)

func TestChordSortsNotesByPitch(t *testing.T) {
	assert := assert.New(t)

	c, err := NewChord(
		mustNote(e4(), duration.Half),
		mustNote(c4(), duration.Half),
		mustNote(d4(), duration.Half))
	assert.NoError(err)

	assert.Equal(3, c.Count())
	assert.Equal([]pitch.Pitch{c4(), d4(), e4()}, c.Pitches())
	assert.True(c.Duration().Equal(duration.Half))
	assert.False(c.IsRest())
}

func TestChordNoteLookup(t *testing.T) {
	assert := assert.New(t)

	c, err := NewChord(mustNote(e4(), duration.Quarter), mustNote(c4(), duration.Quarter))
	assert.NoError(err)

	n, err := c.Note(0)
	assert.NoError(err)
	assert.Equal(c4(), n.Pitch())

	_, err = c.Note(2)
	assert.ErrorIs(err, errs.ErrNotFound)

	_, err = c.Note(-1)
	assert.ErrorIs(err, errs.ErrNotFound)
}

func TestChordRejectsEmpty(t *testing.T) {
	_, err := NewChord()
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestChordRejectsMixedDurations(t *testing.T) {
	_, err := NewChord(mustNote(c4(), duration.Quarter), mustNote(e4(), duration.Half))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestChordRejectsDuplicateSpelling(t *testing.T) {
	assert := assert.New(t)

	_, err := NewChord(mustNote(c4(), duration.Quarter), mustNote(c4(), duration.Quarter))
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	// enharmonic duplicates are distinct spellings and allowed
	cSharp := mustNote(pitch.MustNew(pitch.C, 1, 4), duration.Quarter)
	dFlat := mustNote(pitch.MustNew(pitch.D, -1, 4), duration.Quarter)
	c, err := NewChord(cSharp, dFlat)
	assert.NoError(err)
	assert.Equal(2, c.Count())
}

func TestChordEnharmonicOrderIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	cSharp := mustNote(pitch.MustNew(pitch.C, 1, 4), duration.Quarter)
	dFlat := mustNote(pitch.MustNew(pitch.D, -1, 4), duration.Quarter)

	a, err := NewChord(dFlat, cSharp)
	assert.NoError(err)
	b, err := NewChord(cSharp, dFlat)
	assert.NoError(err)

	// enharmonic tie broken by letter, C# before Db either way
	assert.Equal(a.Pitches(), b.Pitches())
	assert.Equal(pitch.C, a.Pitches()[0].Base())
}

func TestChordString(t *testing.T) {
	c, err := NewChord(mustNote(e4(), duration.Quarter), mustNote(c4(), duration.Quarter))
	assert.NoError(t, err)
	assert.Equal(t, "[C4 E4](1/4)", c.String())
}
