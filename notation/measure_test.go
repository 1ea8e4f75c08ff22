package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
)

func testAttr() MeasureAttributes {
	return NewMeasureAttributes(FourFour, CMajor, TrebleClef)
}

func TestNewMeasureRejectsNegativeNumber(t *testing.T) {
	_, err := NewMeasure(-1, nil, testAttr())
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestMeasureVoices(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMeasure(1, map[int][]Durational{
		1: {mustNote(c4(), duration.Half)},
		3: {mustNote(d4(), duration.Half), mustNote(e4(), duration.Half)},
	}, testAttr())
	assert.NoError(err)

	assert.Equal(1, m.Number())
	assert.False(m.IsPickup())
	assert.False(m.IsFullMeasureRest())
	assert.False(m.IsSingleVoice())
	assert.Equal(2, m.VoiceCount())
	// voice numbers need not be contiguous
	assert.Equal([]int{1, 3}, m.VoiceNumbers())

	size, err := m.VoiceSize(3)
	assert.NoError(err)
	assert.Equal(2, size)

	got, err := m.Get(3, 1)
	assert.NoError(err)
	assert.True(Equal(mustNote(e4(), duration.Half), got))
}

func TestMeasureLookupErrors(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMeasure(1, map[int][]Durational{1: {mustNote(c4(), duration.Whole)}}, testAttr())
	assert.NoError(err)

	_, err = m.Voice(2)
	assert.ErrorIs(err, errs.ErrNotFound)

	_, err = m.VoiceSize(2)
	assert.ErrorIs(err, errs.ErrNotFound)

	_, err = m.Get(2, 0)
	assert.ErrorIs(err, errs.ErrNotFound)

	_, err = m.Get(1, 1)
	assert.ErrorIs(err, errs.ErrNotFound)

	_, err = m.Get(1, -1)
	assert.ErrorIs(err, errs.ErrNotFound)
}

func TestMeasureDefensivelyCopiesVoices(t *testing.T) {
	assert := assert.New(t)

	events := []Durational{mustNote(c4(), duration.Whole)}
	voices := map[int][]Durational{1: events}
	m, err := NewMeasure(1, voices, testAttr())
	assert.NoError(err)

	events[0] = mustNote(d4(), duration.Whole)
	delete(voices, 1)

	got, err := m.Get(1, 0)
	assert.NoError(err)
	assert.True(Equal(mustNote(c4(), duration.Whole), got))

	// returned slices are copies too
	voice, err := m.Voice(1)
	assert.NoError(err)
	voice[0] = mustNote(e4(), duration.Whole)
	got, err = m.Get(1, 0)
	assert.NoError(err)
	assert.True(Equal(mustNote(c4(), duration.Whole), got))
}

func TestRestMeasure(t *testing.T) {
	assert := assert.New(t)

	m, err := NewRestMeasure(5, testAttr())
	assert.NoError(err)
	assert.True(m.IsFullMeasureRest())
	assert.Equal(0, m.VoiceCount())
	assert.False(m.Iter().HasNext())
}

func TestPickupMeasure(t *testing.T) {
	assert := assert.New(t)

	m, err := NewPickupMeasure(map[int][]Durational{1: {mustNote(c4(), duration.Quarter)}}, testAttr())
	assert.NoError(err)
	assert.Equal(0, m.Number())
	assert.True(m.IsPickup())
}

func TestMeasureIterDrainsVoicesInOrder(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMeasure(1, map[int][]Durational{
		5: {mustNote(e4(), duration.Whole)},
		2: {mustNote(c4(), duration.Half), mustNote(d4(), duration.Half)},
	}, testAttr())
	assert.NoError(err)

	it := m.Iter()
	type step struct {
		pitchName string
		voice     int
		index     int
	}
	var steps []step
	for it.HasNext() {
		d, err := it.Next()
		assert.NoError(err)
		n := d.(*Note)
		steps = append(steps, step{n.Pitch().String(), it.VoiceOfPrevious(), it.IndexOfPrevious()})
	}
	assert.Equal([]step{
		{"C4", 2, 0},
		{"D4", 2, 1},
		{"E4", 5, 0},
	}, steps)

	_, err = it.Next()
	assert.ErrorIs(err, errs.ErrNoSuchElement)
	assert.False(it.HasNext())
}

func TestMeasureIterSkipsEmptyVoices(t *testing.T) {
	assert := assert.New(t)

	m, err := NewMeasure(1, map[int][]Durational{
		1: {},
		2: {mustNote(c4(), duration.Whole)},
	}, testAttr())
	assert.NoError(err)

	it := m.Iter()
	assert.True(it.HasNext())
	d, err := it.Next()
	assert.NoError(err)
	assert.True(Equal(mustNote(c4(), duration.Whole), d))
	assert.False(it.HasNext())
}

func TestMeasureAttributeAccessors(t *testing.T) {
	assert := assert.New(t)

	attr := testAttr().
		WithLeftBarline(BarlineRepeatBegin).
		WithRightBarline(BarlineFinal).
		WithClefChange(duration.Half, BassClef)
	m, err := NewRestMeasure(1, attr)
	assert.NoError(err)

	assert.Equal(FourFour, m.TimeSignature())
	assert.Equal(CMajor, m.KeySignature())
	assert.Equal(TrebleClef, m.Clef())
	assert.Equal(BarlineRepeatBegin, m.LeftBarline())
	assert.Equal(BarlineFinal, m.RightBarline())
	assert.True(m.ContainsClefChanges())
	changes := m.ClefChanges()
	assert.Len(changes, 1)
	assert.Equal(BassClef, changes[0].Clef)
}
