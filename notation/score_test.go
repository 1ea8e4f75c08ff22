package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
)

// wholeNoteMeasure returns a single-voice measure holding one whole note.
func wholeNoteMeasure(number int) *Measure {
	m, err := NewMeasure(number, map[int][]Durational{1: {mustNote(c4(), duration.Whole)}}, testAttr())
	if err != nil {
		panic(err)
	}
	return m
}

func mustStaff(measures ...*Measure) *Staff {
	s, err := NewStaff(measures)
	if err != nil {
		panic(err)
	}
	return s
}

func TestNewStaffValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := NewStaff(nil)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = NewStaff([]*Measure{wholeNoteMeasure(1), nil})
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	// numbers must strictly increase
	_, err = NewStaff([]*Measure{wholeNoteMeasure(2), wholeNoteMeasure(1)})
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = NewStaff([]*Measure{wholeNoteMeasure(1), wholeNoteMeasure(1)})
	assert.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestStaffMeasureLookup(t *testing.T) {
	assert := assert.New(t)

	// gaps in numbering are allowed
	s := mustStaff(wholeNoteMeasure(1), wholeNoteMeasure(2), wholeNoteMeasure(4))
	assert.Equal(3, s.MeasureCount())
	assert.Equal(4, s.LastMeasureNumber())
	assert.False(s.HasPickupMeasure())

	m, err := s.Measure(2)
	assert.NoError(err)
	assert.Equal(2, m.Number())

	_, err = s.Measure(3)
	assert.ErrorIs(err, errs.ErrNotFound)
}

func TestStaffPickup(t *testing.T) {
	assert := assert.New(t)

	s := mustStaff(wholeNoteMeasure(0), wholeNoteMeasure(1))
	assert.True(s.HasPickupMeasure())
}

func TestPartSingleStaff(t *testing.T) {
	assert := assert.New(t)

	staff := mustStaff(wholeNoteMeasure(1), wholeNoteMeasure(2))
	p, err := NewPart("Violin", staff)
	assert.NoError(err)

	assert.Equal("Violin", p.Name())
	assert.False(p.IsMultiStaff())
	assert.Equal(1, p.StaffCount())
	assert.Equal([]int{SingleStaffNumber}, p.StaffNumbers())
	assert.Equal(2, p.MeasureCount())

	got, err := p.Staff(SingleStaffNumber)
	assert.NoError(err)
	assert.Same(staff, got)

	m, err := p.Measure(SingleStaffNumber, 2)
	assert.NoError(err)
	assert.Equal(2, m.Number())

	_, err = p.Staff(2)
	assert.ErrorIs(err, errs.ErrNotFound)

	_, err = p.Measure(2, 1)
	assert.ErrorIs(err, errs.ErrNotFound)
}

func TestPartMultiStaff(t *testing.T) {
	assert := assert.New(t)

	upper := mustStaff(wholeNoteMeasure(1), wholeNoteMeasure(2), wholeNoteMeasure(3))
	lower := mustStaff(wholeNoteMeasure(1), wholeNoteMeasure(2))
	p, err := NewMultiStaffPart("Piano", map[int]*Staff{1: upper, 2: lower})
	assert.NoError(err)

	assert.True(p.IsMultiStaff())
	assert.Equal(2, p.StaffCount())
	assert.Equal([]int{1, 2}, p.StaffNumbers())
	// measure count follows the longest staff
	assert.Equal(3, p.MeasureCount())
}

func TestPartValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := NewPart("empty", nil)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = NewMultiStaffPart("empty", nil)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = NewMultiStaffPart("piano", map[int]*Staff{1: nil})
	assert.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestScore(t *testing.T) {
	assert := assert.New(t)

	first, err := NewPart("Violin", mustStaff(wholeNoteMeasure(1), wholeNoteMeasure(2)))
	assert.NoError(err)
	second, err := NewPart("Cello", mustStaff(wholeNoteMeasure(0), wholeNoteMeasure(1)))
	assert.NoError(err)

	score, err := NewScore([]*Part{first, second}, map[Attr]string{
		AttrTitle:    "Duo",
		AttrComposer: "Anon.",
	})
	assert.NoError(err)

	assert.Equal(2, score.PartCount())
	assert.Equal("Duo", score.Title())
	assert.Equal(2, score.FullMeasureCount())
	assert.True(score.HasPickupMeasure())

	p, err := score.Part(1)
	assert.NoError(err)
	assert.Same(second, p)

	_, err = score.Part(2)
	assert.ErrorIs(err, errs.ErrNotFound)

	composer, ok := score.Attribute(AttrComposer)
	assert.True(ok)
	assert.Equal("Anon.", composer)

	_, ok = score.Attribute(AttrArranger)
	assert.False(ok)
}

func TestScoreValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := NewScore(nil, nil)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = NewScore([]*Part{nil}, nil)
	assert.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestScoreCopiesAttributes(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPart("Violin", mustStaff(wholeNoteMeasure(1)))
	assert.NoError(err)

	attrs := map[Attr]string{AttrTitle: "Original"}
	score, err := NewScore([]*Part{p}, attrs)
	assert.NoError(err)

	attrs[AttrTitle] = "Changed"
	assert.Equal("Original", score.Title())

	score.Attributes()[AttrTitle] = "Changed"
	assert.Equal("Original", score.Title())
}
