package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmakinen/partwise/errs"
)

func TestNewReducesToLowestTerms(t *testing.T) {
	assert := assert.New(t)

	d, err := New(2, 8)
	assert.NoError(err)
	assert.Equal(1, d.Numerator())
	assert.Equal(4, d.Denominator())
	assert.True(d.Equal(Quarter))
}

func TestNewRejectsNonPositiveParts(t *testing.T) {
	assert := assert.New(t)

	_, err := New(0, 4)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = New(1, 0)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = New(-1, 4)
	assert.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	assert.True(Quarter.Add(Quarter).Equal(Half))
	assert.True(Eighth.Add(Sixteenth).Add(Sixteenth).Equal(Quarter))

	third, _ := New(1, 3)
	sixth, _ := New(1, 6)
	assert.True(third.Add(sixth).Equal(Half))
}

func TestDotted(t *testing.T) {
	assert := assert.New(t)

	dottedQuarter, _ := New(3, 8)
	assert.True(Quarter.Dotted().Equal(dottedQuarter))
	assert.True(Half.Dotted().Equal(Quarter.Add(Half)))
}

func TestCmp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, Eighth.Cmp(Quarter))
	assert.Equal(1, Half.Cmp(Quarter))
	assert.Equal(0, Quarter.Cmp(Quarter))

	// cross multiplication, no floats
	third, _ := New(1, 3)
	assert.Equal(1, third.Cmp(Quarter))
}

func TestIsZero(t *testing.T) {
	assert := assert.New(t)

	var zero Duration
	assert.True(zero.IsZero())
	assert.False(Quarter.IsZero())
}

func TestSum(t *testing.T) {
	assert := assert.New(t)

	total, ok := Sum([]Duration{Quarter, Quarter, Half})
	assert.True(ok)
	assert.True(total.Equal(Whole))

	_, ok = Sum(nil)
	assert.False(ok)
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("1/4", Quarter.String())

	d, _ := New(6, 4)
	assert.Equal("3/2", d.String())
}
