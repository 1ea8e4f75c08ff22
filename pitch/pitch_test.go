package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmakinen/partwise/errs"
)

func TestNumberMatchesMidiConvention(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, MustNew(C, 0, 4).Number())
	assert.Equal(69, MustNew(A, 0, 4).Number())
	assert.Equal(0, MustNew(C, 0, -1).Number())
	assert.Equal(61, MustNew(C, 1, 4).Number())
	assert.Equal(61, MustNew(D, -1, 4).Number())
}

func TestNewRejectsOutOfRangeValues(t *testing.T) {
	assert := assert.New(t)

	_, err := New(Base(7), 0, 4)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = New(C, 3, 4)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = New(C, -3, 4)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = New(C, 0, 11)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = New(C, 0, -2)
	assert.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestFromNumberUsesSharpSpellings(t *testing.T) {
	assert := assert.New(t)

	p, err := FromNumber(61)
	assert.NoError(err)
	assert.Equal(MustNew(C, 1, 4), p)

	p, err = FromNumber(60)
	assert.NoError(err)
	assert.Equal(MustNew(C, 0, 4), p)

	p, err = FromNumber(0)
	assert.NoError(err)
	assert.Equal(MustNew(C, 0, -1), p)

	p, err = FromNumber(127)
	assert.NoError(err)
	assert.Equal(MustNew(G, 0, 9), p)

	_, err = FromNumber(128)
	assert.ErrorIs(err, errs.ErrInvalidArgument)

	_, err = FromNumber(-1)
	assert.ErrorIs(err, errs.ErrInvalidArgument)
}

func TestFromNumberRoundTripsEveryMidiKey(t *testing.T) {
	for n := 0; n <= 127; n++ {
		p, err := FromNumber(n)
		if err != nil {
			t.Fatalf("FromNumber(%d): %v", n, err)
		}
		if p.Number() != n {
			t.Errorf("FromNumber(%d).Number() = %d", n, p.Number())
		}
	}
}

func TestEqualIsSpellingSensitive(t *testing.T) {
	assert := assert.New(t)

	cSharp := MustNew(C, 1, 4)
	dFlat := MustNew(D, -1, 4)
	assert.True(cSharp.Equal(MustNew(C, 1, 4)))
	assert.False(cSharp.Equal(dFlat))
	assert.False(cSharp.Equal(MustNew(C, 1, 5)))
}

func TestEqualsEnharmonically(t *testing.T) {
	assert := assert.New(t)

	assert.True(MustNew(C, 1, 4).EqualsEnharmonically(MustNew(D, -1, 4)))
	// D double flat sounds as C natural
	assert.True(MustNew(D, -2, 4).EqualsEnharmonically(MustNew(C, 0, 4)))
	// same pitch class in another octave is a different pitch
	assert.False(MustNew(C, 1, 4).EqualsEnharmonically(MustNew(C, 1, 5)))
	assert.False(MustNew(C, 0, 4).EqualsEnharmonically(MustNew(D, 0, 4)))
}

func TestClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, MustNew(C, 0, 4).Class())
	assert.Equal(0, MustNew(C, 0, 7).Class())
	assert.Equal(11, MustNew(C, -1, 4).Class())
	assert.Equal(0, MustNew(B, 1, 3).Class())
}

func TestCmpOrdersBySoundThenLetter(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, MustNew(C, 0, 4).Cmp(MustNew(D, 0, 4)))
	assert.Equal(1, MustNew(D, 0, 4).Cmp(MustNew(C, 0, 4)))
	assert.Equal(0, MustNew(C, 1, 4).Cmp(MustNew(C, 1, 4)))
	// enharmonic tie broken by letter
	assert.Equal(-1, MustNew(C, 1, 4).Cmp(MustNew(D, -1, 4)))
	assert.Equal(1, MustNew(D, -1, 4).Cmp(MustNew(C, 1, 4)))
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", MustNew(C, 0, 4).String())
	assert.Equal("C#4", MustNew(C, 1, 4).String())
	assert.Equal("Db4", MustNew(D, -1, 4).String())
	assert.Equal("F##3", MustNew(F, 2, 3).String())
	assert.Equal("Abb5", MustNew(A, -2, 5).String())
	assert.Equal("C-1", MustNew(C, 0, -1).String())
}
