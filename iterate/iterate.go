// Package iterate provides deterministic, resumable positional traversal
// over a score. Every visited event is addressable by a structural
// Position that is valid independently of the traversal that produced it.
package iterate

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/notation"
)

// Position is the structural address of one event in a score.
type Position struct {
	Part    int // index of the part in score order
	Staff   int // staff number within the part
	Measure int // measure number
	Voice   int // voice number within the measure
	Index   int // index within the voice
}

func (p Position) String() string {
	return fmt.Sprintf("part %d staff %d measure %d voice %d index %d",
		p.Part, p.Staff, p.Measure, p.Voice, p.Index)
}

// PartwiseIterator walks every event of a score within a contiguous
// measure-number range: parts in score order, staves in ascending
// staff-number order within a part, measures in ascending number order
// within a staff, and within a measure the measure's own voice-by-voice
// order. Measures absent from a staff and measures with no voices are
// skipped. The iterator only reads the score; its cursor is the sole
// mutable state and is not safe for concurrent stepping.
type PartwiseIterator struct {
	score *notation.Score
	first int
	last  int

	partIdx    int
	staffIdx   int
	measureNum int
	mit        *notation.MeasureIter

	staffNumbers []int
	prev         Position
}

// NewPartwise returns an iterator over measures [first, last] of the
// score. Constructing with first > last or a negative first is a caller
// error.
func NewPartwise(score *notation.Score, first, last int) (*PartwiseIterator, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: nil score", errs.ErrInvalidArgument)
	}
	if first < 0 {
		return nil, fmt.Errorf("%w: first measure %d is negative", errs.ErrInvalidArgument, first)
	}
	if first > last {
		return nil, fmt.Errorf("%w: measure range [%d, %d] is inverted", errs.ErrInvalidArgument, first, last)
	}
	return &PartwiseIterator{
		score:      score,
		first:      first,
		last:       last,
		measureNum: first - 1,
	}, nil
}

// FullScore returns an iterator over the whole score, including the
// pickup measure when one exists.
func FullScore(score *notation.Score) (*PartwiseIterator, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: nil score", errs.ErrInvalidArgument)
	}
	first := 1
	if score.HasPickupMeasure() {
		first = 0
	}
	return NewPartwise(score, first, score.FullMeasureCount())
}

// HasNext reports whether an unvisited event remains in range. It never
// fails.
func (it *PartwiseIterator) HasNext() bool {
	for {
		if it.mit != nil && it.mit.HasNext() {
			return true
		}
		if !it.advance() {
			return false
		}
	}
}

// Next returns the next event, or ErrNoSuchElement when the range is
// exhausted.
func (it *PartwiseIterator) Next() (notation.Durational, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("%w: traversal exhausted", errs.ErrNoSuchElement)
	}
	next, err := it.mit.Next()
	if err != nil {
		return nil, err
	}
	it.prev = Position{
		Part:    it.partIdx,
		Staff:   it.staffNumbers[it.staffIdx],
		Measure: it.measureNum,
		Voice:   it.mit.VoiceOfPrevious(),
		Index:   it.mit.IndexOfPrevious(),
	}
	return next, nil
}

// PositionOfPrevious returns the structural address of the event most
// recently returned by Next. The value is meaningless before the first
// call.
func (it *PartwiseIterator) PositionOfPrevious() Position { return it.prev }

// advance moves the cursor to the next measure in traversal order and
// prepares its iterator. It returns false when the traversal is done.
func (it *PartwiseIterator) advance() bool {
	for it.partIdx < it.score.PartCount() {
		part, err := it.score.Part(it.partIdx)
		if err != nil {
			return false
		}
		if it.staffNumbers == nil {
			it.staffNumbers = part.StaffNumbers()
		}
		for it.staffIdx < len(it.staffNumbers) {
			staffNumber := it.staffNumbers[it.staffIdx]
			for it.measureNum < it.last {
				it.measureNum++
				m, err := part.Measure(staffNumber, it.measureNum)
				if err != nil {
					// staff does not have this measure number
					continue
				}
				it.mit = m.Iter()
				return true
			}
			it.staffIdx++
			it.measureNum = it.first - 1
		}
		it.partIdx++
		it.staffIdx = 0
		it.staffNumbers = nil
		it.measureNum = it.first - 1
	}
	it.mit = nil
	return false
}
