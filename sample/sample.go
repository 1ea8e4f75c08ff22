// Package sample exports a short excerpt around a match position so a
// search client can audition the hit.
package sample

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/midifile"
	"github.com/tmakinen/partwise/notation"
)

// ContextMeasures is how many measures after the match measure the
// excerpt includes.
const ContextMeasures = 3

// Excerpt renders the measures [measure, measure+ContextMeasures] of the
// score as a small SMF. The excerpt score is rebuilt from the original's
// read-only accessors; the original is untouched.
func Excerpt(score *notation.Score, measure int) (*smf.SMF, error) {
	excerpt, err := Slice(score, measure, measure+ContextMeasures)
	if err != nil {
		return nil, err
	}
	return midifile.Write(excerpt)
}

// Slice constructs a new score containing only the measures in
// [first, last] of every part. Staves missing the whole range are
// dropped; the result must retain at least one part.
func Slice(score *notation.Score, first, last int) (*notation.Score, error) {
	if first > last {
		return nil, fmt.Errorf("%w: measure range [%d, %d] is inverted", errs.ErrInvalidArgument, first, last)
	}
	var parts []*notation.Part
	for _, part := range score.Parts() {
		staves := make(map[int]*notation.Staff)
		for _, staffNumber := range part.StaffNumbers() {
			var measures []*notation.Measure
			for num := first; num <= last; num++ {
				m, err := part.Measure(staffNumber, num)
				if err != nil {
					continue
				}
				measures = append(measures, m)
			}
			if len(measures) == 0 {
				continue
			}
			staff, err := notation.NewStaff(measures)
			if err != nil {
				return nil, err
			}
			staves[staffNumber] = staff
		}
		if len(staves) == 0 {
			continue
		}
		p, err := notation.NewMultiStaffPart(part.Name(), staves)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no part has measures in range [%d, %d]", errs.ErrNotFound, first, last)
	}
	return notation.NewScore(parts, score.Attributes())
}
