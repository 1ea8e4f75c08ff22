package notation

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
)

// Staff is an ordered sequence of measures with strictly increasing
// measure numbers. Numbers need not be contiguous; 0 may appear once at
// the front as a pickup measure.
type Staff struct {
	measures []*Measure
	byNumber map[int]*Measure
}

// NewStaff returns a staff of the given measures. The slice is copied.
func NewStaff(measures []*Measure) (*Staff, error) {
	if len(measures) == 0 {
		return nil, fmt.Errorf("%w: staff must contain at least one measure", errs.ErrInvalidArgument)
	}
	s := &Staff{
		measures: make([]*Measure, len(measures)),
		byNumber: make(map[int]*Measure, len(measures)),
	}
	prev := -1
	for i, m := range measures {
		if m == nil {
			return nil, fmt.Errorf("%w: nil measure in staff", errs.ErrInvalidArgument)
		}
		if m.Number() <= prev {
			return nil, fmt.Errorf("%w: measure numbers must be strictly increasing, got %d after %d",
				errs.ErrInvalidArgument, m.Number(), prev)
		}
		prev = m.Number()
		s.measures[i] = m
		s.byNumber[m.Number()] = m
	}
	return s, nil
}

// MeasureCount returns the number of measures on the staff.
func (s *Staff) MeasureCount() int { return len(s.measures) }

// Measures returns the measures of the staff in order.
func (s *Staff) Measures() []*Measure {
	out := make([]*Measure, len(s.measures))
	copy(out, s.measures)
	return out
}

// Measure returns the measure with the given number.
func (s *Staff) Measure(number int) (*Measure, error) {
	m, ok := s.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: no measure %d on staff", errs.ErrNotFound, number)
	}
	return m, nil
}

// HasPickupMeasure reports whether the staff begins with measure 0.
func (s *Staff) HasPickupMeasure() bool {
	_, ok := s.byNumber[0]
	return ok
}

// LastMeasureNumber returns the highest measure number on the staff.
func (s *Staff) LastMeasureNumber() int {
	return s.measures[len(s.measures)-1].Number()
}
