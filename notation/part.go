package notation

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
	"github.com/tmakinen/partwise/util"
)

// SingleStaffNumber is the staff number of the only staff in a part
// created with NewPart.
const SingleStaffNumber = 1

// Part is one instrument line of a score: either a single staff or
// several numbered staves (e.g. piano). Both variants expose the same
// surface; the measure of any staff is reachable through Measure.
type Part struct {
	name         string
	staffNumbers []int
	staves       map[int]*Staff
}

// NewPart returns a part with one staff, numbered SingleStaffNumber.
func NewPart(name string, staff *Staff) (*Part, error) {
	if staff == nil {
		return nil, fmt.Errorf("%w: part %q has no staff", errs.ErrInvalidArgument, name)
	}
	return NewMultiStaffPart(name, map[int]*Staff{SingleStaffNumber: staff})
}

// NewMultiStaffPart returns a part with the given numbered staves. The
// map is defensively copied.
func NewMultiStaffPart(name string, staves map[int]*Staff) (*Part, error) {
	if len(staves) == 0 {
		return nil, fmt.Errorf("%w: part %q has no staves", errs.ErrInvalidArgument, name)
	}
	p := &Part{
		name:         name,
		staffNumbers: util.SortedKeys(staves),
		staves:       make(map[int]*Staff, len(staves)),
	}
	for num, s := range staves {
		if s == nil {
			return nil, fmt.Errorf("%w: nil staff %d in part %q", errs.ErrInvalidArgument, num, name)
		}
		p.staves[num] = s
	}
	return p, nil
}

// Name returns the name of the part.
func (p *Part) Name() string { return p.name }

// IsMultiStaff reports whether the part has more than one staff.
func (p *Part) IsMultiStaff() bool { return len(p.staves) > 1 }

// StaffCount returns the number of staves in the part.
func (p *Part) StaffCount() int { return len(p.staves) }

// StaffNumbers returns the staff numbers in ascending order.
func (p *Part) StaffNumbers() []int {
	out := make([]int, len(p.staffNumbers))
	copy(out, p.staffNumbers)
	return out
}

// Staff returns the staff with the given number.
func (p *Part) Staff(staffNumber int) (*Staff, error) {
	s, ok := p.staves[staffNumber]
	if !ok {
		return nil, fmt.Errorf("%w: no staff %d in part %q", errs.ErrNotFound, staffNumber, p.name)
	}
	return s, nil
}

// Measure returns the measure with the given number on the given staff.
func (p *Part) Measure(staffNumber, measureNumber int) (*Measure, error) {
	s, ok := p.staves[staffNumber]
	if !ok {
		return nil, fmt.Errorf("%w: no staff %d in part %q", errs.ErrNotFound, staffNumber, p.name)
	}
	return s.Measure(measureNumber)
}

// MeasureCount returns the highest measure number present on any staff of
// the part.
func (p *Part) MeasureCount() int {
	max := 0
	for _, s := range p.staves {
		if n := s.LastMeasureNumber(); n > max {
			max = n
		}
	}
	return max
}

// HasPickupMeasure reports whether any staff begins with measure 0.
func (p *Part) HasPickupMeasure() bool {
	for _, s := range p.staves {
		if s.HasPickupMeasure() {
			return true
		}
	}
	return false
}
