package notation

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
)

// Attr is a textual score header attribute key.
type Attr string

const (
	AttrTitle    Attr = "title"
	AttrComposer Attr = "composer"
	AttrArranger Attr = "arranger"
	AttrMovement Attr = "movement"
)

// Score is an ordered sequence of parts plus header attributes. The
// pickup flag and full measure count are derived once at construction.
type Score struct {
	parts            []*Part
	attributes       map[Attr]string
	fullMeasureCount int
	hasPickup        bool
}

// NewScore returns a score of the given parts and attributes. Both
// collections are defensively copied.
func NewScore(parts []*Part, attributes map[Attr]string) (*Score, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: score must contain at least one part", errs.ErrInvalidArgument)
	}
	s := &Score{
		parts:      make([]*Part, len(parts)),
		attributes: make(map[Attr]string, len(attributes)),
	}
	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("%w: nil part in score", errs.ErrInvalidArgument)
		}
		s.parts[i] = p
		if n := p.MeasureCount(); n > s.fullMeasureCount {
			s.fullMeasureCount = n
		}
		if p.HasPickupMeasure() {
			s.hasPickup = true
		}
	}
	for k, v := range attributes {
		s.attributes[k] = v
	}
	return s, nil
}

// PartCount returns the number of parts in the score.
func (s *Score) PartCount() int { return len(s.parts) }

// Part returns the part at the given index in score order.
func (s *Score) Part(index int) (*Part, error) {
	if index < 0 || index >= len(s.parts) {
		return nil, fmt.Errorf("%w: part index %d out of range", errs.ErrNotFound, index)
	}
	return s.parts[index], nil
}

// Parts returns the parts of the score in order.
func (s *Score) Parts() []*Part {
	out := make([]*Part, len(s.parts))
	copy(out, s.parts)
	return out
}

// Attribute returns the value of a header attribute.
func (s *Score) Attribute(key Attr) (string, bool) {
	v, ok := s.attributes[key]
	return v, ok
}

// Attributes returns a copy of the header attributes.
func (s *Score) Attributes() map[Attr]string {
	out := make(map[Attr]string, len(s.attributes))
	for k, v := range s.attributes {
		out[k] = v
	}
	return out
}

// Title returns the title attribute, or an empty string.
func (s *Score) Title() string {
	return s.attributes[AttrTitle]
}

// FullMeasureCount returns the highest measure number present in any
// part.
func (s *Score) FullMeasureCount() int { return s.fullMeasureCount }

// HasPickupMeasure reports whether any part contains measure number 0.
func (s *Score) HasPickupMeasure() bool { return s.hasPickup }
