package notation

import (
	"fmt"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/errs"
)

// Rest is a silent event carrying only a duration.
type Rest struct {
	dur duration.Duration
}

// NewRest returns a rest of the given duration.
func NewRest(d duration.Duration) (Rest, error) {
	if d.IsZero() {
		return Rest{}, fmt.Errorf("%w: rest duration is unset", errs.ErrInvalidArgument)
	}
	return Rest{dur: d}, nil
}

// Duration returns the length of the rest.
func (r Rest) Duration() duration.Duration { return r.dur }

// IsRest always reports true for a rest.
func (r Rest) IsRest() bool { return true }

func (r Rest) String() string {
	return fmt.Sprintf("R(%s)", r.dur)
}
