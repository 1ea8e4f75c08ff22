package notation

// Equal reports exact structural equality of two durational events:
// matching variant, duration, pitch spelling, articulations and marking
// graph shape. Marking identities are not compared, only their types and
// roles, so two separately constructed but identically shaped passages
// compare equal.
func Equal(a, b Durational) bool {
	switch x := a.(type) {
	case *Note:
		y, ok := b.(*Note)
		return ok && noteEqual(x, y)
	case Rest:
		y, ok := b.(Rest)
		return ok && x.Duration().Equal(y.Duration())
	case *Chord:
		y, ok := b.(*Chord)
		if !ok || x.Count() != y.Count() {
			return false
		}
		for i := range x.notes {
			if !noteEqual(x.notes[i], y.notes[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func noteEqual(a, b *Note) bool {
	if !a.Pitch().Equal(b.Pitch()) || !a.Duration().Equal(b.Duration()) {
		return false
	}
	if a.IsTied() != b.IsTied() {
		return false
	}
	aArts, bArts := a.Articulations(), b.Articulations()
	if len(aArts) != len(bArts) {
		return false
	}
	for i := range aArts {
		if aArts[i] != bArts[i] {
			return false
		}
	}
	aShape, bShape := a.markingShape(), b.markingShape()
	if len(aShape) != len(bShape) {
		return false
	}
	for i := range aShape {
		if aShape[i] != bShape[i] {
			return false
		}
	}
	return true
}
