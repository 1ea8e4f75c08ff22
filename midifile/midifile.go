// Package midifile reads and writes scores as Standard MIDI Files. It is
// the interchange collaborator of the notation model: it only calls the
// constructors with fully prepared collections and reads back through the
// read-only accessors. Imported scores are quantized to exact rational
// durations derived from the file's tick resolution; notes crossing a
// barline are truncated at it.
package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/notation"
	"github.com/tmakinen/partwise/pitch"
)

// ReadFile reads and parses a MIDI file into a score.
func ReadFile(path string) (s *notation.Score, e error) {
	// the smf reader panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	mf, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return Parse(mf)
}

// noteSpan is one sounding note in absolute ticks.
type noteSpan struct {
	start int64
	end   int64
	key   uint8
}

// group is a run of spans sharing onset and length, i.e. a chord.
type group struct {
	start int64
	end   int64
	keys  []uint8
}

// Parse converts an SMF into a score: one single-staff part per
// note-carrying track, one voice per part, 4/4 measures. Simultaneous
// equal-length onsets become chords; overlapping notes are clipped to the
// next onset; gaps become rests.
func Parse(mf *smf.SMF) (*notation.Score, error) {
	mt, ok := mf.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported midi time format %v", mf.TimeFormat)
	}
	whole := int64(mt.Resolution()) * 4

	var parts []*notation.Part
	for i, track := range mf.Tracks {
		spans := trackSpans(track)
		if len(spans) == 0 {
			continue
		}
		staff, err := spansToStaff(spans, whole)
		if err != nil {
			return nil, err
		}
		part, err := notation.NewPart(fmt.Sprintf("Track %d", i+1), staff)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("midi file contains no notes")
	}
	return notation.NewScore(parts, nil)
}

// trackSpans pairs note-ons with note-offs using a pressed map, the same
// way chords are reduced from live input.
func trackSpans(track smf.Track) []noteSpan {
	var spans []noteSpan
	pressed := make(map[uint8]int64)
	var absTicks int64
	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel, key, velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			if velocity == 0 {
				spans = closeSpan(spans, pressed, key, absTicks)
				continue
			}
			pressed[key] = absTicks
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			spans = closeSpan(spans, pressed, key, absTicks)
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].key < spans[j].key
	})
	return spans
}

func closeSpan(spans []noteSpan, pressed map[uint8]int64, key uint8, end int64) []noteSpan {
	start, ok := pressed[key]
	if !ok {
		return spans
	}
	delete(pressed, key)
	if end <= start {
		return spans
	}
	return append(spans, noteSpan{start: start, end: end, key: key})
}

func spansToStaff(spans []noteSpan, whole int64) (*notation.Staff, error) {
	groups := groupSpans(spans)

	// events per measure number, single voice
	byMeasure := make(map[int][]notation.Durational)
	var cur int64
	lastMeasure := 1
	for _, g := range groups {
		if g.start > cur {
			if err := appendRests(byMeasure, cur, g.start, whole); err != nil {
				return nil, err
			}
		} else if g.start < cur {
			// overlap left over from clipping, skip what is already covered
			g.start = cur
		}
		end := g.end
		if boundary := measureEnd(g.start, whole); end > boundary {
			end = boundary
		}
		if end <= g.start {
			continue
		}
		d, err := duration.New(int(end-g.start), int(whole))
		if err != nil {
			return nil, err
		}
		event, err := groupEvent(g.keys, d)
		if err != nil {
			return nil, err
		}
		num := measureNumber(g.start, whole)
		byMeasure[num] = append(byMeasure[num], event)
		if num > lastMeasure {
			lastMeasure = num
		}
		cur = end
	}

	attr := notation.NewMeasureAttributes(notation.FourFour, notation.CMajor, notation.TrebleClef)
	var measures []*notation.Measure
	for num := 1; num <= lastMeasure; num++ {
		var m *notation.Measure
		var err error
		if events := byMeasure[num]; len(events) > 0 {
			m, err = notation.NewMeasure(num, map[int][]notation.Durational{1: events}, attr)
		} else {
			m, err = notation.NewRestMeasure(num, attr)
		}
		if err != nil {
			return nil, err
		}
		measures = append(measures, m)
	}
	return notation.NewStaff(measures)
}

// groupSpans merges spans with identical onset and length into chords and
// clips each group at the next group's onset to keep the line monophonic
// in time.
func groupSpans(spans []noteSpan) []group {
	var groups []group
	for _, s := range spans {
		if n := len(groups); n > 0 && groups[n-1].start == s.start && groups[n-1].end == s.end {
			last := &groups[n-1]
			if last.keys[len(last.keys)-1] != s.key {
				last.keys = append(last.keys, s.key)
			}
			continue
		}
		groups = append(groups, group{start: s.start, end: s.end, keys: []uint8{s.key}})
	}
	for i := range groups {
		if i+1 < len(groups) && groups[i].end > groups[i+1].start {
			groups[i].end = groups[i+1].start
		}
	}
	return groups
}

func groupEvent(keys []uint8, d duration.Duration) (notation.Durational, error) {
	notes := make([]*notation.Note, len(keys))
	for i, key := range keys {
		p, err := pitch.FromNumber(int(key))
		if err != nil {
			return nil, err
		}
		n, err := notation.NewNote(p, d)
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}
	if len(notes) == 1 {
		return notes[0], nil
	}
	return notation.NewChord(notes...)
}

// appendRests fills [from, until) with rests split at measure boundaries.
func appendRests(byMeasure map[int][]notation.Durational, from, until, whole int64) error {
	for from < until {
		end := measureEnd(from, whole)
		if end > until {
			end = until
		}
		d, err := duration.New(int(end-from), int(whole))
		if err != nil {
			return err
		}
		r, err := notation.NewRest(d)
		if err != nil {
			return err
		}
		num := measureNumber(from, whole)
		byMeasure[num] = append(byMeasure[num], r)
		from = end
	}
	return nil
}

func measureNumber(tick, whole int64) int {
	return int(tick/whole) + 1
}

func measureEnd(tick, whole int64) int64 {
	return (tick/whole + 1) * whole
}
