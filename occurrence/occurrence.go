// Package occurrence extracts indexable pattern windows from scores and
// packs occurrence records for bucket storage. Each window of consecutive
// sounding pitches in one voice is keyed two ways: an exact pitch-number
// key and a transposition-invariant interval key. The key namespaces are
// prefixed so they stay separated in the sorted chunk space.
package occurrence

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/iterate"
	"github.com/tmakinen/partwise/model"
	"github.com/tmakinen/partwise/notation"
)

// Keyed is one pattern window ready for bucketing.
type Keyed struct {
	Key string
	Occ model.Occurrence
}

// ExactKey returns the search key of an exact pitch-number sequence.
func ExactKey(pitches []int) string {
	return "e:" + joinInts(pitches)
}

// IntervalKey returns the transposition-invariant key of a pitch-number
// sequence: the successive semitone steps.
func IntervalKey(pitches []int) string {
	intervals := make([]int, 0, len(pitches)-1)
	for i := 1; i < len(pitches); i++ {
		intervals = append(intervals, pitches[i]-pitches[i-1])
	}
	return IntervalKeyOf(intervals)
}

// IntervalKeyOf returns the search key of an interval sequence given
// directly, as interval search queries are.
func IntervalKeyOf(intervals []int) string {
	return "i:" + joinInts(intervals)
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, "-")
}

// Serialize packs an occurrence into OccurrenceSize bytes.
func Serialize(o model.Occurrence) [constants.OccurrenceSize]byte {
	var buf [constants.OccurrenceSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], o.FileNum)
	buf[4] = o.Part
	buf[5] = o.Staff
	buf[6] = o.Voice
	binary.LittleEndian.PutUint16(buf[7:9], o.Measure)
	binary.LittleEndian.PutUint16(buf[9:11], o.Index)
	if o.FileHasMetadata {
		buf[11] = 1
	}
	return buf
}

// Deserialize unpacks an occurrence from OccurrenceSize bytes.
func Deserialize(buf []byte) model.Occurrence {
	return model.Occurrence{
		FileNum:         binary.LittleEndian.Uint32(buf[0:4]),
		Part:            buf[4],
		Staff:           buf[5],
		Voice:           buf[6],
		Measure:         binary.LittleEndian.Uint16(buf[7:9]),
		Index:           binary.LittleEndian.Uint16(buf[9:11]),
		FileHasMetadata: buf[11] == 1,
	}
}

// pitchAt is one sounding pitch with the address of the event it came
// from. Chord pitches share their event's address.
type pitchAt struct {
	number int
	pos    iterate.Position
}

// FromScore extracts every pattern window of constants.PatternLength
// sounding pitches from the score, per voice line, keyed both exactly
// and by intervals.
func FromScore(s *notation.Score, fileNum uint32, hasMetadata bool) ([]Keyed, error) {
	it, err := iterate.FullScore(s)
	if err != nil {
		return nil, err
	}

	// group sounding pitches per voice line across measures
	type lineKey struct {
		part  int
		staff int
		voice int
	}
	lines := make(map[lineKey][]pitchAt)
	var lineOrder []lineKey
	for it.HasNext() {
		d, err := it.Next()
		if err != nil {
			return nil, err
		}
		pos := it.PositionOfPrevious()
		key := lineKey{part: pos.Part, staff: pos.Staff, voice: pos.Voice}
		if _, ok := lines[key]; !ok {
			lineOrder = append(lineOrder, key)
		}
		for _, p := range notation.PitchesOf(d) {
			lines[key] = append(lines[key], pitchAt{number: p.Number(), pos: pos})
		}
	}

	var res []Keyed
	for _, lk := range lineOrder {
		line := lines[lk]
		for start := 0; start+constants.PatternLength <= len(line); start++ {
			window := line[start : start+constants.PatternLength]
			pitches := make([]int, len(window))
			for i, pa := range window {
				pitches[i] = pa.number
			}
			occ := model.Occurrence{
				FileNum:         fileNum,
				Part:            uint8(window[0].pos.Part),
				Staff:           uint8(window[0].pos.Staff),
				Voice:           uint8(window[0].pos.Voice),
				Measure:         uint16(window[0].pos.Measure),
				Index:           uint16(window[0].pos.Index),
				FileHasMetadata: hasMetadata,
			}
			res = append(res, Keyed{Key: ExactKey(pitches), Occ: occ})
			res = append(res, Keyed{Key: IntervalKey(pitches), Occ: occ})
		}
	}
	return res, nil
}
