package midifile

import (
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tmakinen/partwise/duration"
	"github.com/tmakinen/partwise/notation"
)

const writeResolution = 480

const defaultVelocity = 80

// tickEvent is an absolute-time note boundary used while assembling a
// track.
type tickEvent struct {
	tick  int64
	key   uint8
	isOff bool
}

// Write renders a score as an SMF, one track per staff. Voices of a
// staff are merged onto the track by onset time.
func Write(score *notation.Score) (*smf.SMF, error) {
	var mf smf.SMF
	mf.TimeFormat = smf.MetricTicks(writeResolution)

	for _, part := range score.Parts() {
		for _, staffNumber := range part.StaffNumbers() {
			staff, err := part.Staff(staffNumber)
			if err != nil {
				return nil, err
			}
			track, err := staffTrack(staff)
			if err != nil {
				return nil, err
			}
			mf.Tracks = append(mf.Tracks, track)
		}
	}
	return &mf, nil
}

// WriteFile renders a score into a MIDI file at the given path.
func WriteFile(score *notation.Score, path string) error {
	mf, err := Write(score)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = mf.WriteTo(f)
	return err
}

func staffTrack(staff *notation.Staff) (smf.Track, error) {
	var events []tickEvent
	var measureStart int64
	for _, m := range staff.Measures() {
		for _, voiceNumber := range m.VoiceNumbers() {
			voice, err := m.Voice(voiceNumber)
			if err != nil {
				return nil, err
			}
			t := measureStart
			for _, d := range voice {
				ticks := durationTicks(d.Duration())
				for _, p := range notation.PitchesOf(d) {
					key := uint8(p.Number())
					events = append(events, tickEvent{tick: t, key: key})
					events = append(events, tickEvent{tick: t + ticks, key: key, isOff: true})
				}
				t += ticks
			}
		}
		measureStart += measureTicks(m.TimeSignature())
	}

	// offs before ons at the same tick so repeated pitches retrigger
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isOff && !events[j].isOff
	})

	var track smf.Track
	var prev int64
	for _, e := range events {
		var msg midi.Message
		if e.isOff {
			msg = midi.NoteOff(0, e.key)
		} else {
			msg = midi.NoteOn(0, e.key, defaultVelocity)
		}
		track = append(track, smf.Event{
			Delta:   uint32(e.tick - prev),
			Message: smf.Message(msg),
		})
		prev = e.tick
	}
	track.Close(0)
	return track, nil
}

func durationTicks(d duration.Duration) int64 {
	return int64(d.Numerator()) * 4 * writeResolution / int64(d.Denominator())
}

func measureTicks(ts notation.TimeSignature) int64 {
	return int64(ts.Beats()) * 4 * writeResolution / int64(ts.BeatValue())
}
