package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/occurrence"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Matches live MIDI input against the index",
	Long:  `Listens to the first MIDI input port and searches the index for the most recently played pattern.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func searchRecent(recent []uint8) {
	if len(recent) < constants.PatternLength {
		return
	}
	window := recent[len(recent)-constants.PatternLength:]
	pitches := make([]int, len(window))
	for i, key := range window {
		pitches[i] = int(key)
	}
	matches := findOccurrences(occurrence.IntervalKey(pitches))
	fmt.Printf("%d matches for %v\n", len(matches), pitches)
	for _, occ := range matches {
		fmt.Printf("  file %v measure %v voice %v index %v\n", occ.FileNum, occ.Measure, occ.Voice, occ.Index)
	}
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	LoadServeFiles()

	var recent []uint8
	debounced := debounce.New(400 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			recent = append(recent, key)
			if len(recent) > 4*constants.PatternLength {
				recent = recent[len(recent)-constants.PatternLength:]
			}
			snapshot := make([]uint8, len(recent))
			copy(snapshot, recent)
			debounced(func() { searchRecent(snapshot) })
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Printf("Listening on %v, play %d notes...\n", in, constants.PatternLength)
	select {}
}
