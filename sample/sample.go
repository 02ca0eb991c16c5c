package sample

import (
	"fmt"

	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/note"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// MIDI keys of C2 and C3
	bassOctave  = 36
	chordOctave = 48

	velocity = 100
	bpm      = 90
)

var ticks = smf.MetricTicks(960)

// Keys returns the MIDI keys a combination sounds: its bass button first,
// then the chord button notes.
func Keys(c model.ButtonCombination) ([]uint8, error) {
	var keys []uint8
	if len(c.BassNote) > 0 {
		pc, ok := note.PitchClassOf(c.BassNote[0])
		if !ok {
			return nil, errors.Errorf("unknown bass note %q", c.BassNote[0])
		}
		keys = append(keys, uint8(bassOctave+pc))
	}
	for _, n := range c.Notes {
		pc, ok := note.PitchClassOf(n)
		if !ok {
			return nil, errors.Errorf("unknown chord note %q", n)
		}
		keys = append(keys, uint8(chordOctave+pc))
	}
	if len(keys) == 0 {
		return nil, errors.New("combination sounds no notes")
	}
	return keys, nil
}

// Create builds a single-track file holding the combination for one bar.
func Create(c model.ButtonCombination) (*smf.SMF, error) {
	keys, err := Keys(c)
	if err != nil {
		return nil, errors.Wrap(err, "could not create sample")
	}

	res := smf.New()
	res.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(name(c)))
	track.Add(0, smf.MetaTempo(bpm))
	for _, key := range keys {
		track.Add(0, midi.NoteOn(0, key, velocity))
	}
	bar := ticks.Ticks4th() * 4
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = bar
		}
		track.Add(delta, midi.NoteOff(0, key))
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add sample track")
	}
	return res, nil
}

func name(c model.ButtonCombination) string {
	var bass string
	if len(c.BassNote) > 0 {
		bass = c.BassNote[0]
	}
	if c.IsFallback() {
		return fmt.Sprintf("%s bass", bass)
	}
	return fmt.Sprintf("%s %s", bass, c.ChordType)
}
