package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "error parsing midi file")
	}

	return res, nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "error encoding midi file")
	}
	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "error writing midi file")
	}
	return nil
}

// NoteKeys returns the key of every note-on event, track by track.
func NoteKeys(s *smf.SMF) []uint8 {
	var res []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, key)
			}
		}
	}
	return res
}
