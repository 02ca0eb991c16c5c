package midi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestWriteThenRead(t *testing.T) {
	s := smf.New()
	var track smf.Track
	track.Add(0, midi.NoteOn(0, 60, 100))
	track.Add(0, midi.NoteOn(0, 64, 100))
	track.Add(480, midi.NoteOff(0, 60))
	track.Add(0, midi.NoteOff(0, 64))
	track.Close(0)
	assert.NoError(t, s.Add(track))

	path := filepath.Join(t.TempDir(), "chord.mid")
	assert.NoError(t, WriteMidiFile(path, s))

	read, err := ReadMidiFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{60, 64}, NoteKeys(read))
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.ErrorContains(t, err, "error reading midi file")
}

func TestWriteToMissingDir(t *testing.T) {
	s := smf.New()
	var track smf.Track
	track.Close(0)
	assert.NoError(t, s.Add(track))

	err := WriteMidiFile(filepath.Join(t.TempDir(), "missing", "chord.mid"), s)
	assert.ErrorContains(t, err, "error writing midi file")
}
