package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsphweid/stradella/chord"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/note"
	"github.com/jsphweid/stradella/resolve"
	"github.com/stretchr/testify/assert"
)

func TestPrintCombinationsTable(t *testing.T) {
	var buf bytes.Buffer
	err := printCombinations(&buf, resolve.New(), "C", "dim7", 2, false, true)

	out := buf.String()
	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(out, "1  C Diminished 7")
	assert.Contains(out, "2  Eb Diminished 7")
	assert.NotContains(out, "3  ")
	assert.Contains(out, "Dim 7th")
}

func TestPrintCombinationsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printCombinations(&buf, resolve.New(), "C", "7", 0, true, false)
	assert.NoError(t, err)

	var combos []model.ButtonCombination
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &combos))
	assert.Len(t, combos, 3)
	assert.Equal(t, resolve.ResolveName("C", "7"), combos)
}

func TestPrintCombinationsUnknownType(t *testing.T) {
	err := printCombinations(io.Discard, resolve.New(), "C", "nope", 4, false, false)
	assert.ErrorContains(t, err, `unknown chord type "nope"`)
}

func TestListChords(t *testing.T) {
	var buf bytes.Buffer
	listChords(&buf, chord.Default(), "aug7", true)

	out := buf.String()
	assert := assert.New(t)
	assert.Contains(out, "aug7b9")
	assert.Contains(out, "same as:")
	assert.NotContains(out, "maj ")
}

func TestInspectMidiExport(t *testing.T) {
	c, err := pickCombination(resolve.New(), "C", "maj", 0)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "c.mid")
	assert.NoError(t, exportMidiFile(path, c))

	pcs, err := readPitchClasses(path)
	assert.NoError(t, err)
	assert.Equal(t, []note.PitchClass{0, 4, 7}, pcs.PitchClasses())

	var buf bytes.Buffer
	inspect(&buf, chord.Default(), pcs)
	assert.Contains(t, buf.String(), "notes: C E G")
	assert.Contains(t, buf.String(), "Cmaj\tMajor")
}

func TestInspectWavExport(t *testing.T) {
	c, err := pickCombination(resolve.New(), "G", "maj", 0)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "g.wav")
	assert.NoError(t, exportWavFile(path, c, time.Second))

	pcs, err := readPitchClasses(path)
	assert.NoError(t, err)
	assert.True(t, pcs.Equal(note.Normalize([]int{7, 11, 2})))
}

func TestReadPitchClassesRejectsOtherFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("C E G"), 0644))

	_, err := readPitchClasses(path)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestInspectWithoutMatch(t *testing.T) {
	var buf bytes.Buffer
	inspect(&buf, chord.Default(), note.Normalize([]int{0, 1, 2, 3, 4, 5, 6}))
	assert.Contains(t, buf.String(), "no matching chord type")
}

func TestPickCombination(t *testing.T) {
	r := resolve.New()

	_, err := pickCombination(r, "H", "maj", 0)
	assert.ErrorContains(t, err, "no buttons")

	_, err = pickCombination(r, "C", "maj", 1)
	assert.ErrorContains(t, err, "out of range")

	c, err := pickCombination(r, "C", "7", 1)
	assert.NoError(t, err)
	assert.Equal(t, "Dominant 7", c.ChordType)
}

func TestReport(t *testing.T) {
	catalog := chord.Catalog{
		{Name: "maj", Intervals: []int{0, 4, 7}},
		{Name: "sus2", Intervals: []int{0, 2, 7}},
		{Name: "7", Intervals: []int{0, 4, 7, 10}},
	}
	var buf bytes.Buffer
	report(&buf, resolve.New(resolve.WithCatalog(catalog)))

	lines := strings.Split(buf.String(), "\n")
	assert := assert.New(t)
	assert.Equal("maj            exact: 20  partial:  0  unmatched:  0", lines[0])
	assert.Equal("sus2           exact:  0  partial:  0  unmatched: 20", lines[1])
	assert.Equal("7              exact:  0  partial: 20  unmatched:  0", lines[2])
	assert.Contains(buf.String(), "chord types: 3")
	assert.Contains(buf.String(), "exact: 20 partial: 20 unmatched: 20")
}

func TestNewResolverLoadsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	assert.NoError(t, os.WriteFile(path, []byte(`[{"name":"power","intervals":[0,7]}]`), 0644))

	catalogPath = path
	defer func() { catalogPath = "" }()

	r, err := newResolver(NewLogger(io.Discard, 0))
	assert.NoError(t, err)
	assert.Equal(t, []string{"power"}, r.Catalog().Names())

	catalogPath = filepath.Join(t.TempDir(), "missing.json")
	_, err = newResolver(NewLogger(io.Discard, 0))
	assert.Error(t, err)
}
