package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/stradella/chord"
	"github.com/jsphweid/stradella/model"
	"github.com/jsphweid/stradella/resolve"
	"github.com/stretchr/testify/assert"
)

func renderFile(t *testing.T, c model.ButtonCombination, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combo.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := Render(f, c, d); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderWritesTheRequestedLength(t *testing.T) {
	combos := resolve.ResolveName("C", "maj")
	path := renderFile(t, combos[0], 500*time.Millisecond)

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	samples, format, err := ReadSamples(f)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(SampleRate, format.SampleRate)
	assert.Equal(2, format.NumChannels)
	assert.Len(samples, SampleRate.N(500*time.Millisecond))
	for _, s := range samples {
		assert.LessOrEqual(math.Abs(s), 1.0)
	}
}

func TestRenderedChordHasItsPitchClasses(t *testing.T) {
	combos := resolve.ResolveName("C", "maj")
	path := renderFile(t, combos[0], time.Second)

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	samples, format, err := ReadSamples(f)
	assert.NoError(t, err)

	chroma := Chroma(samples, int(format.SampleRate))
	assert := assert.New(t)
	for pc, v := range chroma {
		switch pc {
		case 0, 4, 7:
			assert.Greater(v, 0.3, "pitch class %d", pc)
		default:
			assert.Less(v, 0.15, "pitch class %d", pc)
		}
	}

	// the bass doubles C, so it comes out strongest
	assert.Equal(1.0, chroma[0])
	set := PitchClasses(chroma, 0.3)
	assert.Equal(3, set.Len())
	assert.Equal(0, set.PitchClasses()[0])

	matches := chord.Default().Identify(set)
	assert.NotEmpty(matches)
	assert.Equal("maj", matches[0].Type.Name)
}

func TestRenderRejectsSilentCombination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silent.wav")
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()

	err = Render(f, model.ButtonCombination{ChordType: "Major"}, time.Second)
	assert.ErrorContains(t, err, "could not render combination")
}

func TestChromaOfNothing(t *testing.T) {
	assert.Equal(t, [12]float64{}, Chroma(nil, 44100))
	assert.Equal(t, [12]float64{}, Chroma([]float64{0, 0, 0}, 0))
}

func TestPitchClassesOrdersByStrength(t *testing.T) {
	var chroma [12]float64
	chroma[4] = 0.7
	chroma[7] = 1
	chroma[0] = 0.9
	chroma[2] = 0.1

	assert.Equal(t, []int{7, 0, 4}, PitchClasses(chroma, 0.5).PitchClasses())
}
